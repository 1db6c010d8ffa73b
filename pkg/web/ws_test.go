package web

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

// dialTestStream connects a websocket client to a fresh engine serving the
// mod-log stream and waits until the hub has registered it.
func dialTestStream(t *testing.T) *websocket.Conn {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/ws/modlog", modLogStreamHandler)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/modlog"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("no se pudo conectar al stream: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// El registro en el hub ocurre tras el handshake; esperar a verlo
	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mu.Lock()
		registered := len(hub.clients) > 0
		hub.mu.Unlock()
		if registered {
			return conn
		}
		if time.Now().After(deadline) {
			t.Fatal("el cliente nunca se registró en el hub")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Overlapping moderation actions broadcast from independent goroutines;
// every frame must arrive intact on a single shared connection.
func TestBroadcastModActionConcurrent(t *testing.T) {
	conn := dialTestStream(t)

	const n = 32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			BroadcastModAction(models.ModActionDocument{
				GuildID:   "123456789012345678",
				Action:    "Warning",
				TargetID:  "234567890123456789",
				Moderator: "345678901234567890",
				Reason:    "spam",
				Timestamp: time.Now().UTC(),
			})
		}()
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for received := 0; received < n; received++ {
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Fatalf("lectura tras %d mensajes: %v", received, err)
		}
	}
	wg.Wait()
}

// A broadcast with no connected clients must be a silent no-op.
func TestBroadcastModActionNoClients(t *testing.T) {
	hub.mu.Lock()
	if len(hub.clients) != 0 {
		hub.mu.Unlock()
		t.Skip("hub no vacío por otra prueba")
	}
	hub.mu.Unlock()

	BroadcastModAction(models.ModActionDocument{
		GuildID:   "1",
		Action:    "Kick",
		Timestamp: time.Now().UTC(),
	})
}
