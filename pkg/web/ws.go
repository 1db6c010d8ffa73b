// Package web - live moderation log stream over WebSocket.
package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/WardenLabs/WardenBotGo/pkg/logger"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// El stream es de solo lectura para dashboards; no hay estado de sesión
	CheckOrigin: func(r *http.Request) bool { return true },
}

// modLogClient wraps a connection with a write mutex: the websocket
// protocol allows only one concurrent writer per connection, and
// broadcasts arrive from independent audit goroutines.
type modLogClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// write sends one frame under the client's write lock.
func (c *modLogClient) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// modLogHub tracks connected dashboard clients and broadcasts archived
// moderation actions to them.
type modLogHub struct {
	clients map[string]*modLogClient
	mu      sync.Mutex
}

var hub = &modLogHub{
	clients: make(map[string]*modLogClient),
}

// modLogStreamHandler upgrades the connection and registers the client.
func modLogStreamHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("Error aceptando conexión WebSocket: %v", err), "ModLogStream")
		return
	}

	id := uuid.New().String()

	hub.mu.Lock()
	hub.clients[id] = &modLogClient{conn: conn}
	count := len(hub.clients)
	hub.mu.Unlock()

	logger.Info(fmt.Sprintf("Cliente conectado al stream de moderación (%d activos)", count), "ModLogStream")

	// Drena los mensajes entrantes solo para detectar la desconexión
	go func() {
		defer hub.remove(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// remove drops a client from the hub and closes its connection.
func (h *modLogHub) remove(id string) {
	h.mu.Lock()
	client, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
	}
	count := len(h.clients)
	h.mu.Unlock()

	if ok {
		client.conn.Close()
		logger.Info(fmt.Sprintf("Cliente desconectado del stream de moderación (%d activos)", count), "ModLogStream")
	}
}

// BroadcastModAction pushes an archived moderation action to every
// connected stream client. Clients whose write fails are dropped.
func BroadcastModAction(doc models.ModActionDocument) {
	data, err := json.Marshal(doc)
	if err != nil {
		logger.Error(fmt.Sprintf("Error serializando acción para el stream: %v", err), "ModLogStream")
		return
	}

	hub.mu.Lock()
	clients := make(map[string]*modLogClient, len(hub.clients))
	for id, client := range hub.clients {
		clients[id] = client
	}
	hub.mu.Unlock()

	for id, client := range clients {
		if err := client.write(data); err != nil {
			hub.remove(id)
		}
	}
}
