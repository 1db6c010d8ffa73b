// Package mqtt publishes moderation events to an MQTT broker so external
// dashboards can follow the bot's activity in real time.
package mqtt

import (
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/WardenLabs/WardenBotGo/pkg/logger"
	"github.com/WardenLabs/WardenBotGo/pkg/models"
)

// ModLogTopic is where moderation actions are published.
const ModLogTopic = "wardenbot/modlog"

// StatusTopic is where bot lifecycle messages are published.
const StatusTopic = "wardenbot/status"

// Publisher handles the MQTT connection and event publishing.
type Publisher struct {
	client   mqtt.Client
	clientID string
}

var (
	publisher *Publisher
	once      sync.Once
)

// Init initializes the global MQTT publisher.
func Init(host, port, username, password, clientID string) *Publisher {
	once.Do(func() {
		publisher = NewPublisher(host, port, username, password, clientID)
	})
	return publisher
}

// Get returns the global MQTT publisher.
func Get() *Publisher {
	return publisher
}

// NewPublisher creates a Publisher and starts connecting to the broker.
// The connection retries in the background; publishes before the broker is
// reachable are dropped.
func NewPublisher(host, port, username, password, clientID string) *Publisher {
	p := &Publisher{clientID: clientID}

	// Un sufijo único evita que dos instancias se expulsen mutuamente
	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Conectado al broker MQTT como %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("Conexión MQTT perdida: %v", err), "MQTT")
		})

	p.client = mqtt.NewClient(opts)

	token := p.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("Error de conexión MQTT: %v", token.Error()), "MQTT")
	}

	return p
}

// Destroy closes the MQTT connection.
func (p *Publisher) Destroy() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
		logger.System("Conexión MQTT cerrada exitosamente.", "MQTT")
	} else {
		logger.Warn("El cliente MQTT no estaba conectado, no se necesita cerrar.", "MQTT")
	}
}

// publish sends a JSON payload on a topic, fire and forget.
func (p *Publisher) publish(topic string, payload interface{}) {
	if p.client == nil || !p.client.IsConnected() {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error(fmt.Sprintf("Error serializando mensaje MQTT: %v", err), "MQTT")
		return
	}

	token := p.client.Publish(topic, 0, false, data)
	go func() {
		if token.Wait() && token.Error() != nil {
			logger.Warn(fmt.Sprintf("Error publicando en %s: %v", topic, token.Error()), "MQTT")
		}
	}()
}

// PublishStatus publishes a lifecycle message (started, shutting down).
func (p *Publisher) PublishStatus(status string) {
	p.publish(StatusTopic, map[string]interface{}{
		"clientId":  p.clientID,
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// PublishModAction publishes an archived moderation action using the
// global publisher. No-op when the publisher was never initialized.
func PublishModAction(doc models.ModActionDocument) {
	p := Get()
	if p == nil {
		return
	}
	p.publish(ModLogTopic, doc)
}
