package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/ritikkamerkar15/residential-security-system/internal/domain/events"
	"github.com/ritikkamerkar15/residential-security-system/internal/infrastructure/config"
	"github.com/ritikkamerkar15/residential-security-system/pkg/logger"
)

// Topic prefix for bridged directory events
const topicEventPrefix = "society/events/"

// InterfaceMQTTBridgeService defines the event bridge interface
type InterfaceMQTTBridgeService interface {
	Connect() error
	Disconnect()
	IsConnected() bool
}

// BridgeMessage is the JSON envelope republished onto the broker
type BridgeMessage struct {
	Event     string      `json:"event"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// MQTTBridgeService forwards bus events to an MQTT broker so dashboards
// outside this process can follow directory changes. The bridge is optional;
// with no broker configured it never connects and the bus stays local.
type MQTTBridgeService struct {
	Config *config.Config
	Client mqtt.Client

	bus           *events.Bus
	subscriptions []*events.Subscription

	connected      bool
	connectedMutex sync.RWMutex
}

// NewMQTTBridgeService creates the bridge and registers its bus subscribers.
// Connect must be called before anything reaches the broker.
func NewMQTTBridgeService(cfg *config.Config, bus *events.Bus) InterfaceMQTTBridgeService {
	service := &MQTTBridgeService{
		Config: cfg,
		bus:    bus,
	}

	if cfg.MQTTBrokerURL != "" {
		service.setupMQTTClient()
		service.subscribeBus()
	}

	return service
}

// setupMQTTClient configures the paho client
func (s *MQTTBridgeService) setupMQTTClient() {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Config.MQTTBrokerURL)
	// Unique client id so multiple service instances do not clash
	opts.SetClientID(fmt.Sprintf("%s-%s", s.Config.MQTTClientID, uuid.New().String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetCleanSession(true)

	if s.Config.MQTTUsername != "" {
		opts.SetUsername(s.Config.MQTTUsername)
		opts.SetPassword(s.Config.MQTTPassword)
	}

	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		logger.Warning("[MQTT] connection lost: %v", err)
		s.connectedMutex.Lock()
		s.connected = false
		s.connectedMutex.Unlock()
	})

	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Info("[MQTT] connected to %s", s.Config.MQTTBrokerURL)
		s.connectedMutex.Lock()
		s.connected = true
		s.connectedMutex.Unlock()
	})

	s.Client = mqtt.NewClient(opts)
}

// subscribeBus attaches one forwarder per directory event
func (s *MQTTBridgeService) subscribeBus() {
	for _, event := range []string{
		events.DataUpdated,
		events.VisitorRequestAdded,
		events.VisitorRequestUpdated,
		events.GuardStatusUpdated,
	} {
		name := event
		sub := s.bus.Subscribe(name, func(payload interface{}) {
			s.forward(name, payload)
		})
		s.subscriptions = append(s.subscriptions, sub)
	}
}

// Connect dials the broker. A nil return with no broker configured keeps the
// composition root simple.
func (s *MQTTBridgeService) Connect() error {
	if s.Client == nil {
		return nil
	}

	token := s.Client.Connect()
	if token.WaitTimeout(5*time.Second) && token.Error() == nil {
		return nil
	}
	return fmt.Errorf("[MQTT] failed to connect to %s: %v", s.Config.MQTTBrokerURL, token.Error())
}

// Disconnect detaches from the bus and closes the broker connection
func (s *MQTTBridgeService) Disconnect() {
	for _, sub := range s.subscriptions {
		s.bus.Unsubscribe(sub)
	}
	s.subscriptions = nil

	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
}

// IsConnected reports whether the broker link is up
func (s *MQTTBridgeService) IsConnected() bool {
	s.connectedMutex.RLock()
	defer s.connectedMutex.RUnlock()
	return s.connected && s.Client != nil && s.Client.IsConnected()
}

// forward republishes one bus event. Failures are logged and dropped; the
// bridge must never push an error back into the directory's mutation path.
func (s *MQTTBridgeService) forward(event string, payload interface{}) {
	if !s.IsConnected() {
		return
	}

	message := BridgeMessage{
		Event:     event,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	}
	data, err := json.Marshal(message)
	if err != nil {
		logger.Error("[MQTT] failed to encode %s event: %v", event, err)
		return
	}

	token := s.Client.Publish(topicEventPrefix+event, byte(s.Config.MQTTQoS), false, data)
	if token.WaitTimeout(2*time.Second) && token.Error() != nil {
		logger.Warning("[MQTT] failed to publish %s event: %v", event, token.Error())
	}
}
