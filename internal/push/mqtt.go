// Package push delivers timetable updates to paired display boards over
// MQTT. Boards subscribe to masjid/<mosque_id>/timetable and re-render on
// every publish.
package push

import (
	"encoding/json"
	"fmt"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/openummah/masjidmap/internal/model"
)

var (
	clientMutex sync.Mutex
	mqttClient  mqtt.Client
	brokerURL   = "tcp://0.0.0.0:1883" // Default MQTT broker URL
)

var messagePubHandler mqtt.MessageHandler = func(client mqtt.Client, msg mqtt.Message) {
	log.Debug().Str("topic", msg.Topic()).Msg("received mqtt message")
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// SetBrokerURL allows configuration of the MQTT broker URL.
func SetBrokerURL(url string) {
	brokerURL = url
}

// InitMQTT connects the publishing client. Boards connect on their own.
func InitMQTT(clientName string) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientName)
	opts.SetDefaultPublishHandler(messagePubHandler)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	clientMutex.Lock()
	defer clientMutex.Unlock()

	mqttClient = mqtt.NewClient(opts)
	if token := mqttClient.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return nil
}

func timetableTopic(mosqueID string) string {
	return fmt.Sprintf("masjid/%s/timetable", mosqueID)
}

// PublishTimetable pushes a refreshed timetable to every board of a mosque.
func PublishTimetable(t model.Timetable) error {
	clientMutex.Lock()
	client := mqttClient
	clientMutex.Unlock()

	if client == nil {
		return fmt.Errorf("MQTT client not initialized")
	}

	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal timetable: %w", err)
	}

	topic := timetableTopic(t.MosqueID)
	token := client.Publish(topic, 1, true, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish timetable to %s: %w", topic, token.Error())
	}

	log.Info().Str("topic", topic).Msg("published timetable")
	return nil
}

// CleanupMQTT disconnects the publishing client.
func CleanupMQTT() {
	clientMutex.Lock()
	defer clientMutex.Unlock()

	if mqttClient != nil {
		mqttClient.Disconnect(250)
		mqttClient = nil
		log.Info().Msg("MQTT client disconnected")
	}
}
