// Package mqttpub publishes gauge readings to an MQTT broker.
package mqttpub

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/smertens/tpgd/internal/config"
	"github.com/smertens/tpgd/internal/poll"
)

// Publisher forwards readings to a broker. It satisfies poll.Consumer.
type Publisher struct {
	client paho.Client
	topic  string
	status string
}

// New configures a client with a last-will offline message on the status
// topic, so subscribers can tell a dead daemon from a silent one.
func New(cfg config.MQTTConfig) *Publisher {
	opts := paho.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", cfg.Broker))
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetWill(cfg.StatusTopic, "offline", 1, true)

	opts.SetOnConnectHandler(func(client paho.Client) {
		log.Info("Connected to MQTT broker")
		if token := client.Publish(cfg.StatusTopic, 1, true, "online"); token.Wait() && token.Error() != nil {
			log.Warnf("Publishing online status failed: %v", token.Error())
		}
	})
	opts.SetConnectionLostHandler(func(client paho.Client, err error) {
		log.Errorf("MQTT connection lost: %v", err)
	})

	return &Publisher{
		client: paho.NewClient(opts),
		topic:  cfg.Topic,
		status: cfg.StatusTopic,
	}
}

// Connect connects to the broker, blocking until the attempt completes.
func (p *Publisher) Connect() error {
	if token := p.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connecting to MQTT broker: %w", token.Error())
	}
	return nil
}

// Consume publishes one reading as JSON. The token is checked off the
// calling goroutine: Consume runs on the poll loop, which must not stall
// on a wedged broker connection. Failures are logged, not returned.
func (p *Publisher) Consume(r poll.Reading) {
	payload, err := json.Marshal(r)
	if err != nil {
		log.Errorf("Marshalling reading: %v", err)
		return
	}
	token := p.client.Publish(p.topic, 0, false, payload)
	go func() {
		if token.WaitTimeout(10*time.Second) && token.Error() != nil {
			log.Warnf("Publishing reading failed: %v", token.Error())
		}
	}()
}

// Close announces offline status and disconnects.
func (p *Publisher) Close() {
	if token := p.client.Publish(p.status, 1, true, "offline"); token.Wait() && token.Error() != nil {
		log.Warnf("Publishing offline status failed: %v", token.Error())
	}
	p.client.Disconnect(250)
}
