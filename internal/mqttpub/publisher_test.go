package mqttpub

import (
	"encoding/json"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/smertens/tpgd/internal/poll"
)

// stuckToken never completes, standing in for a wedged broker connection.
type stuckToken struct {
	done chan struct{}
}

func (t *stuckToken) Wait() bool { <-t.done; return true }

func (t *stuckToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (t *stuckToken) Done() <-chan struct{} { return t.done }
func (t *stuckToken) Error() error { return nil }

// stuckClient records publishes but never completes their tokens.
type stuckClient struct {
	published chan []byte
}

func (c *stuckClient) IsConnected() bool { return true }
func (c *stuckClient) IsConnectionOpen() bool { return true }
func (c *stuckClient) Connect() paho.Token { return &stuckToken{done: make(chan struct{})} }

func (c *stuckClient) Disconnect(quiesce uint) {}

func (c *stuckClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	c.published <- payload.([]byte)
	return &stuckToken{done: make(chan struct{})}
}

func (c *stuckClient) Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token {
	return &stuckToken{done: make(chan struct{})}
}

func (c *stuckClient) SubscribeMultiple(filters map[string]byte, callback paho.MessageHandler) paho.Token {
	return &stuckToken{done: make(chan struct{})}
}

func (c *stuckClient) Unsubscribe(topics ...string) paho.Token {
	return &stuckToken{done: make(chan struct{})}
}

func (c *stuckClient) AddRoute(topic string, callback paho.MessageHandler) {}

func (c *stuckClient) OptionsReader() paho.ClientOptionsReader {
	return paho.ClientOptionsReader{}
}

// Consume runs on the poll loop, so it must return promptly even when the
// broker never confirms the publish.
func TestConsumeDoesNotBlockOnStuckBroker(t *testing.T) {
	client := &stuckClient{published: make(chan []byte, 1)}
	p := &Publisher{client: client, topic: "tpgd/pressure", status: "tpgd/status"}

	reading := poll.Reading{
		Time:     time.Now(),
		Channel:  1,
		StatusOK: true,
		Pressure: 1e-3,
	}

	returned := make(chan struct{})
	go func() {
		p.Consume(reading)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Consume() blocked on an unconfirmed publish")
	}

	select {
	case payload := <-client.published:
		var got poll.Reading
		if err := json.Unmarshal(payload, &got); err != nil {
			t.Fatalf("payload is not JSON: %v\n%s", err, payload)
		}
		if got.Channel != 1 || !got.StatusOK || got.Pressure != 1e-3 {
			t.Errorf("payload = %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Consume() never handed the reading to the client")
	}
}
