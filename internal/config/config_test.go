package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Interval() != 500*time.Millisecond {
		t.Errorf("Interval() = %v, want 500ms", cfg.Interval())
	}
	if cfg.Output != "-" {
		t.Errorf("Output = %q, want -", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tpgd.yaml")
	doc := `
connection: /dev/ttyUSB0
poll_interval: 2000
channel: 2
http_bind: ":8080"
mqtt:
  broker: localhost:1883
  topic: lab/pressure
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Connection != "/dev/ttyUSB0" {
		t.Errorf("Connection = %q", cfg.Connection)
	}
	if cfg.Interval() != 2*time.Second {
		t.Errorf("Interval() = %v, want 2s", cfg.Interval())
	}
	if cfg.Channel != 2 {
		t.Errorf("Channel = %d, want 2", cfg.Channel)
	}
	if cfg.MQTT.Broker != "localhost:1883" || cfg.MQTT.Topic != "lab/pressure" {
		t.Errorf("MQTT = %+v", cfg.MQTT)
	}
	// Values absent from the file keep their defaults.
	if cfg.Baud != 9600 {
		t.Errorf("Baud = %d, want 9600", cfg.Baud)
	}
	if cfg.MQTT.ClientID != "tpgd" {
		t.Errorf("MQTT.ClientID = %q, want tpgd", cfg.MQTT.ClientID)
	}
}

func TestLoadRejectsBadChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tpgd.yaml")
	if err := os.WriteFile(path, []byte("channel: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with channel 3: expected error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() on missing file: expected error")
	}
}
