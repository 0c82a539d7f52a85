// Package config loads the daemon configuration from an optional YAML file.
// Command line flags take precedence over file values.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete tpgd configuration. Intervals are given in
// milliseconds.
type Config struct {
	// Connection is the link to the controller: a serial device path or
	// socket://host:port.
	Connection  string `yaml:"connection"`
	Baud        int    `yaml:"baud"`
	ReadTimeout int    `yaml:"read_timeout"` // ms

	PollInterval int `yaml:"poll_interval"` // ms
	// Output is the reading sink: "-" for stdout or a file path.
	Output string `yaml:"output"`
	// Channel selects the polled gauge, 1 or 2.
	Channel int `yaml:"channel"`

	// HTTPBind enables the HTTP API when non-empty, e.g. ":8080".
	HTTPBind string `yaml:"http_bind"`

	MQTT MQTTConfig `yaml:"mqtt"`
}

// MQTTConfig describes the optional readings publisher.
type MQTTConfig struct {
	Broker      string `yaml:"broker"` // host:port; empty disables publishing
	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	Topic       string `yaml:"topic"`
	StatusTopic string `yaml:"status_topic"`
}

// Interval returns the poll interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.PollInterval) * time.Millisecond
}

// Timeout returns the serial read timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Millisecond
}

// Default returns the configuration used when no file and no flags are
// given. The interval and output defaults match the original CLI.
func Default() *Config {
	return &Config{
		Baud:         9600,
		ReadTimeout:  5000,
		PollInterval: 500,
		Output:       "-",
		Channel:      1,
		MQTT: MQTTConfig{
			ClientID:    "tpgd",
			Topic:       "tpgd/pressure",
			StatusTopic: "tpgd/status",
		},
	}
}

// Load reads path into a Config on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the daemon can not work with.
func (c *Config) Validate() error {
	if c.Channel != 1 && c.Channel != 2 {
		return fmt.Errorf("channel must be 1 or 2, got %d", c.Channel)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %d", c.PollInterval)
	}
	if c.Baud <= 0 {
		return fmt.Errorf("baud must be positive, got %d", c.Baud)
	}
	return nil
}
