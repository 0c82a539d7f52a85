package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smertens/tpgd/internal/api"
	"github.com/smertens/tpgd/internal/config"
	"github.com/smertens/tpgd/internal/device"
	"github.com/smertens/tpgd/internal/mqttpub"
	"github.com/smertens/tpgd/internal/poll"
	"github.com/smertens/tpgd/tpg"

	log "github.com/sirupsen/logrus"
)

var connTo = flag.String("c", "", "connection string, use socket://[host]:[port] for TCP or [serialDevice] for direct serial connection")
var configFile = flag.String("config", "", "configuration `file` (YAML); flags override file values")
var interval = flag.Duration("i", 0, "poll interval, e.g. 500ms")
var output = flag.String("o", "", "output file for readings, - for stdout")
var channel = flag.Int("ch", 0, "gauge channel to poll (1 or 2)")
var httpServe = flag.String("s", "", "start http server at [bindtohost][:]port")
var mqttBroker = flag.String("mqtt", "", "publish readings to MQTT broker at host:port")
var baud = flag.Int("baud", 0, "serial baud rate")
var listPorts = flag.Bool("list-ports", false, "list candidate serial ports and exit")
var interactive = flag.Bool("interactive", false, "stop on q/Esc keypress in addition to SIGINT")
var verbose = flag.Bool("v", false, "verbose logging")

// To be set via go build -ldflags "-X main.buildVersion=$(git describe --dirty)"
var buildVersion = "unspecified"

func loadConfig() *config.Config {
	var cfg *config.Config
	var err error
	if *configFile != "" {
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatalf("Loading config: %v", err)
		}
	} else {
		cfg = config.Default()
	}

	if *connTo != "" {
		cfg.Connection = *connTo
	}
	if *interval != 0 {
		cfg.PollInterval = int(interval.Milliseconds())
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *channel != 0 {
		cfg.Channel = *channel
	}
	if *httpServe != "" {
		cfg.HTTPBind = *httpServe
	}
	if *mqttBroker != "" {
		cfg.MQTT.Broker = *mqttBroker
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func openOutput(path string) *os.File {
	if path == "-" {
		return os.Stdout
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Opening output: %v", err)
	}
	return f
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
	}

	if *listPorts {
		for _, p := range tpg.ListPorts() {
			fmt.Println(p)
		}
		return
	}

	cfg := loadConfig()
	if cfg.Connection == "" {
		log.Fatal("Need connection string in -c option or config file")
	}

	conn, err := tpg.Connect(cfg.Connection, tpg.ConnConfig{Baud: cfg.Baud, ReadTimeout: cfg.Timeout()})
	if err != nil {
		log.Fatalf("Connecting to %s: %v", cfg.Connection, err)
	}
	dev := device.NewLocked(tpg.NewSession(conn))
	defer dev.Close()

	if id1, id2, err := dev.GaugeIdentities(); err != nil {
		log.Warnf("Could not identify gauges: %v", err)
	} else {
		log.Infof("Gauge 1: %s, gauge 2: %s", id1, id2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan os.Signal, 1)
	signal.Notify(done,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		<-done
		cancel()
	}()

	if *interactive {
		go waitForQuitKey(cancel)
	}

	var consumers []poll.Consumer

	if cfg.MQTT.Broker != "" {
		pub := mqttpub.New(cfg.MQTT)
		if err := pub.Connect(); err != nil {
			log.Fatalf("MQTT: %v", err)
		}
		defer pub.Close()
		consumers = append(consumers, pub)
	}

	if cfg.HTTPBind != "" {
		server := api.NewServer(dev, buildVersion)
		consumers = append(consumers, server.Hub())
		h := &http.Server{Addr: cfg.HTTPBind, Handler: server.Router()}
		go func() {
			if err := h.ListenAndServe(); err != http.ErrServerClosed {
				log.Error(err)
			}
		}()
		go func() {
			<-ctx.Done()
			shutdownCtx, stop := context.WithTimeout(context.Background(), 3*time.Second)
			defer stop()
			h.Shutdown(shutdownCtx)
		}()
		log.Infof("HTTP API listening on %s", cfg.HTTPBind)
	}

	out := openOutput(cfg.Output)
	if out != os.Stdout {
		defer out.Close()
	}

	poller := poll.New(dev, poll.ChannelFromNumber(cfg.Channel), cfg.Interval(), out, consumers...)
	log.Infof("Polling gauge %d on %s every %v", cfg.Channel, cfg.Connection, cfg.Interval())
	poller.Run(ctx)

	if summary, ok := poller.Summary(); ok {
		log.Infof("Session summary: %v", summary)
	}
}
