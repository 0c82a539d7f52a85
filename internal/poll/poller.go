// Package poll reads a gauge on a fixed interval, writes readings to an
// output stream and fans them out to optional consumers.
package poll

import (
	"context"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/smertens/tpgd/tpg"
)

// Reading is one polled measurement.
type Reading struct {
	Time     time.Time             `json:"time"`
	Channel  int                   `json:"channel"`
	Status   tpg.MeasurementStatus `json:"status"`
	StatusOK bool                  `json:"status_ok"`
	Pressure float64               `json:"pressure_mbar"`
}

// Gauge is the slice of the device session the poller needs.
type Gauge interface {
	ReadGauge(channel tpg.GaugeChannel) (tpg.MeasurementStatus, float64, error)
}

// Consumer receives every reading, e.g. an MQTT publisher or a WebSocket
// hub. Consume must not block the poll loop.
type Consumer interface {
	Consume(r Reading)
}

// Poller polls one channel until its context is cancelled.
type Poller struct {
	gauge     Gauge
	channel   tpg.GaugeChannel
	interval  time.Duration
	out       io.Writer
	consumers []Consumer

	pressures []float64
	failures  int
}

// New builds a poller writing readings to out.
func New(gauge Gauge, channel tpg.GaugeChannel, interval time.Duration, out io.Writer, consumers ...Consumer) *Poller {
	return &Poller{
		gauge:     gauge,
		channel:   channel,
		interval:  interval,
		out:       out,
		consumers: consumers,
	}
}

// Run polls until ctx is cancelled. A failed read is reported and the loop
// keeps going; retry policy beyond that is not this layer's business.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		status, pressure, err := p.gauge.ReadGauge(p.channel)
		if err != nil {
			p.failures++
			log.Errorf("Reading %v failed: %v", p.channel, err)
			fmt.Fprintf(p.out, "Measurement failed: %v\n", err)
		} else {
			r := Reading{
				Time:     time.Now(),
				Channel:  channelNumber(p.channel),
				Status:   status,
				StatusOK: status == tpg.StatusOK,
				Pressure: pressure,
			}
			p.record(r)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Poller) record(r Reading) {
	if r.StatusOK {
		p.pressures = append(p.pressures, r.Pressure)
		fmt.Fprintf(p.out, "Time: %v, Pressure: %v mbar\n", r.Time.Format(time.RFC3339Nano), r.Pressure)
	} else {
		p.failures++
		fmt.Fprintf(p.out, "Measurement failed. status: %v\n", r.Status)
	}
	for _, c := range p.consumers {
		c.Consume(r)
	}
}

// Summary aggregates a finished poll run.
type Summary struct {
	Samples  int
	Failures int
	Min      float64
	Max      float64
	Mean     float64
	StdDev   float64
}

// Summary reports statistics over the successful readings so far. ok is
// false while no successful reading has been recorded.
func (p *Poller) Summary() (s Summary, ok bool) {
	if len(p.pressures) == 0 {
		return Summary{Failures: p.failures}, false
	}
	s = Summary{
		Samples:  len(p.pressures),
		Failures: p.failures,
		Min:      floats.Min(p.pressures),
		Max:      floats.Max(p.pressures),
		Mean:     stat.Mean(p.pressures, nil),
	}
	if len(p.pressures) > 1 {
		s.StdDev = stat.StdDev(p.pressures, nil)
	}
	return s, true
}

func (s Summary) String() string {
	return fmt.Sprintf("%d samples (%d failed), min %.3g mbar, max %.3g mbar, mean %.3g mbar, stddev %.3g",
		s.Samples, s.Failures, s.Min, s.Max, s.Mean, s.StdDev)
}

func channelNumber(c tpg.GaugeChannel) int {
	if c == tpg.Gauge2 {
		return 2
	}
	return 1
}

// ChannelFromNumber maps the user-facing channel number to the wire value.
func ChannelFromNumber(n int) tpg.GaugeChannel {
	if n == 2 {
		return tpg.Gauge2
	}
	return tpg.Gauge1
}
