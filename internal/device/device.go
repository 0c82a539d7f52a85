// Package device shares one controller session between the poller and the
// HTTP API. The controller is a single-outstanding-request protocol, so
// every operation holds an exclusive lock for its whole
// command/ACK/ENQ/data cycle.
package device

import (
	"sync"

	"github.com/smertens/tpgd/tpg"
)

// Locked serializes access to a Session.
type Locked struct {
	mu      sync.Mutex
	session *tpg.Session
}

// NewLocked wraps a session. The wrapper owns the session from here on.
func NewLocked(s *tpg.Session) *Locked {
	return &Locked{session: s}
}

// ReadGauge reads one channel's pressure in mbar.
func (l *Locked) ReadGauge(channel tpg.GaugeChannel) (tpg.MeasurementStatus, float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session.ReadGauge(channel)
}

// ReadBoth reads both channels in one cycle.
func (l *Locked) ReadBoth() (tpg.MeasurementStatus, float64, float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session.ReadBoth()
}

// GaugeIdentities reports the installed gauge types, cached per session.
func (l *Locked) GaugeIdentities() (tpg.GaugeID, tpg.GaugeID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session.GaugeIdentities()
}

// SetGaugePower switches the gauges on or off.
func (l *Locked) SetGaugePower(gauge1, gauge2 tpg.PowerState) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session.SetGaugePower(gauge1, gauge2)
}

// SelectChannel changes the active measurement channel.
func (l *Locked) SelectChannel(channel tpg.GaugeChannel) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session.SelectChannel(channel)
}

// ErrorStatus fetches the controller's error word.
func (l *Locked) ErrorStatus() (tpg.ErrorStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session.ErrorStatus()
}

// Reset resets the controller.
func (l *Locked) Reset() ([]tpg.ResetCause, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session.Reset()
}

// Close closes the session and its transport.
func (l *Locked) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session.Close()
}
