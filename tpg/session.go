package tpg

import (
	"bytes"

	log "github.com/sirupsen/logrus"
)

// Session drives a single controller over an injected Transport. Each
// operation is one atomic command/ACK/ENQ/data cycle; the controller can
// not queue commands, so a Session must not be used from more than one
// goroutine at a time.
//
// The gauge identities are the only state kept between operations: the
// installed gauge type can not change at runtime, so TID is issued at most
// once per Session and the result reused.
type Session struct {
	t Transport

	idGauge1 *GaugeID
	idGauge2 *GaugeID
}

// NewSession wraps an open Transport. The Session owns the transport until
// Close is called.
func NewSession(t Transport) *Session {
	return &Session{t: t}
}

// Close tears the session down, closing the underlying transport. Cached
// gauge identities die with the session.
func (s *Session) Close() error {
	return s.t.Close()
}

// SendCommand writes a framed command and consumes the controller's
// ACK/NAK answer. The payload, where a command produces one, must be
// fetched afterwards with Enquire.
func (s *Session) SendCommand(m Mnemonic, args ...[]byte) error {
	if _, err := s.t.Write(Encode(m, args...)); err != nil {
		return err
	}
	raw, err := s.t.ReadLine()
	if err != nil {
		return err
	}
	line, err := DecodeLine(raw)
	if err != nil {
		return err
	}
	switch {
	case len(line) == 1 && line[0] == ACK:
		return nil
	case len(line) == 1 && line[0] == NAK:
		log.Warnf("Controller rejected %s", m)
		return &RejectedError{Mnemonic: m}
	default:
		return &UnexpectedReplyError{Mnemonic: m, Raw: line}
	}
}

// Enquire writes the bare ENQ byte and returns the payload line the
// controller transmits in response, terminator stripped.
func (s *Session) Enquire() ([]byte, error) {
	if _, err := s.t.Write([]byte{ENQ}); err != nil {
		return nil, err
	}
	raw, err := s.t.ReadLine()
	if err != nil {
		return nil, err
	}
	return DecodeLine(raw)
}

// query runs the full command/ACK/ENQ/data cycle for commands that answer
// with a payload line.
func (s *Session) query(m Mnemonic, args ...[]byte) ([]byte, error) {
	if err := s.SendCommand(m, args...); err != nil {
		return nil, err
	}
	return s.Enquire()
}

// ReadGauge reads the pressure on one measurement channel in mbar.
func (s *Session) ReadGauge(channel GaugeChannel) (MeasurementStatus, float64, error) {
	m := PR1
	if channel == Gauge2 {
		m = PR2
	}
	data, err := s.query(m)
	if err != nil {
		return 0, 0, err
	}
	return ParseMeasurement(data)
}

// ReadBoth reads both channels in one cycle. The returned status applies
// to both pressures.
func (s *Session) ReadBoth() (MeasurementStatus, float64, float64, error) {
	data, err := s.query(PRX)
	if err != nil {
		return 0, 0, 0, err
	}
	return ParseDualMeasurement(data)
}

// SetGaugePower switches the gauges on or off. PowerUnchanged leaves a
// channel as it is. The controller echoes the applied signal bytes; an
// echo differing from what was sent fails with a *NotHonoredError.
func (s *Session) SetGaugePower(gauge1, gauge2 PowerState) error {
	sent := []byte{byte(gauge1), byte(gauge2)}
	data, err := s.query(SEN, sent[:1], sent[1:])
	if err != nil {
		return err
	}
	echoed := bytes.Split(data, []byte{','})
	if len(echoed) != 2 {
		return &ParseError{Op: "parse power echo", Raw: data, Reason: "expected 2 fields"}
	}
	if !bytes.Equal(echoed[0], sent[:1]) || !bytes.Equal(echoed[1], sent[1:]) {
		return &NotHonoredError{Mnemonic: SEN, Sent: sent, Echoed: data}
	}
	return nil
}

// TurnOnGauge1 switches gauge 1 on, leaving gauge 2 unchanged.
func (s *Session) TurnOnGauge1() error { return s.SetGaugePower(PowerOn, PowerUnchanged) }

// TurnOnGauge2 switches gauge 2 on, leaving gauge 1 unchanged.
func (s *Session) TurnOnGauge2() error { return s.SetGaugePower(PowerUnchanged, PowerOn) }

// TurnOnBoth switches both gauges on.
func (s *Session) TurnOnBoth() error { return s.SetGaugePower(PowerOn, PowerOn) }

// TurnOffGauge1 switches gauge 1 off, leaving gauge 2 unchanged.
func (s *Session) TurnOffGauge1() error { return s.SetGaugePower(PowerOff, PowerUnchanged) }

// TurnOffGauge2 switches gauge 2 off, leaving gauge 1 unchanged.
func (s *Session) TurnOffGauge2() error { return s.SetGaugePower(PowerUnchanged, PowerOff) }

// TurnOffBoth switches both gauges off.
func (s *Session) TurnOffBoth() error { return s.SetGaugePower(PowerOff, PowerOff) }

// GaugeIdentities reports the gauge type installed on each channel. The
// first successful call queries the controller; later calls return the
// cached pair without touching the transport.
func (s *Session) GaugeIdentities() (GaugeID, GaugeID, error) {
	if s.idGauge1 != nil && s.idGauge2 != nil {
		return *s.idGauge1, *s.idGauge2, nil
	}
	data, err := s.query(TID)
	if err != nil {
		return "", "", err
	}
	id1, id2, err := ParseGaugeIDs(data)
	if err != nil {
		return "", "", err
	}
	s.idGauge1, s.idGauge2 = &id1, &id2
	return id1, id2, nil
}

// SelectChannel changes the active measurement channel. The controller
// echoes the channel now in effect; a mismatch fails with *NotHonoredError.
func (s *Session) SelectChannel(channel GaugeChannel) error {
	sent := []byte{byte(channel)}
	data, err := s.query(SCT, sent)
	if err != nil {
		return err
	}
	if !bytes.Equal(data, sent) {
		return &NotHonoredError{Mnemonic: SCT, Sent: sent, Echoed: data}
	}
	return nil
}

// ErrorStatus fetches the controller's current error word.
func (s *Session) ErrorStatus() (ErrorStatus, error) {
	data, err := s.query(ERR)
	if err != nil {
		return "", err
	}
	return ParseErrorStatus(data)
}

// Reset resets the controller and returns the subsystem check list it
// reports, in wire order.
func (s *Session) Reset() ([]ResetCause, error) {
	data, err := s.query(RES, []byte{'1'})
	if err != nil {
		return nil, err
	}
	return ParseResetCauses(data)
}
