package tpg

import "fmt"

// FramingError reports an incoming line that did not end in CR LF.
type FramingError struct {
	Raw []byte
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("tpg: line without CR LF terminator: %q", e.Raw)
}

// RejectedError reports a NAK answer to a command.
type RejectedError struct {
	Mnemonic Mnemonic
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("tpg: command %s rejected by controller", e.Mnemonic)
}

// UnexpectedReplyError reports a handshake line that was neither ACK nor NAK.
type UnexpectedReplyError struct {
	Mnemonic Mnemonic
	Raw      []byte
}

func (e *UnexpectedReplyError) Error() string {
	return fmt.Sprintf("tpg: unexpected handshake reply to %s: %q", e.Mnemonic, e.Raw)
}

// ParseError reports a payload line that could not be decoded into a typed
// value. Op names the parser, Raw carries the offending bytes.
type ParseError struct {
	Op     string
	Raw    []byte
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tpg: %s: %s in %q: %v", e.Op, e.Reason, e.Raw, e.Err)
	}
	return fmt.Sprintf("tpg: %s: %s in %q", e.Op, e.Reason, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotHonoredError reports an echoed parameter differing from the one sent,
// i.e. the controller accepted the command but did not apply it.
type NotHonoredError struct {
	Mnemonic Mnemonic
	Sent     []byte
	Echoed   []byte
}

func (e *NotHonoredError) Error() string {
	return fmt.Sprintf("tpg: command %s not honored: sent %q, controller reports %q",
		e.Mnemonic, e.Sent, e.Echoed)
}
