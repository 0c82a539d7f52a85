// Package tpg implements the serial request/response protocol of the
// Pfeiffer TPG 26x line of vacuum gauge controllers.
//
// Each operation is a single exchange: a framed command is written, the
// controller answers with ACK or NAK, and the requested payload is only
// transmitted after an explicit ENQ byte. A Session is not safe for
// concurrent use; callers that share one must hold a lock for the whole
// command/ACK/ENQ/data cycle, because the controller cannot multiplex
// commands.
package tpg

import "bytes"

// Control bytes used on the wire by the TPG 26x.
const (
	ETX byte = 0x03 // End of text, aborts continuous mode
	ENQ byte = 0x05 // Enquiry, requests transmission of the last addressed data
	ACK byte = 0x06 // Positive acknowledge of a command
	NAK byte = 0x15 // Negative acknowledge of a command
	CR  byte = 0x0D
	LF  byte = 0x0A
)

// lineEnd terminates every frame in both directions.
var lineEnd = []byte{CR, LF}

// Encode builds an outgoing command frame: the mnemonic and its arguments
// joined by commas, terminated with CR LF. A mnemonic without arguments
// still receives the terminator.
func Encode(m Mnemonic, args ...[]byte) []byte {
	b := make([]byte, 0, 3+8*len(args)+2)
	b = append(b, m...)
	for _, a := range args {
		b = append(b, ',')
		b = append(b, a...)
	}
	return append(b, lineEnd...)
}

// DecodeLine validates that raw ends with CR LF and returns the line with
// the terminator stripped. Lines without the terminator are garbled or
// truncated and yield a *FramingError.
func DecodeLine(raw []byte) ([]byte, error) {
	if !bytes.HasSuffix(raw, lineEnd) {
		return nil, &FramingError{Raw: raw}
	}
	return raw[:len(raw)-len(lineEnd)], nil
}
