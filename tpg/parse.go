package tpg

import (
	"bytes"
	"math"
	"strconv"
)

// ParsePressure decodes the controller's mantissa/exponent notation, e.g.
// "1.0E-3" becomes 0.001.
func ParsePressure(raw []byte) (float64, error) {
	parts := bytes.Split(raw, []byte{'E'})
	if len(parts) != 2 {
		return 0, &ParseError{Op: "parse pressure", Raw: raw, Reason: "no single mantissa/exponent separator"}
	}
	mantissa, err := strconv.ParseFloat(string(parts[0]), 64)
	if err != nil {
		return 0, &ParseError{Op: "parse pressure", Raw: raw, Reason: "bad mantissa", Err: err}
	}
	exponent, err := strconv.Atoi(string(parts[1]))
	if err != nil {
		return 0, &ParseError{Op: "parse pressure", Raw: raw, Reason: "bad exponent", Err: err}
	}
	return mantissa * math.Pow10(exponent), nil
}

// parseStatusField resolves one wire status code to a catalog member.
func parseStatusField(op string, raw, field []byte) (MeasurementStatus, error) {
	code, err := strconv.Atoi(string(field))
	if err != nil {
		return 0, &ParseError{Op: op, Raw: raw, Reason: "bad status code", Err: err}
	}
	status, ok := measurementStatusByCode(code)
	if !ok {
		return 0, &ParseError{Op: op, Raw: raw, Reason: "unknown status code " + string(field)}
	}
	return status, nil
}

// ParseMeasurement decodes a single-gauge reply: "status,pressure".
func ParseMeasurement(raw []byte) (MeasurementStatus, float64, error) {
	const op = "parse measurement"
	fields := bytes.Split(raw, []byte{','})
	if len(fields) != 2 {
		return 0, 0, &ParseError{Op: op, Raw: raw, Reason: "expected 2 fields, got " + strconv.Itoa(len(fields))}
	}
	status, err := parseStatusField(op, raw, fields[0])
	if err != nil {
		return 0, 0, err
	}
	pressure, err := ParsePressure(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return status, pressure, nil
}

// ParseDualMeasurement decodes a PRX reply: "status,pressure1,pressure2".
// Both pressures share the single status code.
func ParseDualMeasurement(raw []byte) (MeasurementStatus, float64, float64, error) {
	const op = "parse dual measurement"
	fields := bytes.Split(raw, []byte{','})
	if len(fields) != 3 {
		return 0, 0, 0, &ParseError{Op: op, Raw: raw, Reason: "expected 3 fields, got " + strconv.Itoa(len(fields))}
	}
	status, err := parseStatusField(op, raw, fields[0])
	if err != nil {
		return 0, 0, 0, err
	}
	p1, err := ParsePressure(fields[1])
	if err != nil {
		return 0, 0, 0, err
	}
	p2, err := ParsePressure(fields[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return status, p1, p2, nil
}

// ParseGaugeIDs decodes a TID reply: one gauge identity per channel.
func ParseGaugeIDs(raw []byte) (GaugeID, GaugeID, error) {
	const op = "parse gauge identities"
	fields := bytes.Split(raw, []byte{','})
	if len(fields) != 2 {
		return "", "", &ParseError{Op: op, Raw: raw, Reason: "expected 2 fields, got " + strconv.Itoa(len(fields))}
	}
	id1, ok := gaugeIDsByCode[string(fields[0])]
	if !ok {
		return "", "", &ParseError{Op: op, Raw: raw, Reason: "unknown gauge identity " + string(fields[0])}
	}
	id2, ok := gaugeIDsByCode[string(fields[1])]
	if !ok {
		return "", "", &ParseError{Op: op, Raw: raw, Reason: "unknown gauge identity " + string(fields[1])}
	}
	return id1, id2, nil
}

// ParseErrorStatus decodes an ERR reply against the 4-digit code catalog.
func ParseErrorStatus(raw []byte) (ErrorStatus, error) {
	status := ErrorStatus(raw)
	if _, ok := errorStatusNames[status]; !ok {
		return "", &ParseError{Op: "parse error status", Raw: raw, Reason: "unrecognized error code"}
	}
	return status, nil
}

// ParseResetCauses decodes a RES reply into the cause list in wire order.
func ParseResetCauses(raw []byte) ([]ResetCause, error) {
	fields := bytes.Split(raw, []byte{','})
	causes := make([]ResetCause, 0, len(fields))
	for _, f := range fields {
		cause := ResetCause(f)
		if _, ok := resetCauseNames[cause]; !ok {
			return nil, &ParseError{Op: "parse reset causes", Raw: raw, Reason: "unrecognized reset cause " + string(f)}
		}
		causes = append(causes, cause)
	}
	return causes, nil
}
