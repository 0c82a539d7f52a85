package tpg

// MeasurementStatus qualifies a pressure reading. The controller prefixes
// every measurement with one of these codes.
type MeasurementStatus int

const (
	StatusOK                  MeasurementStatus = 0
	StatusUnderrange          MeasurementStatus = 1
	StatusOverrange           MeasurementStatus = 2
	StatusSensorError         MeasurementStatus = 3
	StatusSensorOff           MeasurementStatus = 4
	StatusNoSensor            MeasurementStatus = 5
	StatusIdentificationError MeasurementStatus = 6
)

var measurementStatusNames = map[MeasurementStatus]string{
	StatusOK:                  "ok",
	StatusUnderrange:          "underrange",
	StatusOverrange:           "overrange",
	StatusSensorError:         "sensor error",
	StatusSensorOff:           "sensor off",
	StatusNoSensor:            "no sensor",
	StatusIdentificationError: "identification error",
}

func (s MeasurementStatus) String() string {
	if n, ok := measurementStatusNames[s]; ok {
		return n
	}
	return "unknown"
}

// measurementStatusByCode maps the wire code to its catalog member.
func measurementStatusByCode(code int) (MeasurementStatus, bool) {
	s := MeasurementStatus(code)
	_, ok := measurementStatusNames[s]
	return s, ok
}

// GaugeID identifies the gauge type installed on a measurement channel.
type GaugeID string

const (
	GaugePirani       GaugeID = "TPR"   // Pirani or Pirani capacitive gauge
	GaugeColdCathode9 GaugeID = "IK9"   // Cold cathode gauge to 1e-9
	GaugeColdCathode  GaugeID = "IKR11" // Cold cathode gauge to 1e-11
	GaugeFullRangeCC  GaugeID = "PKR"   // Full range cold cathode gauge
	GaugeFullRangeBA  GaugeID = "PBR"   // Full range Bayard-Alpert gauge
	GaugeHighPressure GaugeID = "IMR"   // Pirani / high pressure gauge
	GaugeLinear       GaugeID = "CMR"   // Linear gauge
	GaugeNoSensor     GaugeID = "noSEn" // No sensor connected
	GaugeNoIdentifier GaugeID = "noid"  // Sensor present but not identifiable
)

var gaugeIDsByCode = map[string]GaugeID{
	"TPR":   GaugePirani,
	"IK9":   GaugeColdCathode9,
	"IKR11": GaugeColdCathode,
	"PKR":   GaugeFullRangeCC,
	"PBR":   GaugeFullRangeBA,
	"IMR":   GaugeHighPressure,
	"CMR":   GaugeLinear,
	"noSEn": GaugeNoSensor,
	"noid":  GaugeNoIdentifier,
}

// GaugeChannel selects one of the two physical sensor inputs.
type GaugeChannel byte

const (
	Gauge1 GaugeChannel = '0'
	Gauge2 GaugeChannel = '1'
)

func (c GaugeChannel) String() string {
	if c == Gauge2 {
		return "gauge 2"
	}
	return "gauge 1"
}

// PowerState is the tri-state signal byte used by the SEN command.
type PowerState byte

const (
	PowerUnchanged PowerState = '0'
	PowerOn        PowerState = '1'
	PowerOff       PowerState = '2'
)

// ErrorStatus is the 4-digit controller error word returned by ERR.
type ErrorStatus string

const (
	ErrNone          ErrorStatus = "0000"
	ErrNoHardware    ErrorStatus = "0100"
	ErrInadmissible  ErrorStatus = "0010"
	ErrSyntax        ErrorStatus = "0001"
	// ErrGeneric shares the wire code of ErrNone in the vendor material this
	// catalog was transcribed from, which looks like a documentation bug.
	// The parser resolves "0000" to ErrNone; verify against the hardware
	// manual before relying on the distinction.
	ErrGeneric ErrorStatus = "0000"
)

var errorStatusNames = map[ErrorStatus]string{
	ErrNone:         "no error",
	ErrNoHardware:   "no hardware",
	ErrInadmissible: "inadmissible parameter",
	ErrSyntax:       "syntax error",
}

func (e ErrorStatus) String() string {
	if n, ok := errorStatusNames[e]; ok {
		return n
	}
	return "unknown"
}

// ResetCause is one entry of the subsystem check list reported after RES.
type ResetCause string

const (
	ResetNoError        ResetCause = "0"
	ResetWatchdog       ResetCause = "1"
	ResetTaskFailed     ResetCause = "2"
	ResetEPROM          ResetCause = "3"
	ResetRAM            ResetCause = "4"
	ResetEEPROM         ResetCause = "5"
	ResetDisplay        ResetCause = "6"
	ResetADConverter    ResetCause = "7"
	ResetGauge1         ResetCause = "9"
	ResetGauge1Identity ResetCause = "10"
	ResetGauge2         ResetCause = "11"
	ResetGauge2Identity ResetCause = "12"
)

var resetCauseNames = map[ResetCause]string{
	ResetNoError:        "no error",
	ResetWatchdog:       "watchdog responded",
	ResetTaskFailed:     "task failed",
	ResetEPROM:          "EPROM error",
	ResetRAM:            "RAM error",
	ResetEEPROM:         "EEPROM error",
	ResetDisplay:        "display error",
	ResetADConverter:    "A/D converter error",
	ResetGauge1:         "gauge 1 error",
	ResetGauge1Identity: "gauge 1 identification error",
	ResetGauge2:         "gauge 2 error",
	ResetGauge2Identity: "gauge 2 identification error",
}

func (r ResetCause) String() string {
	if n, ok := resetCauseNames[r]; ok {
		return n
	}
	return "unknown"
}
