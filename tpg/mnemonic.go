package tpg

// Mnemonic is a 3-byte command code recognized by the controller.
type Mnemonic string

// The complete mnemonic catalog of the TPG 26x. The Session only exercises
// a handful of these; the rest are listed so callers with special needs can
// drive them through the low-level SendCommand/Enquire pair.
const (
	ADC Mnemonic = "ADC" // A/D converter test
	BAU Mnemonic = "BAU" // Baud rate (transmission rate)
	CAL Mnemonic = "CAL" // Calibration factor
	COM Mnemonic = "COM" // Continuous mode
	DCD Mnemonic = "DCD" // Display control digits (display resolution)
	DGS Mnemonic = "DGS" // Degas
	DIC Mnemonic = "DIC" // Display control (display changeover)
	DIS Mnemonic = "DIS" // Display test
	EEP Mnemonic = "EEP" // EEPROM test
	EPR Mnemonic = "EPR" // Error status
	ERR Mnemonic = "ERR" // Error status
	FIL Mnemonic = "FIL" // Filter time constant (measurement value filter)
	FSR Mnemonic = "FSR" // Full scale range of linear gauges
	IOT Mnemonic = "IOT" // I/O test
	LOC Mnemonic = "LOC" // Keylock
	OFC Mnemonic = "OFC" // Offset correction (linear gauges)
	OFD Mnemonic = "OFD" // Offset display (linear gauges)
	PNR Mnemonic = "PNR" // Program number (firmware version)
	PR1 Mnemonic = "PR1" // Pressure measurement gauge 1
	PR2 Mnemonic = "PR2" // Pressure measurement gauge 2
	PRX Mnemonic = "PRX" // Pressure measurement gauge 1 and 2
	PUC Mnemonic = "PUC" // Penning underrange control
	RAM Mnemonic = "RAM" // RAM test
	RES Mnemonic = "RES" // Reset
	RST Mnemonic = "RST" // RS232 test
	SAV Mnemonic = "SAV" // Save parameters to EEPROM
	SC1 Mnemonic = "SC1" // Sensor control 1 (gauge control 1)
	SC2 Mnemonic = "SC2" // Sensor control 2 (gauge control 2)
	SCT Mnemonic = "SCT" // Sensor channel change (measurement channel change)
	SEN Mnemonic = "SEN" // Sensors on/off
	SP1 Mnemonic = "SP1" // Setpoint 1 (switching function 1)
	SP2 Mnemonic = "SP2" // Setpoint 2 (switching function 2)
	SP3 Mnemonic = "SP3" // Setpoint 3 (switching function 3)
	SP4 Mnemonic = "SP4" // Setpoint 4 (switching function 4)
	SPS Mnemonic = "SPS" // Setpoint status (switching function status)
	TID Mnemonic = "TID" // Transmitter identification (gauge identification)
	TKB Mnemonic = "TKB" // Keyboard test (operator key test)
	TLC Mnemonic = "TLC" // Torr lock
	UNI Mnemonic = "UNI" // Pressure unit
	WDT Mnemonic = "WDT" // Watchdog control
)
