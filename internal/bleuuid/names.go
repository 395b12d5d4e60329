package bleuuid

// Assigned numbers for the services, characteristics and descriptors that
// show up in fixtures. Keys are 16-bit short forms.
var knownNames = map[string]string{
	// Services
	"1800": "Generic Access",
	"1801": "Generic Attribute",
	"180a": "Device Information",
	"180d": "Heart Rate",
	"180f": "Battery",
	"1812": "Human Interface Device",
	"1816": "Cycling Speed and Cadence",
	"1818": "Cycling Power",
	"181a": "Environmental Sensing",
	"1826": "Fitness Machine",

	// Characteristics
	"2a00": "Device Name",
	"2a01": "Appearance",
	"2a04": "Peripheral Preferred Connection Parameters",
	"2a05": "Service Changed",
	"2a19": "Battery Level",
	"2a23": "System ID",
	"2a24": "Model Number String",
	"2a25": "Serial Number String",
	"2a26": "Firmware Revision String",
	"2a27": "Hardware Revision String",
	"2a28": "Software Revision String",
	"2a29": "Manufacturer Name String",
	"2a37": "Heart Rate Measurement",
	"2a38": "Body Sensor Location",
	"2a39": "Heart Rate Control Point",
	"2a4d": "Report",
	"2a6e": "Temperature",
	"2a6f": "Humidity",

	// Descriptors
	"2900": "Characteristic Extended Properties",
	"2901": "Characteristic User Description",
	"2902": "Client Characteristic Configuration",
	"2903": "Server Characteristic Configuration",
	"2904": "Characteristic Presentation Format",
	"2908": "Report Reference",
}

// Name returns the assigned name of a SIG-based UUID, or "" when unknown
func Name(s string) string {
	c, err := Canonical(s)
	if err != nil {
		return ""
	}
	return knownNames[Short(c)]
}
