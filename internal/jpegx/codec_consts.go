package jpegx

const (
	markerStart = 0xff
	soiMarker   = 0xd8 // Start Of Image.
	eoiMarker   = 0xd9 // End Of Image.
	sosMarker   = 0xda // Start Of Scan.
	temMarker   = 0x01 // Temporary, standalone.

	rst0Marker = 0xd0 // Restart markers carry no length.
	rst7Marker = 0xd7

	sof0Marker = 0xc0 // Start Of Frame (Baseline Sequential).
	sof1Marker = 0xc1 // Start Of Frame (Extended Sequential).
	sof2Marker = 0xc2 // Start Of Frame (Progressive).
)

// sofLen is the minimal SOF payload: precision, height, width, component count.
const sofLen = 1 + 2 + 2 + 1
