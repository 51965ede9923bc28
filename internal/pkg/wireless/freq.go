// Package wireless provides pure helpers for 802.11 ad-hoc networking:
// channel/frequency conversion and parsing of iw command output.
package wireless

// DefaultChannel is used when no channel argument is supplied.
const DefaultChannel = 1

// Frequency returns the center frequency in MHz for a 2.4 GHz channel.
// Channel 1 is anchored at 2412 MHz with 5 MHz spacing.
func Frequency(channel int) int {
	return 2412 + (channel-1)*5
}

// BandForFrequency maps a frequency in MHz to its band name.
func BandForFrequency(freqMHz int) string {
	switch {
	case freqMHz < 3000:
		return "2.4 GHz"
	case freqMHz < 6000:
		return "5 GHz"
	default:
		return "6 GHz"
	}
}

// QualityFromRSSI converts a signal strength in dBm to a 0-100 link
// quality percentage, linear between -100 dBm (0) and -50 dBm (100).
func QualityFromRSSI(rssi int) int {
	switch {
	case rssi >= -50:
		return 100
	case rssi <= -100:
		return 0
	default:
		return 2 * (rssi + 100)
	}
}
