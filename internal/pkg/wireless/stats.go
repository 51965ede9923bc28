package wireless

import (
	"regexp"
	"strconv"
	"strings"
)

// LinkStats describes the state of a wireless link as reported by iw.
type LinkStats struct {
	Connected    bool
	Cell         string // SSID or IBSS cell name
	FrequencyMHz int
	Band         string
	RSSI         int // dBm
	LinkQuality  int // 0-100
	TxBitrate    string
}

var (
	ssidRE      = regexp.MustCompile(`(?m)^\s*SSID:\s*(.+)$`)
	freqRE      = regexp.MustCompile(`freq:\s*(\d+)`)
	signalRE    = regexp.MustCompile(`signal:\s*(-?\d+)`)
	txBitrateRE = regexp.MustCompile(`(?m)tx bitrate:\s*(.+)$`)
)

// ParseLink extracts connection state, cell name and frequency from the
// output of `iw dev <iface> link`. An unassociated interface reports
// "Not connected."; both infrastructure ("Connected to") and ad-hoc
// ("Joined IBSS") associations count as connected.
func ParseLink(output string, stats *LinkStats) {
	stats.Connected = strings.Contains(output, "Connected to") ||
		strings.Contains(output, "Joined IBSS")

	if m := ssidRE.FindStringSubmatch(output); m != nil {
		stats.Cell = strings.TrimSpace(m[1])
	}
	if m := freqRE.FindStringSubmatch(output); m != nil {
		freq, err := strconv.Atoi(m[1])
		if err == nil {
			stats.FrequencyMHz = freq
			stats.Band = BandForFrequency(freq)
		}
	}
	if m := txBitrateRE.FindStringSubmatch(output); m != nil {
		stats.TxBitrate = strings.TrimSpace(m[1])
	}
}

// ParseStationDump extracts signal strength from the output of
// `iw dev <iface> station dump` and derives the link quality from it.
// The first station's signal is used; in an IBSS cell with multiple
// peers that is the nearest-listed one.
func ParseStationDump(output string, stats *LinkStats) {
	if m := signalRE.FindStringSubmatch(output); m != nil {
		rssi, err := strconv.Atoi(m[1])
		if err == nil {
			stats.RSSI = rssi
			stats.LinkQuality = QualityFromRSSI(rssi)
		}
	}
}
