// Package status provides the wireless status reporting adapter.
package status

import (
	"context"
	"fmt"
	"io"
	"os"

	"hampter-link/internal/pkg/logging"
	"hampter-link/internal/pkg/wireless"
	"hampter-link/internal/port"
)

// Reporter prints the wireless link statistics for an interface.
type Reporter struct {
	iface       string
	wirelessMgr port.WirelessManager
	out         io.Writer
}

// NewReporter creates a status reporter for the given interface.
func NewReporter(iface string, wirelessMgr port.WirelessManager) (*Reporter, error) {
	if iface == "" {
		return nil, fmt.Errorf("interface name is required")
	}
	return &Reporter{
		iface:       iface,
		wirelessMgr: wirelessMgr,
		out:         os.Stdout,
	}, nil
}

// Run queries the link and station state and prints the parsed stats.
// Station statistics are best-effort; an unassociated interface has none.
func (r *Reporter) Run(ctx context.Context) error {
	logger := logging.WithComponentAndInterface("status", r.iface)

	var stats wireless.LinkStats

	linkOut, err := r.wirelessMgr.LinkInfo(ctx, r.iface)
	if err != nil {
		return fmt.Errorf("failed to query link: %w", err)
	}
	wireless.ParseLink(linkOut, &stats)

	stationOut, err := r.wirelessMgr.StationDump(ctx, r.iface)
	if err != nil {
		logger.WithError(err).Debug("Station dump failed, signal stats unavailable")
	} else {
		wireless.ParseStationDump(stationOut, &stats)
	}

	if !stats.Connected {
		fmt.Fprintf(r.out, "%s: not connected\n", r.iface)
		return nil
	}

	fmt.Fprintf(r.out, "%s: joined %q\n", r.iface, stats.Cell)
	fmt.Fprintf(r.out, "  frequency: %d MHz (%s)\n", stats.FrequencyMHz, stats.Band)
	if stats.RSSI != 0 {
		fmt.Fprintf(r.out, "  signal:    %d dBm (quality %d%%)\n", stats.RSSI, stats.LinkQuality)
	}
	if stats.TxBitrate != "" {
		fmt.Fprintf(r.out, "  tx rate:   %s\n", stats.TxBitrate)
	}
	return nil
}
