// Package wireless provides an 802.11 management adapter implementation.
package wireless

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"hampter-link/internal/port"
)

// ClientAdapter is an adapter that implements the WirelessManager port by
// shelling out to the iw command. nl80211 has no maintained pure-Go
// binding for IBSS operations, so the adapter uses the same tool an
// operator would.
type ClientAdapter struct{}

// Ensure ClientAdapter implements the WirelessManager port
var _ port.WirelessManager = (*ClientAdapter)(nil)

// NewClientAdapter creates a new wireless manager adapter.
func NewClientAdapter() *ClientAdapter {
	return &ClientAdapter{}
}

// run executes iw with the given arguments. The returned error wraps the
// *exec.ExitError so callers can propagate the command's exit code.
func (c *ClientAdapter) run(ctx context.Context, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, "iw", args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("iw %v failed: %w", args, err)
	}
	return string(out), nil
}

// SetIBSSMode switches the interface's wireless mode to IBSS (ad-hoc).
// The interface must be administratively down for this to succeed on
// most drivers.
func (c *ClientAdapter) SetIBSSMode(ctx context.Context, interfaceName string) error {
	_, err := c.run(ctx, "dev", interfaceName, "set", "type", "ibss")
	return err
}

// Disconnect drops the current association.
func (c *ClientAdapter) Disconnect(ctx context.Context, interfaceName string) error {
	_, err := c.run(ctx, "dev", interfaceName, "disconnect")
	return err
}

// JoinIBSS joins the named cell on the given frequency in MHz.
// The join is fire-and-forget; iw returns before peers are found.
func (c *ClientAdapter) JoinIBSS(ctx context.Context, interfaceName, cell string, freqMHz int) error {
	_, err := c.run(ctx, "dev", interfaceName, "ibss", "join", cell, strconv.Itoa(freqMHz))
	return err
}

// LinkInfo returns the raw output of `iw dev <iface> link`.
func (c *ClientAdapter) LinkInfo(ctx context.Context, interfaceName string) (string, error) {
	return c.run(ctx, "dev", interfaceName, "link")
}

// StationDump returns the raw output of `iw dev <iface> station dump`.
func (c *ClientAdapter) StationDump(ctx context.Context, interfaceName string) (string, error) {
	return c.run(ctx, "dev", interfaceName, "station", "dump")
}

// InterfaceInfo returns the raw output of `iw dev <iface> info`.
func (c *ClientAdapter) InterfaceInfo(ctx context.Context, interfaceName string) (string, error) {
	return c.run(ctx, "dev", interfaceName, "info")
}
