// Package adhoc provides the ad-hoc (IBSS) network configuration adapter.
package adhoc

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"

	"hampter-link/internal/pkg/logging"
	"hampter-link/internal/pkg/wireless"
	"hampter-link/internal/port"
	"hampter-link/internal/types"

	"github.com/vishvananda/netlink"
)

// CellName is the fixed ad-hoc network name peers join. All Hampter Link
// nodes share one cell; it is not configurable.
const CellName = "hampter-net"

// PrefixLen is the fixed network prefix of the ad-hoc subnet.
const PrefixLen = 16

// Manager is the ad-hoc network configuration adapter that implements the
// InterfaceConfigurator port. It brings a wireless interface from whatever
// state it is in (managed, associated, infrastructure mode) into IBSS mode
// with a static address, joined to the fixed cell.
type Manager struct {
	config      types.AdHocConfig
	address     net.IP
	networkMgr  port.NetworkManager
	wirelessMgr port.WirelessManager
	daemonCtl   port.DaemonController
	out         io.Writer
}

// Ensure Manager implements the InterfaceConfigurator port
var _ port.InterfaceConfigurator = (*Manager)(nil)

// NewManager creates a new ad-hoc configuration adapter for the given
// parameters. The interface name and address are required; the address
// must be IPv4. Nothing is validated against the live system here, so a
// nonexistent interface only surfaces once Configure runs.
func NewManager(config types.AdHocConfig, networkMgr port.NetworkManager, wirelessMgr port.WirelessManager, daemonCtl port.DaemonController) (*Manager, error) {
	if config.Interface == "" {
		return nil, fmt.Errorf("interface name is required")
	}
	if config.Address == "" {
		return nil, fmt.Errorf("static address is required")
	}
	ip := net.ParseIP(config.Address)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("invalid IPv4 address: %s", config.Address)
	}
	if config.Channel == 0 {
		config.Channel = wireless.DefaultChannel
	}

	return &Manager{
		config:      config,
		address:     ip.To4(),
		networkMgr:  networkMgr,
		wirelessMgr: wirelessMgr,
		daemonCtl:   daemonCtl,
		out:         os.Stdout,
	}, nil
}

// GetInterfaceName returns the name of the network interface managed by this configurator.
func (m *Manager) GetInterfaceName() string {
	return m.config.Interface
}

// Configure runs the bring-up sequence. There is no rollback: a failure
// partway leaves the interface in the state the last successful step
// produced. The only retry in the sequence is the IBSS mode-set fallback.
func (m *Manager) Configure(ctx context.Context) error {
	logger := logging.WithComponentAndInterface("adhoc", m.config.Interface)
	logger.WithFields(map[string]interface{}{
		"address": m.config.Address,
		"channel": m.config.Channel,
	}).Info("Starting ad-hoc configuration")

	// Step 1: best-effort, a missing daemon must not stop the bring-up
	if err := m.daemonCtl.SetUnmanaged(ctx, m.config.Interface); err != nil {
		logger.WithError(err).Warn("Could not mark interface unmanaged, proceeding anyway")
	} else {
		logger.Info("Interface marked unmanaged")
	}

	link, err := m.networkMgr.GetLinkByName(m.config.Interface)
	if err != nil {
		return fmt.Errorf("failed to get interface: %w", err)
	}

	// Step 2: down + flush, idempotent on an already-down interface
	if err := m.networkMgr.SetLinkDown(link); err != nil {
		return fmt.Errorf("failed to bring interface down: %w", err)
	}
	if err := m.flushAddresses(link); err != nil {
		return err
	}

	// Step 3: IBSS mode with the single documented fallback
	if err := m.setIBSSModeWithFallback(ctx); err != nil {
		return err
	}

	// Step 4: static address with /16 prefix and derived broadcast
	if err := m.assignAddress(link); err != nil {
		return err
	}

	// Step 5
	if err := m.networkMgr.SetLinkUp(link); err != nil {
		return fmt.Errorf("failed to bring interface up: %w", err)
	}

	// Step 6
	freq := wireless.Frequency(m.config.Channel)
	logger.WithFields(map[string]interface{}{
		"cell": CellName,
		"freq": freq,
	}).Info("Joining ad-hoc cell")
	if err := m.wirelessMgr.JoinIBSS(ctx, m.config.Interface, CellName, freq); err != nil {
		return fmt.Errorf("failed to join cell %s: %w", CellName, err)
	}

	// Step 7
	fmt.Fprintf(m.out, "%s configured: %s/%d on %s (channel %d, %d MHz)\n",
		m.config.Interface, m.config.Address, PrefixLen, CellName, m.config.Channel, freq)
	return nil
}

// flushAddresses removes every IPv4 address from the link.
func (m *Manager) flushAddresses(link netlink.Link) error {
	logger := logging.WithComponentAndInterface("adhoc", m.config.Interface)

	addrs, err := m.networkMgr.ListAddresses(link)
	if err != nil {
		return fmt.Errorf("failed to list existing addresses: %w", err)
	}
	for _, addr := range addrs {
		if err := m.networkMgr.DeleteAddress(link, &addr); err != nil {
			return fmt.Errorf("failed to flush address %s: %w", addr.IPNet.String(), err)
		}
		logger.WithField("address", addr.IPNet.String()).Debug("Removed existing address")
	}
	return nil
}

// setIBSSModeWithFallback attempts the mode switch; on failure it issues a
// disconnect (whose own failure is ignored) and retries exactly once. A
// second failure is final.
func (m *Manager) setIBSSModeWithFallback(ctx context.Context) error {
	logger := logging.WithComponentAndInterface("adhoc", m.config.Interface)

	err := m.wirelessMgr.SetIBSSMode(ctx, m.config.Interface)
	if err == nil {
		return nil
	}
	logger.WithError(err).Warn("IBSS mode switch failed, disconnecting and retrying")

	if err := m.wirelessMgr.Disconnect(ctx, m.config.Interface); err != nil {
		logger.WithError(err).Debug("Disconnect failed, retrying mode switch regardless")
	}

	if err := m.wirelessMgr.SetIBSSMode(ctx, m.config.Interface); err != nil {
		return fmt.Errorf("failed to set IBSS mode after disconnect: %w", err)
	}
	return nil
}

// assignAddress adds the static address with the fixed /16 prefix and the
// broadcast address derived from it.
func (m *Manager) assignAddress(link netlink.Link) error {
	mask := net.CIDRMask(PrefixLen, 32)
	broadcast := make(net.IP, net.IPv4len)
	for i := range broadcast {
		broadcast[i] = m.address[i] | ^mask[i]
	}

	addr := &netlink.Addr{
		IPNet: &net.IPNet{
			IP:   m.address,
			Mask: mask,
		},
		Broadcast: broadcast,
	}
	if err := m.networkMgr.AddAddress(link, addr); err != nil {
		return fmt.Errorf("failed to assign address %s: %w", addr.IPNet.String(), err)
	}

	logging.WithComponentAndInterface("adhoc", m.config.Interface).
		WithFields(map[string]interface{}{
			"address":   addr.IPNet.String(),
			"broadcast": broadcast.String(),
		}).Info("Assigned static address")
	return nil
}
