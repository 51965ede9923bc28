// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"github.com/vishvananda/netlink"
)

// NetworkManager is a port for network interface operations.
// This interface abstracts netlink operations for network configuration.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)

	// AddAddress adds an IP address to the interface
	AddAddress(link netlink.Link, addr *netlink.Addr) error

	// DeleteAddress removes an IP address from the interface
	DeleteAddress(link netlink.Link, addr *netlink.Addr) error

	// SetLinkUp brings the interface up
	SetLinkUp(link netlink.Link) error

	// SetLinkDown brings the interface administratively down
	SetLinkDown(link netlink.Link) error
}

// WirelessManager is a port for 802.11 operations on an interface.
// This interface abstracts the iw command surface used for ad-hoc mode.
type WirelessManager interface {
	// SetIBSSMode switches the interface's wireless mode to IBSS (ad-hoc)
	SetIBSSMode(ctx context.Context, interfaceName string) error

	// Disconnect drops the current association; callers may ignore failure
	Disconnect(ctx context.Context, interfaceName string) error

	// JoinIBSS joins the named cell on the given frequency in MHz
	JoinIBSS(ctx context.Context, interfaceName, cell string, freqMHz int) error

	// LinkInfo returns the raw output of the wireless link query
	LinkInfo(ctx context.Context, interfaceName string) (string, error)

	// StationDump returns the raw output of the station statistics query
	StationDump(ctx context.Context, interfaceName string) (string, error)

	// InterfaceInfo returns the raw output of the wireless interface query
	InterfaceInfo(ctx context.Context, interfaceName string) (string, error)
}

// DaemonController is a port for the system network-management daemon.
// This interface abstracts marking an interface unmanaged so the daemon
// stops reverting manual configuration.
type DaemonController interface {
	// SetUnmanaged asks the daemon to stop managing the interface.
	// Implementations return an error when the daemon is unreachable;
	// callers treat that as a warning, not a failure.
	SetUnmanaged(ctx context.Context, interfaceName string) error
}

// FirewallManager is a port for firewall rule inspection.
type FirewallManager interface {
	// ListFilterRules returns the rules of the given chain in the filter
	// table, one rule specification per line
	ListFilterRules(chain string) ([]string, error)
}

// CommandRunner is a port for running diagnostic OS commands.
// This interface abstracts process execution so reporters can be tested
// without touching the system.
type CommandRunner interface {
	// Output runs the named command and returns its combined output.
	// A non-zero exit is returned as an error wrapping *exec.ExitError
	// alongside whatever output was produced.
	Output(ctx context.Context, name string, args ...string) (string, error)
}
