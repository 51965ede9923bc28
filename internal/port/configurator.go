// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
)

// InterfaceConfigurator is the primary port for network configuration.
// This interface defines the contract that configuration adapters must
// implement. It follows the Ports and Adapters (Hexagonal Architecture)
// pattern where this is the "port" and the ad-hoc bring-up is the "adapter".
type InterfaceConfigurator interface {
	// Configure transitions the interface into its target state. It is a
	// single-shot operation; the OS retains the resulting state.
	Configure(ctx context.Context) error

	// GetInterfaceName returns the name of the network interface managed
	// by this configurator.
	GetInterfaceName() string
}
