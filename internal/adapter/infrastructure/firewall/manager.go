// Package firewall provides firewall inspection adapter implementation.
package firewall

import (
	"fmt"

	"hampter-link/internal/port"

	"github.com/coreos/go-iptables/iptables"
)

// ManagerAdapter is an adapter that implements the FirewallManager port
// using the coreos/go-iptables library.
type ManagerAdapter struct {
	ipt *iptables.IPTables
}

// Ensure ManagerAdapter implements the FirewallManager port
var _ port.FirewallManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new firewall manager adapter.
func NewManagerAdapter() (*ManagerAdapter, error) {
	ipt, err := iptables.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize iptables: %w", err)
	}
	return &ManagerAdapter{ipt: ipt}, nil
}

// ListFilterRules returns the rules of the given chain in the filter table.
func (f *ManagerAdapter) ListFilterRules(chain string) ([]string, error) {
	rules, err := f.ipt.List("filter", chain)
	if err != nil {
		return nil, fmt.Errorf("failed to list filter/%s rules: %w", chain, err)
	}
	return rules, nil
}
