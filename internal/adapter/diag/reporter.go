// Package diag provides the network diagnostics reporting adapter.
package diag

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"hampter-link/internal/pkg/logging"
	"hampter-link/internal/port"
)

// firewallHeadLines caps the firewall section; full rule sets on routers
// run to hundreds of lines and drown the rest of the report.
const firewallHeadLines = 10

// Reporter prints a read-only diagnostic report for an interface and a
// peer address. All interface state is inspected as-is; the only traffic
// generated is the ping probe.
type Reporter struct {
	iface       string
	target      string
	wirelessMgr port.WirelessManager
	firewallMgr port.FirewallManager
	runner      port.CommandRunner
	out         io.Writer
}

// NewReporter creates a diagnostics reporter for the given interface and
// ping target. A nil firewall manager skips the firewall section (e.g.,
// iptables missing), which is a note in the report rather than an error.
func NewReporter(iface, target string, wirelessMgr port.WirelessManager, firewallMgr port.FirewallManager, runner port.CommandRunner) (*Reporter, error) {
	if iface == "" {
		return nil, fmt.Errorf("interface name is required")
	}
	if target == "" {
		return nil, fmt.Errorf("target address is required")
	}
	if ip := net.ParseIP(target); ip == nil {
		return nil, fmt.Errorf("invalid target address: %s", target)
	}

	return &Reporter{
		iface:       iface,
		target:      target,
		wirelessMgr: wirelessMgr,
		firewallMgr: firewallMgr,
		runner:      runner,
		out:         os.Stdout,
	}, nil
}

// Run prints the five report sections. The first four are best-effort;
// their failures are printed inline and do not abort the report. The ping
// result is the report's verdict and its error is returned so the caller
// can exit with the ping command's exit code.
func (r *Reporter) Run(ctx context.Context) error {
	logger := logging.WithComponentAndInterface("diag", r.iface)
	logger.WithField("target", r.target).Info("Running diagnostics")

	r.section("Interface Status")
	out, err := r.runner.Output(ctx, "ip", "addr", "show", "dev", r.iface)
	r.printResult(out, err)

	r.section("Wireless Mode")
	out, err = r.wirelessMgr.InterfaceInfo(ctx, r.iface)
	r.printResult(out, err)

	r.section("Link Info")
	out, err = r.wirelessMgr.LinkInfo(ctx, r.iface)
	r.printResult(out, err)

	r.section("Firewall (filter/INPUT)")
	r.printFirewall()

	r.section(fmt.Sprintf("Ping %s", r.target))
	out, err = r.runner.Output(ctx, "ping", "-c", "4", "-I", r.iface, r.target)
	r.printResult(out, err)
	if err != nil {
		return fmt.Errorf("ping %s failed: %w", r.target, err)
	}
	return nil
}

func (r *Reporter) section(title string) {
	fmt.Fprintf(r.out, "=== %s ===\n", title)
}

func (r *Reporter) printResult(out string, err error) {
	if out != "" {
		fmt.Fprint(r.out, out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Fprintln(r.out)
		}
	}
	if err != nil {
		fmt.Fprintf(r.out, "(%v)\n", err)
	}
}

func (r *Reporter) printFirewall() {
	if r.firewallMgr == nil {
		fmt.Fprintln(r.out, "(iptables unavailable)")
		return
	}
	rules, err := r.firewallMgr.ListFilterRules("INPUT")
	if err != nil {
		fmt.Fprintf(r.out, "(%v)\n", err)
		return
	}
	for i, rule := range rules {
		if i == firewallHeadLines {
			fmt.Fprintf(r.out, "... %d more rules\n", len(rules)-firewallHeadLines)
			break
		}
		fmt.Fprintln(r.out, rule)
	}
}
