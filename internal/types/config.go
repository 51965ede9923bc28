// Package types defines common types used across the application.
package types

// AdHocConfig represents the parameters of one ad-hoc bring-up invocation.
// This type is used by the ad-hoc network configuration adapter.
type AdHocConfig struct {
	Interface string // Wireless interface name (e.g., "wlan0")
	Address   string // IPv4 address in dotted decimal notation (e.g., "10.0.0.5")
	Channel   int    // 2.4 GHz channel number; channel 1 maps to 2412 MHz
}
