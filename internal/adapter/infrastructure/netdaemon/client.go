// Package netdaemon provides a NetworkManager control adapter implementation.
package netdaemon

import (
	"context"
	"fmt"

	"hampter-link/internal/port"

	"github.com/godbus/dbus/v5"
)

const (
	nmDest       = "org.freedesktop.NetworkManager"
	nmObjectPath = dbus.ObjectPath("/org/freedesktop/NetworkManager")

	nmGetDeviceMethod = "org.freedesktop.NetworkManager.GetDeviceByIpIface"
	nmDeviceManaged   = "org.freedesktop.NetworkManager.Device.Managed"

	dbusDefaultFlag = 0
)

// ClientAdapter is an adapter that implements the DaemonController port
// over the NetworkManager D-Bus API.
type ClientAdapter struct{}

// Ensure ClientAdapter implements the DaemonController port
var _ port.DaemonController = (*ClientAdapter)(nil)

// NewClientAdapter creates a new NetworkManager control adapter.
func NewClientAdapter() *ClientAdapter {
	return &ClientAdapter{}
}

// SetUnmanaged marks the interface unmanaged in NetworkManager so the
// daemon stops reverting manual configuration. An unreachable daemon or
// unknown device surfaces as an error; callers downgrade it to a warning.
func (c *ClientAdapter) SetUnmanaged(ctx context.Context, interfaceName string) error {
	conn, err := dbus.SystemBus()
	if err != nil {
		return fmt.Errorf("failed to connect to system bus: %w", err)
	}

	nm := conn.Object(nmDest, nmObjectPath)

	var devicePath dbus.ObjectPath
	if err := nm.CallWithContext(ctx, nmGetDeviceMethod, dbusDefaultFlag, interfaceName).Store(&devicePath); err != nil {
		return fmt.Errorf("NetworkManager does not know device %s: %w", interfaceName, err)
	}

	device := conn.Object(nmDest, devicePath)
	if err := device.SetProperty(nmDeviceManaged, dbus.MakeVariant(false)); err != nil {
		return fmt.Errorf("failed to mark %s unmanaged: %w", interfaceName, err)
	}

	return nil
}
