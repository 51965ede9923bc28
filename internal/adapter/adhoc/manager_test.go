//go:build unit

package adhoc

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"testing"

	"hampter-link/internal/mock"
	"hampter-link/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

func newTestManager(t *testing.T, config types.AdHocConfig) (*Manager, *mock.MockNetworkManager, *mock.MockWirelessManager, *mock.MockDaemonController, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	networkMgr := mock.NewMockNetworkManager(ctrl)
	wirelessMgr := mock.NewMockWirelessManager(ctrl)
	daemonCtl := mock.NewMockDaemonController(ctrl)

	manager, err := NewManager(config, networkMgr, wirelessMgr, daemonCtl)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	manager.out = out
	return manager, networkMgr, wirelessMgr, daemonCtl, out
}

func TestNewManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	networkMgr := mock.NewMockNetworkManager(ctrl)
	wirelessMgr := mock.NewMockWirelessManager(ctrl)
	daemonCtl := mock.NewMockDaemonController(ctrl)

	t.Run("ValidConfig", func(t *testing.T) {
		manager, err := NewManager(types.AdHocConfig{
			Interface: "wlan0",
			Address:   "10.0.0.5",
			Channel:   6,
		}, networkMgr, wirelessMgr, daemonCtl)
		require.NoError(t, err)
		assert.Equal(t, "wlan0", manager.GetInterfaceName())
	})

	t.Run("ChannelDefaultsToOne", func(t *testing.T) {
		manager, err := NewManager(types.AdHocConfig{
			Interface: "wlan0",
			Address:   "10.0.0.5",
		}, networkMgr, wirelessMgr, daemonCtl)
		require.NoError(t, err)
		assert.Equal(t, 1, manager.config.Channel)
	})

	t.Run("MissingInterface", func(t *testing.T) {
		_, err := NewManager(types.AdHocConfig{
			Address: "10.0.0.5",
		}, networkMgr, wirelessMgr, daemonCtl)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "interface name is required")
	})

	t.Run("MissingAddress", func(t *testing.T) {
		_, err := NewManager(types.AdHocConfig{
			Interface: "wlan0",
		}, networkMgr, wirelessMgr, daemonCtl)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "static address is required")
	})

	t.Run("InvalidAddress", func(t *testing.T) {
		_, err := NewManager(types.AdHocConfig{
			Interface: "wlan0",
			Address:   "not-an-ip",
		}, networkMgr, wirelessMgr, daemonCtl)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid IPv4 address")
	})

	t.Run("IPv6AddressRejected", func(t *testing.T) {
		_, err := NewManager(types.AdHocConfig{
			Interface: "wlan0",
			Address:   "fe80::1",
		}, networkMgr, wirelessMgr, daemonCtl)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid IPv4 address")
	})
}

func TestManager_Configure(t *testing.T) {
	ctx := context.Background()
	mockLink := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 3, Name: "wlan0"}}

	t.Run("SuccessfulBringUp", func(t *testing.T) {
		manager, networkMgr, wirelessMgr, daemonCtl, out := newTestManager(t, types.AdHocConfig{
			Interface: "wlan0",
			Address:   "10.0.0.5",
		})

		existingAddr := netlink.Addr{
			IPNet: &net.IPNet{
				IP:   net.ParseIP("192.168.1.50"),
				Mask: net.IPv4Mask(255, 255, 255, 0),
			},
		}

		daemonCtl.EXPECT().SetUnmanaged(ctx, "wlan0").Return(nil)
		networkMgr.EXPECT().GetLinkByName("wlan0").Return(mockLink, nil)
		networkMgr.EXPECT().SetLinkDown(mockLink).Return(nil)
		networkMgr.EXPECT().ListAddresses(mockLink).Return([]netlink.Addr{existingAddr}, nil)
		networkMgr.EXPECT().DeleteAddress(mockLink, gomock.Any()).Return(nil)
		wirelessMgr.EXPECT().SetIBSSMode(ctx, "wlan0").Return(nil)
		networkMgr.EXPECT().
			AddAddress(mockLink, gomock.Any()).
			DoAndReturn(func(_ netlink.Link, addr *netlink.Addr) error {
				ones, bits := addr.IPNet.Mask.Size()
				assert.Equal(t, 16, ones)
				assert.Equal(t, 32, bits)
				assert.Equal(t, "10.0.0.5", addr.IPNet.IP.String())
				assert.Equal(t, "10.0.255.255", addr.Broadcast.String())
				return nil
			})
		networkMgr.EXPECT().SetLinkUp(mockLink).Return(nil)
		wirelessMgr.EXPECT().JoinIBSS(ctx, "wlan0", "hampter-net", 2412).Return(nil)

		err := manager.Configure(ctx)
		require.NoError(t, err)

		// Success line echoes interface, address and channel
		assert.Contains(t, out.String(), "wlan0")
		assert.Contains(t, out.String(), "10.0.0.5")
		assert.Contains(t, out.String(), "channel 1")
	})

	t.Run("ExplicitChannelSetsFrequency", func(t *testing.T) {
		manager, networkMgr, wirelessMgr, daemonCtl, _ := newTestManager(t, types.AdHocConfig{
			Interface: "wlan0",
			Address:   "10.0.0.5",
			Channel:   11,
		})

		daemonCtl.EXPECT().SetUnmanaged(ctx, "wlan0").Return(nil)
		networkMgr.EXPECT().GetLinkByName("wlan0").Return(mockLink, nil)
		networkMgr.EXPECT().SetLinkDown(mockLink).Return(nil)
		networkMgr.EXPECT().ListAddresses(mockLink).Return(nil, nil)
		wirelessMgr.EXPECT().SetIBSSMode(ctx, "wlan0").Return(nil)
		networkMgr.EXPECT().AddAddress(mockLink, gomock.Any()).Return(nil)
		networkMgr.EXPECT().SetLinkUp(mockLink).Return(nil)
		wirelessMgr.EXPECT().JoinIBSS(ctx, "wlan0", "hampter-net", 2462).Return(nil)

		err := manager.Configure(ctx)
		assert.NoError(t, err)
	})

	t.Run("MissingDaemonIsOnlyAWarning", func(t *testing.T) {
		manager, networkMgr, wirelessMgr, daemonCtl, _ := newTestManager(t, types.AdHocConfig{
			Interface: "wlan0",
			Address:   "10.0.0.5",
		})

		daemonCtl.EXPECT().SetUnmanaged(ctx, "wlan0").Return(fmt.Errorf("no system bus"))
		networkMgr.EXPECT().GetLinkByName("wlan0").Return(mockLink, nil)
		networkMgr.EXPECT().SetLinkDown(mockLink).Return(nil)
		networkMgr.EXPECT().ListAddresses(mockLink).Return(nil, nil)
		wirelessMgr.EXPECT().SetIBSSMode(ctx, "wlan0").Return(nil)
		networkMgr.EXPECT().AddAddress(mockLink, gomock.Any()).Return(nil)
		networkMgr.EXPECT().SetLinkUp(mockLink).Return(nil)
		wirelessMgr.EXPECT().JoinIBSS(ctx, "wlan0", "hampter-net", 2412).Return(nil)

		err := manager.Configure(ctx)
		assert.NoError(t, err)
	})

	t.Run("NonexistentInterfacePropagates", func(t *testing.T) {
		manager, networkMgr, _, daemonCtl, _ := newTestManager(t, types.AdHocConfig{
			Interface: "wlan9",
			Address:   "10.0.0.5",
		})

		daemonCtl.EXPECT().SetUnmanaged(ctx, "wlan9").Return(nil)
		networkMgr.EXPECT().GetLinkByName("wlan9").Return(nil, fmt.Errorf("Link not found"))

		err := manager.Configure(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get interface")
	})

	t.Run("NoRollbackAfterFlush", func(t *testing.T) {
		// A failure after the flush leaves the interface down and
		// unaddressed; nothing is reverted.
		manager, networkMgr, wirelessMgr, daemonCtl, _ := newTestManager(t, types.AdHocConfig{
			Interface: "wlan0",
			Address:   "10.0.0.5",
		})

		daemonCtl.EXPECT().SetUnmanaged(ctx, "wlan0").Return(nil)
		networkMgr.EXPECT().GetLinkByName("wlan0").Return(mockLink, nil)
		networkMgr.EXPECT().SetLinkDown(mockLink).Return(nil)
		networkMgr.EXPECT().ListAddresses(mockLink).Return(nil, nil)
		wirelessMgr.EXPECT().SetIBSSMode(ctx, "wlan0").Return(nil)
		networkMgr.EXPECT().AddAddress(mockLink, gomock.Any()).Return(fmt.Errorf("permission denied"))

		err := manager.Configure(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to assign address")
	})
}

func TestManager_setIBSSModeWithFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		manager, _, wirelessMgr, _, _ := newTestManager(t, types.AdHocConfig{
			Interface: "wlan0",
			Address:   "10.0.0.5",
		})

		wirelessMgr.EXPECT().SetIBSSMode(ctx, "wlan0").Return(nil)

		assert.NoError(t, manager.setIBSSModeWithFallback(ctx))
	})

	t.Run("RetryOnceAfterDisconnect", func(t *testing.T) {
		manager, _, wirelessMgr, _, _ := newTestManager(t, types.AdHocConfig{
			Interface: "wlan0",
			Address:   "10.0.0.5",
		})

		gomock.InOrder(
			wirelessMgr.EXPECT().SetIBSSMode(ctx, "wlan0").Return(fmt.Errorf("device busy")),
			wirelessMgr.EXPECT().Disconnect(ctx, "wlan0").Return(nil),
			wirelessMgr.EXPECT().SetIBSSMode(ctx, "wlan0").Return(nil),
		)

		assert.NoError(t, manager.setIBSSModeWithFallback(ctx))
	})

	t.Run("DisconnectFailureIsIgnored", func(t *testing.T) {
		manager, _, wirelessMgr, _, _ := newTestManager(t, types.AdHocConfig{
			Interface: "wlan0",
			Address:   "10.0.0.5",
		})

		gomock.InOrder(
			wirelessMgr.EXPECT().SetIBSSMode(ctx, "wlan0").Return(fmt.Errorf("device busy")),
			wirelessMgr.EXPECT().Disconnect(ctx, "wlan0").Return(fmt.Errorf("not connected")),
			wirelessMgr.EXPECT().SetIBSSMode(ctx, "wlan0").Return(nil),
		)

		assert.NoError(t, manager.setIBSSModeWithFallback(ctx))
	})

	t.Run("NoThirdAttempt", func(t *testing.T) {
		manager, _, wirelessMgr, _, _ := newTestManager(t, types.AdHocConfig{
			Interface: "wlan0",
			Address:   "10.0.0.5",
		})

		// Exactly one disconnect and exactly two mode-set calls; the
		// controller fails the test on any extra invocation.
		gomock.InOrder(
			wirelessMgr.EXPECT().SetIBSSMode(ctx, "wlan0").Return(fmt.Errorf("device busy")),
			wirelessMgr.EXPECT().Disconnect(ctx, "wlan0").Return(nil),
			wirelessMgr.EXPECT().SetIBSSMode(ctx, "wlan0").Return(fmt.Errorf("still busy")),
		)

		err := manager.setIBSSModeWithFallback(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set IBSS mode after disconnect")
	})
}
