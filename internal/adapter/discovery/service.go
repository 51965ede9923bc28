// Package discovery provides the UDP beacon peer discovery adapter.
package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"sync"
	"syscall"
	"time"

	"hampter-link/internal/pkg/config"
	"hampter-link/internal/pkg/logging"
	"hampter-link/internal/port"

	"golang.org/x/sys/unix"
)

// beaconMagic prefixes every discovery datagram; anything else on the
// port is ignored.
var beaconMagic = []byte("HAMPTER:")

// beaconStatus is the advertised node state. Only READY exists today;
// the field is kept for protocol compatibility with richer peers.
const beaconStatus = "READY"

// Beacon is the JSON payload following the magic prefix.
type Beacon struct {
	Hostname string `json:"hostname"`
	Status   string `json:"status"`
}

// Service broadcasts presence beacons on the ad-hoc network and tracks
// the peers whose beacons it hears. It runs until the context is
// cancelled, in the manner of a network configuration manager.
type Service struct {
	iface      string
	cfg        config.DiscoveryConfig
	networkMgr port.NetworkManager
	hostname   string

	mu    sync.Mutex
	peers map[string]string // hostname -> last seen address
}

// NewService creates a discovery service for the given interface. The
// advertised hostname comes from the config override or the OS.
func NewService(iface string, cfg config.DiscoveryConfig, networkMgr port.NetworkManager) (*Service, error) {
	if iface == "" {
		return nil, fmt.Errorf("interface name is required")
	}

	hostname := cfg.Hostname
	if hostname == "" {
		h, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("failed to determine hostname: %w", err)
		}
		hostname = h
	}

	return &Service{
		iface:      iface,
		cfg:        cfg,
		networkMgr: networkMgr,
		hostname:   hostname,
		peers:      make(map[string]string),
	}, nil
}

// GetInterfaceName returns the name of the network interface this service
// listens on.
func (s *Service) GetInterfaceName() string {
	return s.iface
}

// Peers returns a snapshot of the peers seen so far, hostname to address.
func (s *Service) Peers() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(map[string]string, len(s.peers))
	for k, v := range s.peers {
		snapshot[k] = v
	}
	return snapshot
}

// Run broadcasts a beacon every interval and handles incoming beacons
// until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	logger := logging.WithComponentAndInterface("discovery", s.iface)

	conn, err := s.listen(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	broadcast := s.broadcastAddr()
	dest := &net.UDPAddr{IP: broadcast, Port: s.cfg.Port}
	logger.WithFields(map[string]interface{}{
		"hostname": s.hostname,
		"target":   dest.String(),
	}).Info("Starting peer discovery")

	// Reader goroutine; unblocked by conn.Close on shutdown
	go s.readLoop(conn)

	ticker := time.NewTicker(time.Duration(s.cfg.IntervalSeconds) * time.Second)
	defer ticker.Stop()

	payload := encodeBeacon(Beacon{Hostname: s.hostname, Status: beaconStatus})
	for {
		select {
		case <-ctx.Done():
			logger.Info("Peer discovery stopped due to context cancellation")
			return ctx.Err()
		case <-ticker.C:
			if _, err := conn.WriteTo(payload, dest); err != nil {
				logger.WithError(err).Warn("Failed to send beacon")
			}
		}
	}
}

// listen opens the beacon socket bound to the device with broadcast
// enabled. Binding to the device matters on multi-interface hosts where
// the default route is not the ad-hoc link.
func (s *Service) listen(ctx context.Context) (net.PacketConn, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var sockErr error
			err := c.Control(func(fd uintptr) {
				if err := unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1); err != nil {
					sockErr = fmt.Errorf("failed to enable broadcast: %w", err)
					return
				}
				if err := unix.BindToDevice(int(fd), s.iface); err != nil {
					sockErr = fmt.Errorf("failed to bind to device %s: %w", s.iface, err)
				}
			})
			if err != nil {
				return err
			}
			return sockErr
		},
	}

	conn, err := lc.ListenPacket(ctx, "udp4", fmt.Sprintf("0.0.0.0:%d", s.cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to open beacon socket: %w", err)
	}
	return conn, nil
}

// broadcastAddr derives the subnet broadcast address from the interface's
// first IPv4 address. The limited broadcast address is the fallback; the
// subnet address is more reliable inside an ad-hoc cell.
func (s *Service) broadcastAddr() net.IP {
	logger := logging.WithComponentAndInterface("discovery", s.iface)

	link, err := s.networkMgr.GetLinkByName(s.iface)
	if err != nil {
		logger.WithError(err).Warn("Could not resolve interface, using limited broadcast")
		return net.IPv4bcast
	}
	addrs, err := s.networkMgr.ListAddresses(link)
	if err != nil {
		logger.WithError(err).Warn("Could not list addresses, using limited broadcast")
		return net.IPv4bcast
	}
	for _, addr := range addrs {
		if addr.Broadcast != nil {
			return addr.Broadcast
		}
	}
	return net.IPv4bcast
}

// readLoop handles incoming datagrams until the socket closes.
func (s *Service) readLoop(conn net.PacketConn) {
	buf := make([]byte, 1500)
	for {
		n, addr, err := conn.ReadFrom(buf)
		if err != nil {
			return
		}
		s.handlePacket(buf[:n], addr.String())
	}
}

// handlePacket processes one datagram. Packets without the magic prefix,
// malformed payloads, and our own beacons are dropped silently.
func (s *Service) handlePacket(data []byte, from string) {
	if !bytes.HasPrefix(data, beaconMagic) {
		return
	}

	var beacon Beacon
	if err := json.Unmarshal(bytes.TrimPrefix(data, beaconMagic), &beacon); err != nil {
		return
	}
	if beacon.Hostname == "" || beacon.Hostname == s.hostname {
		return
	}

	host, _, err := net.SplitHostPort(from)
	if err != nil {
		host = from
	}

	s.mu.Lock()
	_, known := s.peers[beacon.Hostname]
	s.peers[beacon.Hostname] = host
	s.mu.Unlock()

	if !known {
		logging.WithComponentAndInterface("discovery", s.iface).
			WithFields(map[string]interface{}{
				"peer":    beacon.Hostname,
				"address": host,
				"status":  beacon.Status,
			}).Info("Discovered peer")
	}
}

// encodeBeacon renders the wire form: magic prefix plus JSON payload.
func encodeBeacon(beacon Beacon) []byte {
	payload, _ := json.Marshal(beacon)
	return append(append([]byte{}, beaconMagic...), payload...)
}
