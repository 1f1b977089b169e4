package remote

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"

	"github.com/kvdijken/Settings/internal/version"
)

const (
	// ServiceType is the mDNS service type menu servers advertise
	ServiceType = "_settings-menu._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for server discovery
	DefaultScanTimeout = 5 * time.Second
)

// Advertise registers a menu server on port over mDNS. Call Shutdown on the
// result to withdraw it.
func Advertise(instance string, port int) (*zeroconf.Server, error) {
	if instance == "" {
		host, err := os.Hostname()
		if err != nil {
			host = "settings-menu"
		}
		instance = host
	}

	txt := []string{"path=/ws", "version=" + version.Version}
	srv, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	return srv, nil
}

// Endpoint is a menu server found on the network
type Endpoint struct {
	// Instance is the advertised instance name
	Instance string

	// Hostname is the mDNS hostname (e.g., "radio.local.")
	Hostname string

	// IP is the IPv4 address, or IPv6 when no IPv4 address was announced
	IP string

	// Port is the HTTP port
	Port int

	// Metadata contains the TXT record data ("path", "version")
	Metadata map[string]string

	// DiscoveredAt is when the server was discovered
	DiscoveredAt time.Time
}

// Addr returns host:port for Dial
func (e *Endpoint) Addr() string {
	return net.JoinHostPort(e.IP, strconv.Itoa(e.Port))
}

// String returns a human-readable string representation of the endpoint
func (e *Endpoint) String() string {
	return fmt.Sprintf("%s (%s) at %s", e.Instance, e.Hostname, e.Addr())
}

// Scanner finds menu servers over mDNS
type Scanner struct {
	// Timeout is the maximum time to wait for answers
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{Timeout: DefaultScanTimeout}
}

// Scan browses for menu servers until the timeout expires or ctx is done.
func (s *Scanner) Scan(ctx context.Context) ([]*Endpoint, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	var (
		mu        sync.Mutex
		endpoints []*Endpoint
	)
	entries := make(chan *zeroconf.ServiceEntry)
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				if ep := parseServiceEntry(entry); ep != nil {
					mu.Lock()
					endpoints = append(endpoints, ep)
					mu.Unlock()
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()
	<-collected

	mu.Lock()
	defer mu.Unlock()
	return endpoints, nil
}

// parseServiceEntry converts a zeroconf entry into an Endpoint. Returns nil
// when the entry carries no usable address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Endpoint {
	if entry == nil || entry.Port == 0 {
		return nil
	}

	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		key, value, _ := strings.Cut(txt, "=")
		metadata[key] = value
	}

	return &Endpoint{
		Instance:     entry.Instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         entry.Port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}
