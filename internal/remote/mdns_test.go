package remote

import (
	"net"
	"testing"

	"github.com/grandcat/zeroconf"
)

func TestParseServiceEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantIP   string
		wantPort int
		wantAddr string
	}{
		{
			name: "IPv4 server",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "radio"},
				HostName:      "radio.local.",
				Port:          8080,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.20")},
				Text:          []string{"path=/ws", "version=dev"},
			},
			wantIP:   "192.168.1.20",
			wantPort: 8080,
			wantAddr: "192.168.1.20:8080",
		},
		{
			name: "IPv6 fallback",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "radio"},
				HostName:      "radio.local.",
				Port:          8080,
				AddrIPv6:      []net.IP{net.ParseIP("fe80::1")},
			},
			wantIP:   "fe80::1",
			wantPort: 8080,
			wantAddr: "[fe80::1]:8080",
		},
		{
			name: "no address",
			entry: &zeroconf.ServiceEntry{
				HostName: "radio.local.",
				Port:     8080,
			},
			wantNil: true,
		},
		{
			name: "no port",
			entry: &zeroconf.ServiceEntry{
				HostName: "radio.local.",
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.20")},
			},
			wantNil: true,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := parseServiceEntry(tt.entry)
			if tt.wantNil {
				if ep != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", ep)
				}
				return
			}
			if ep == nil {
				t.Fatal("parseServiceEntry() = nil, want endpoint")
			}
			if ep.IP != tt.wantIP {
				t.Errorf("IP = %v, want %v", ep.IP, tt.wantIP)
			}
			if ep.Port != tt.wantPort {
				t.Errorf("Port = %v, want %v", ep.Port, tt.wantPort)
			}
			if ep.Addr() != tt.wantAddr {
				t.Errorf("Addr() = %v, want %v", ep.Addr(), tt.wantAddr)
			}
			if ep.Instance != "radio" {
				t.Errorf("Instance = %v, want radio", ep.Instance)
			}
		})
	}
}

func TestParseServiceEntryMetadata(t *testing.T) {
	ep := parseServiceEntry(&zeroconf.ServiceEntry{
		HostName: "radio.local.",
		Port:     80,
		AddrIPv4: []net.IP{net.ParseIP("10.0.0.2")},
		Text:     []string{"path=/ws", "flag", "version=v1=beta"},
	})

	want := map[string]string{"path": "/ws", "flag": "", "version": "v1=beta"}
	for k, v := range want {
		if ep.Metadata[k] != v {
			t.Errorf("Metadata[%q] = %q, want %q", k, ep.Metadata[k], v)
		}
	}
	if ep.DiscoveredAt.IsZero() {
		t.Error("DiscoveredAt should be set")
	}
}

func TestNewScanner(t *testing.T) {
	if s := NewScanner(); s.Timeout != DefaultScanTimeout {
		t.Errorf("Timeout = %v, want %v", s.Timeout, DefaultScanTimeout)
	}
}
