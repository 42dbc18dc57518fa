package collect

import (
	"context"
	"testing"

	"github.com/jaypipes/ghw"
	ghwnet "github.com/jaypipes/ghw/pkg/net"
	psnet "github.com/shirou/gopsutil/v3/net"
)

func TestNetworkInterfaces(t *testing.T) {
	c := &Collector{
		network: func() (*ghw.NetworkInfo, error) {
			return &ghw.NetworkInfo{NICs: []*ghwnet.NIC{
				{Name: "eth0", MacAddress: "aa:bb:cc:dd:ee:ff", Speed: "1000Mb/s"},
				{Name: "docker0", MacAddress: "02:42:ac:11:00:01", IsVirtual: true},
			}}, nil
		},
	}

	s := c.NetworkInterfaces(context.Background())
	if !s.Available {
		t.Fatal("expected section to be available")
	}
	if s.Entries[0].Value != "MAC aa:bb:cc:dd:ee:ff, physical, 1000Mb/s" {
		t.Errorf("unexpected eth0 entry: %q", s.Entries[0].Value)
	}
	if s.Entries[1].Value != "MAC 02:42:ac:11:00:01, virtual" {
		t.Errorf("unexpected docker0 entry: %q", s.Entries[1].Value)
	}
}

func TestNetworkConfig(t *testing.T) {
	c := &Collector{
		interfaces: func() (psnet.InterfaceStatList, error) {
			return psnet.InterfaceStatList{{
				Name:         "eth0",
				MTU:          1500,
				HardwareAddr: "aa:bb:cc:dd:ee:ff",
				Flags:        []string{"up", "broadcast"},
				Addrs:        psnet.InterfaceAddrList{{Addr: "192.168.1.10/24"}},
			}}, nil
		},
	}

	s := c.NetworkConfig(context.Background())
	if !s.Available {
		t.Fatal("expected section to be available")
	}
	want := "MTU 1500, MAC aa:bb:cc:dd:ee:ff, up|broadcast, 192.168.1.10/24"
	if s.Entries[0].Value != want {
		t.Errorf("unexpected entry: %q, want %q", s.Entries[0].Value, want)
	}
}

func TestNetworkConfigUnavailable(t *testing.T) {
	c := &Collector{
		interfaces: func() (psnet.InterfaceStatList, error) { return nil, nil },
	}

	s := c.NetworkConfig(context.Background())
	if s.Available {
		t.Fatal("expected section to be unavailable with no interfaces")
	}
}
