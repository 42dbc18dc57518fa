package collect

import (
	"context"
	"fmt"
	"strings"

	"github.com/hwprobe/hwprobe/internal/report"
)

// NetworkInterfaces reports physical and virtual NICs as the kernel sees
// them.
func (c *Collector) NetworkInterfaces(ctx context.Context) report.Section {
	network, err := c.network()
	if err != nil || network == nil || len(network.NICs) == 0 {
		return report.Unavailable(TitleNetworkInterfaces)
	}

	s := report.NewSection(TitleNetworkInterfaces)
	for _, nic := range network.NICs {
		kind := "physical"
		if nic.IsVirtual {
			kind = "virtual"
		}
		detail := fmt.Sprintf("MAC %s, %s", orUnknown(nic.MacAddress), kind)
		if nic.Speed != "" {
			detail += ", " + nic.Speed
		}
		s.Add(nic.Name, detail)
	}
	return s
}

// NetworkConfig reports per-interface addressing: MTU, MAC, flags, and
// assigned addresses.
func (c *Collector) NetworkConfig(ctx context.Context) report.Section {
	ifaces, err := c.interfaces()
	if err != nil || len(ifaces) == 0 {
		return report.Unavailable(TitleNetworkConfig)
	}

	s := report.NewSection(TitleNetworkConfig)
	for _, iface := range ifaces {
		addrs := make([]string, 0, len(iface.Addrs))
		for _, a := range iface.Addrs {
			addrs = append(addrs, a.Addr)
		}

		detail := fmt.Sprintf("MTU %d", iface.MTU)
		if iface.HardwareAddr != "" {
			detail += ", MAC " + iface.HardwareAddr
		}
		if len(iface.Flags) > 0 {
			detail += ", " + strings.Join(iface.Flags, "|")
		}
		if len(addrs) > 0 {
			detail += ", " + strings.Join(addrs, " ")
		}
		s.Add(iface.Name, detail)
	}
	return s
}
