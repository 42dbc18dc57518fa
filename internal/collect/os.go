package collect

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hwprobe/hwprobe/internal/report"
)

// OperatingSystem reports the installed OS, kernel, and virtualization
// state of the host.
func (c *Collector) OperatingSystem(ctx context.Context) report.Section {
	info, err := c.hostInfo()
	if err != nil || info == nil {
		return report.Unavailable(TitleOperatingSystem)
	}

	s := report.NewSection(TitleOperatingSystem)
	s.Add("Hostname", orUnknown(info.Hostname))
	s.Add("OS", orUnknown(info.OS))
	s.Add("Distribution", fmt.Sprintf("%s %s", orUnknown(info.Platform), info.PlatformVersion))
	s.Add("Kernel", orUnknown(info.KernelVersion))
	s.Add("Architecture", orUnknown(info.KernelArch))
	if info.VirtualizationSystem != "" {
		s.Add("Virtualization", fmt.Sprintf("%s (%s)", info.VirtualizationSystem, info.VirtualizationRole))
	}
	return s
}

// Uptime reports how long the host has been running and when it booted.
func (c *Collector) Uptime(ctx context.Context) report.Section {
	seconds, err := c.uptime()
	if err != nil {
		return report.Unavailable(TitleUptime)
	}

	bootedAt := time.Now().Add(-time.Duration(seconds) * time.Second)

	s := report.NewSection(TitleUptime)
	s.Add("Uptime", formatUptime(seconds))
	s.Add("Booted", humanize.Time(bootedAt))
	return s
}

// formatUptime renders an uptime in seconds at the coarsest sensible unit.
func formatUptime(seconds uint64) string {
	uptime := time.Duration(seconds) * time.Second
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	minutes := int(uptime.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%d days, %d hours", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%d hours, %d minutes", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	return "less than a minute"
}
