package collect

import (
	"context"
	"strings"

	"github.com/hwprobe/hwprobe/internal/report"
)

// NoticeSMARTUnsupported is the per-disk value printed when a device cannot
// be health-checked.
const NoticeSMARTUnsupported = "SMART not supported, skipping health check"

// DiskHealth queries SMART health for every disk. Each disk yields exactly
// one entry: either its health verdict or the fixed not-supported notice.
// Disks are never health-queried unless smartctl reports SMART as enabled.
func (c *Collector) DiskHealth(ctx context.Context) report.Section {
	block, err := c.block()
	if err != nil || block == nil || len(block.Disks) == 0 {
		return report.Unavailable(TitleDiskHealth)
	}

	s := report.NewSection(TitleDiskHealth)
	for _, d := range block.Disks {
		dev := "/dev/" + d.Name

		info, err := c.runner.Output(ctx, "smartctl", "-i", dev)
		if err != nil || !smartEnabled(info) {
			s.Add(dev, NoticeSMARTUnsupported)
			continue
		}

		out, err := c.runner.Output(ctx, "smartctl", "-H", dev)
		if err != nil {
			s.Add(dev, NoticeSMARTUnsupported)
			continue
		}
		s.Add(dev, healthVerdict(out))
	}
	return s
}

// smartEnabled reports whether `smartctl -i` output shows SMART support
// turned on for the device.
func smartEnabled(out string) bool {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "SMART support is:") &&
			strings.Contains(line, "Enabled") {
			return true
		}
	}
	return false
}

// healthVerdict extracts the overall health result from `smartctl -H`
// output. ATA and NVMe devices report a self-assessment line; SCSI devices
// report a health status line.
func healthVerdict(out string) string {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		for _, prefix := range []string{
			"SMART overall-health self-assessment test result:",
			"SMART Health Status:",
		} {
			if strings.HasPrefix(line, prefix) {
				return strings.TrimSpace(strings.TrimPrefix(line, prefix))
			}
		}
	}
	return "unknown"
}
