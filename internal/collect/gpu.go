package collect

import (
	"context"
	"fmt"

	"github.com/hwprobe/hwprobe/internal/report"
)

// Graphics reports each graphics card known to the kernel with its PCI
// address and bound driver.
func (c *Collector) Graphics(ctx context.Context) report.Section {
	gpu, err := c.gpu()
	if err != nil || gpu == nil || len(gpu.GraphicsCards) == 0 {
		return report.Unavailable(TitleGraphics)
	}

	s := report.NewSection(TitleGraphics)
	for _, card := range gpu.GraphicsCards {
		label := fmt.Sprintf("Card %d", card.Index)
		if card.DeviceInfo == nil {
			s.Add(label, "unknown device at "+orUnknown(card.Address))
			continue
		}
		s.Add(label, fmt.Sprintf("%s at %s", pciDeviceName(card.DeviceInfo), orUnknown(card.Address)))
	}
	return s
}
