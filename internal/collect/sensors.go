package collect

import (
	"context"
	"fmt"

	"github.com/hwprobe/hwprobe/internal/report"
)

// Temperatures reports every thermal sensor the kernel exposes.
func (c *Collector) Temperatures(ctx context.Context) report.Section {
	temps, err := c.sensors()
	if err != nil || len(temps) == 0 {
		return report.Unavailable(TitleTemperatures)
	}

	s := report.NewSection(TitleTemperatures)
	for _, t := range temps {
		value := fmt.Sprintf("%.1f°C", t.Temperature)
		if t.Critical > 0 {
			value += fmt.Sprintf(" (critical: %.1f°C)", t.Critical)
		}
		s.Add(t.SensorKey, value)
	}
	return s
}
