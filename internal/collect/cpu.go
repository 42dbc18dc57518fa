package collect

import (
	"context"
	"fmt"

	"github.com/hwprobe/hwprobe/internal/report"
)

// Processor reports physical CPU packages with their core and thread counts.
func (c *Collector) Processor(ctx context.Context) report.Section {
	cpu, err := c.cpu()
	if err != nil || cpu == nil || len(cpu.Processors) == 0 {
		return report.Unavailable(TitleProcessor)
	}

	s := report.NewSection(TitleProcessor)
	s.Add("Total Cores", fmt.Sprintf("%d", cpu.TotalCores))
	s.Add("Total Threads", fmt.Sprintf("%d", cpu.TotalThreads))
	for _, p := range cpu.Processors {
		label := fmt.Sprintf("Processor %d", p.ID)
		s.Add(label, fmt.Sprintf("%s (%s), %d cores / %d threads",
			orUnknown(p.Model), orUnknown(p.Vendor), p.NumCores, p.NumThreads))
	}
	return s
}
