package collect

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/hwprobe/hwprobe/internal/report"
)

// Memory reports physical and usable RAM plus populated module count.
func (c *Collector) Memory(ctx context.Context) report.Section {
	mem, err := c.memory()
	if err != nil || mem == nil {
		return report.Unavailable(TitleMemory)
	}

	s := report.NewSection(TitleMemory)
	s.Add("Total Physical", humanizeBytes(mem.TotalPhysicalBytes))
	s.Add("Total Usable", humanizeBytes(mem.TotalUsableBytes))
	if len(mem.Modules) > 0 {
		s.Add("Modules", fmt.Sprintf("%d", len(mem.Modules)))
		for _, m := range mem.Modules {
			s.Add(orUnknown(m.Location), fmt.Sprintf("%s, %s",
				humanizeBytes(m.SizeBytes), orUnknown(m.Vendor)))
		}
	}
	return s
}

// humanizeBytes renders a byte count as IEC units, tolerating the -1 the
// probe returns when a size is unknown.
func humanizeBytes(n int64) string {
	if n < 0 {
		return "unknown"
	}
	return humanize.IBytes(uint64(n))
}
