package collect

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/hwprobe/hwprobe/internal/report"
)

// Storage reports every block device of type disk with its identity and
// capacity.
func (c *Collector) Storage(ctx context.Context) report.Section {
	block, err := c.block()
	if err != nil || block == nil || len(block.Disks) == 0 {
		return report.Unavailable(TitleStorage)
	}

	s := report.NewSection(TitleStorage)
	s.Add("Total Capacity", humanize.IBytes(block.TotalSizeBytes))
	for _, d := range block.Disks {
		removable := ""
		if d.IsRemovable {
			removable = ", removable"
		}
		s.Add("/dev/"+d.Name, fmt.Sprintf("%s %s, %s, %s via %s%s",
			orUnknown(d.Vendor), orUnknown(d.Model),
			humanize.IBytes(d.SizeBytes),
			d.DriveType.String(), d.StorageController.String(), removable))
	}
	return s
}
