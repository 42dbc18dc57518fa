package collect

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/system"

	"github.com/hwprobe/hwprobe/internal/report"
)

// RuntimeClient is the slice of the Docker API the container runtime
// section needs.
type RuntimeClient interface {
	Info(ctx context.Context) (system.Info, error)
}

// ContainerRuntime reports the local Docker daemon's version and storage
// configuration. The client is created once in New; collectors may be
// called concurrently, so this method never mutates the Collector. Hosts
// without a usable daemon degrade to the fixed notice.
func (c *Collector) ContainerRuntime(ctx context.Context) report.Section {
	if c.runtime == nil {
		return report.Unavailable(TitleContainerRuntime)
	}

	info, err := c.runtime.Info(ctx)
	if err != nil {
		return report.Unavailable(TitleContainerRuntime)
	}

	s := report.NewSection(TitleContainerRuntime)
	s.Add("Server Version", orUnknown(info.ServerVersion))
	s.Add("Storage Driver", orUnknown(info.Driver))
	s.Add("Cgroup Driver", fmt.Sprintf("%s (v%s)", orUnknown(info.CgroupDriver), orUnknown(info.CgroupVersion)))
	s.Add("Containers", fmt.Sprintf("%d (%d running)", info.Containers, info.ContainersRunning))
	s.Add("Images", fmt.Sprintf("%d", info.Images))
	return s
}
