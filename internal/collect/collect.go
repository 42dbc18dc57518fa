package collect

import (
	"context"
	"os"
	"time"

	"github.com/docker/docker/client"
	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/host"
	psnet "github.com/shirou/gopsutil/v3/net"

	"github.com/hwprobe/hwprobe/internal/report"
)

// Section titles in their fixed report order.
const (
	TitleSystem            = "System"
	TitleMotherboard       = "Motherboard"
	TitleProcessor         = "Processor"
	TitleNetworkInterfaces = "Network Interfaces"
	TitleDisplayAdapters   = "Display Adapters"
	TitleUSBControllers    = "USB Controllers"
	TitleMemory            = "Memory"
	TitleStorage           = "Storage"
	TitleAudioDevices      = "Audio Devices"
	TitleGraphics          = "Graphics"
	TitleOperatingSystem   = "Operating System"
	TitleNetworkConfig     = "Network Configuration"
	TitleBIOS              = "BIOS"
	TitleUptime            = "Uptime"
	TitleTemperatures      = "Temperatures"
	TitleContainerRuntime  = "Container Runtime"
	TitleDiskHealth        = "Disk Health"
)

// SectionTitles lists every section in the order it appears in the report.
var SectionTitles = []string{
	TitleSystem,
	TitleMotherboard,
	TitleProcessor,
	TitleNetworkInterfaces,
	TitleDisplayAdapters,
	TitleUSBControllers,
	TitleMemory,
	TitleStorage,
	TitleAudioDevices,
	TitleGraphics,
	TitleOperatingSystem,
	TitleNetworkConfig,
	TitleBIOS,
	TitleUptime,
	TitleTemperatures,
	TitleContainerRuntime,
	TitleDiskHealth,
}

// Collector gathers every report section from the local machine. Probe
// functions are fields so individual sections can be tested against
// synthetic hardware inventories.
type Collector struct {
	runner  Runner
	runtime RuntimeClient

	product   func() (*ghw.ProductInfo, error)
	baseboard func() (*ghw.BaseboardInfo, error)
	bios      func() (*ghw.BIOSInfo, error)
	cpu       func() (*ghw.CPUInfo, error)
	memory    func() (*ghw.MemoryInfo, error)
	block     func() (*ghw.BlockInfo, error)
	gpu       func() (*ghw.GPUInfo, error)
	pci       func() (*ghw.PCIInfo, error)
	network   func() (*ghw.NetworkInfo, error)

	hostInfo   func() (*host.InfoStat, error)
	uptime     func() (uint64, error)
	sensors    func() ([]host.TemperatureStat, error)
	interfaces func() (psnet.InterfaceStatList, error)

	disabled map[string]bool
}

// New creates a Collector probing the local machine. The Docker client is
// constructed here rather than on first use so a Collector shared across
// request goroutines is never written to after creation.
func New() *Collector {
	c := &Collector{
		runner:     newShellRunner(),
		product:    func() (*ghw.ProductInfo, error) { return ghw.Product() },
		baseboard:  func() (*ghw.BaseboardInfo, error) { return ghw.Baseboard() },
		bios:       func() (*ghw.BIOSInfo, error) { return ghw.BIOS() },
		cpu:        func() (*ghw.CPUInfo, error) { return ghw.CPU() },
		memory:     func() (*ghw.MemoryInfo, error) { return ghw.Memory() },
		block:      func() (*ghw.BlockInfo, error) { return ghw.Block() },
		gpu:        func() (*ghw.GPUInfo, error) { return ghw.GPU() },
		pci:        func() (*ghw.PCIInfo, error) { return ghw.PCI() },
		network:    func() (*ghw.NetworkInfo, error) { return ghw.Network() },
		hostInfo:   host.Info,
		uptime:     host.Uptime,
		sensors:    host.SensorsTemperatures,
		interfaces: psnet.Interfaces,
	}

	if cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation()); err == nil {
		c.runtime = cli
	}

	return c
}

// Disable excludes the named sections from Collect. Unknown titles are
// ignored.
func (c *Collector) Disable(titles ...string) {
	if c.disabled == nil {
		c.disabled = make(map[string]bool, len(titles))
	}
	for _, t := range titles {
		c.disabled[t] = true
	}
}

// Collect runs every enabled section in the fixed order. Sections never
// fail the run; a section that cannot be probed carries the fixed
// unavailability notice instead.
func (c *Collector) Collect(ctx context.Context) *report.Report {
	hostname, _ := os.Hostname()
	r := &report.Report{
		Hostname:    hostname,
		GeneratedAt: time.Now().UTC(),
	}

	steps := []struct {
		title string
		fn    func(context.Context) report.Section
	}{
		{TitleSystem, c.System},
		{TitleMotherboard, c.Motherboard},
		{TitleProcessor, c.Processor},
		{TitleNetworkInterfaces, c.NetworkInterfaces},
		{TitleDisplayAdapters, c.DisplayAdapters},
		{TitleUSBControllers, c.USBControllers},
		{TitleMemory, c.Memory},
		{TitleStorage, c.Storage},
		{TitleAudioDevices, c.AudioDevices},
		{TitleGraphics, c.Graphics},
		{TitleOperatingSystem, c.OperatingSystem},
		{TitleNetworkConfig, c.NetworkConfig},
		{TitleBIOS, c.BIOS},
		{TitleUptime, c.Uptime},
		{TitleTemperatures, c.Temperatures},
		{TitleContainerRuntime, c.ContainerRuntime},
		{TitleDiskHealth, c.DiskHealth},
	}

	for _, step := range steps {
		if c.disabled[step.title] {
			continue
		}
		r.Sections = append(r.Sections, step.fn(ctx))
	}

	return r
}

// orUnknown substitutes a placeholder for fields the firmware left blank.
func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
