package collect

import (
	"context"
	"strings"

	"github.com/jaypipes/ghw/pkg/pci"

	"github.com/hwprobe/hwprobe/internal/report"
)

// PCI class and subclass codes, per the PCI ID database.
const (
	pciClassDisplay    = "03"
	pciClassMultimedia = "04"
	pciClassSerialBus  = "0c"

	pciSubclassAudioController = "01"
	pciSubclassAudioDevice     = "03"
	pciSubclassUSBController   = "03"
)

// DisplayAdapters reports every PCI display-class controller.
func (c *Collector) DisplayAdapters(ctx context.Context) report.Section {
	devices := c.pciDevicesByClass(pciClassDisplay)
	if devices == nil {
		return report.Unavailable(TitleDisplayAdapters)
	}

	s := report.NewSection(TitleDisplayAdapters)
	for _, d := range devices {
		s.Add(d.Address, pciDeviceName(d))
	}
	return s
}

// AudioDevices reports PCI multimedia-class audio controllers and devices.
func (c *Collector) AudioDevices(ctx context.Context) report.Section {
	info, err := c.pci()
	if err != nil || info == nil {
		return report.Unavailable(TitleAudioDevices)
	}

	var devices []*pci.Device
	for _, d := range info.Devices {
		if pciClassID(d) != pciClassMultimedia {
			continue
		}
		sub := pciSubclassID(d)
		if sub == pciSubclassAudioController || sub == pciSubclassAudioDevice {
			devices = append(devices, d)
		}
	}
	if len(devices) == 0 {
		return report.Unavailable(TitleAudioDevices)
	}

	s := report.NewSection(TitleAudioDevices)
	for _, d := range devices {
		s.Add(d.Address, pciDeviceName(d))
	}
	return s
}

// USBControllers reports PCI USB host controllers and, when lsusb is
// usable, the devices attached to them.
func (c *Collector) USBControllers(ctx context.Context) report.Section {
	var controllers []*pci.Device
	if info, err := c.pci(); err == nil && info != nil {
		for _, d := range info.Devices {
			if pciClassID(d) == pciClassSerialBus && pciSubclassID(d) == pciSubclassUSBController {
				controllers = append(controllers, d)
			}
		}
	}

	out, lsusbErr := c.runner.Output(ctx, "lsusb")
	if len(controllers) == 0 && lsusbErr != nil {
		return report.Unavailable(TitleUSBControllers)
	}

	s := report.NewSection(TitleUSBControllers)
	for _, d := range controllers {
		s.Add(d.Address, pciDeviceName(d))
	}
	if lsusbErr == nil {
		for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
			label, value, ok := parseLsusbLine(line)
			if !ok {
				continue
			}
			s.Add(label, value)
		}
	}
	return s
}

// parseLsusbLine splits "Bus 001 Device 002: ID 8087:0024 Intel Corp. ..."
// into its bus/device prefix and device description.
func parseLsusbLine(line string) (label, value string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(line), ": ", 2)
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "Bus ") {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// pciDevicesByClass returns all PCI devices in the given class, or nil when
// the PCI bus cannot be enumerated or no device matches.
func (c *Collector) pciDevicesByClass(classID string) []*pci.Device {
	info, err := c.pci()
	if err != nil || info == nil {
		return nil
	}

	var devices []*pci.Device
	for _, d := range info.Devices {
		if pciClassID(d) == classID {
			devices = append(devices, d)
		}
	}
	return devices
}

func pciClassID(d *pci.Device) string {
	if d == nil || d.Class == nil {
		return ""
	}
	return d.Class.ID
}

func pciSubclassID(d *pci.Device) string {
	if d == nil || d.Subclass == nil {
		return ""
	}
	return d.Subclass.ID
}

// pciDeviceName renders "Vendor Product (driver)" for a PCI device,
// tolerating entries the PCI ID database does not know.
func pciDeviceName(d *pci.Device) string {
	vendor := "unknown vendor"
	if d.Vendor != nil && d.Vendor.Name != "" {
		vendor = d.Vendor.Name
	}
	product := "unknown device"
	if d.Product != nil && d.Product.Name != "" {
		product = d.Product.Name
	}
	name := vendor + " " + product
	if d.Driver != "" {
		name += " (driver: " + d.Driver + ")"
	}
	return name
}
