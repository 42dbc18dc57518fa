package collect

import (
	"context"
	"errors"
	"testing"

	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/pci"
	"github.com/jaypipes/pcidb"
)

func pciDevice(address, classID, subclassID, vendor, product, driver string) *pci.Device {
	return &pci.Device{
		Address:  address,
		Driver:   driver,
		Vendor:   &pcidb.Vendor{Name: vendor},
		Product:  &pcidb.Product{Name: product},
		Class:    &pcidb.Class{ID: classID},
		Subclass: &pcidb.Subclass{ID: subclassID},
	}
}

func testPCI() func() (*ghw.PCIInfo, error) {
	return func() (*ghw.PCIInfo, error) {
		return &ghw.PCIInfo{Devices: []*pci.Device{
			pciDevice("0000:00:02.0", "03", "00", "Intel Corporation", "UHD Graphics 620", "i915"),
			pciDevice("0000:00:14.0", "0c", "03", "Intel Corporation", "Sunrise Point-LP USB 3.0 xHCI Controller", "xhci_hcd"),
			pciDevice("0000:00:1f.3", "04", "03", "Intel Corporation", "Sunrise Point-LP HD Audio", "snd_hda_intel"),
			pciDevice("0000:00:1f.6", "02", "00", "Intel Corporation", "Ethernet Connection I219-V", "e1000e"),
		}}, nil
	}
}

func TestDisplayAdapters(t *testing.T) {
	c := &Collector{pci: testPCI()}

	s := c.DisplayAdapters(context.Background())
	if !s.Available {
		t.Fatal("expected section to be available")
	}
	if len(s.Entries) != 1 {
		t.Fatalf("expected 1 display adapter, got %d", len(s.Entries))
	}
	if s.Entries[0].Label != "0000:00:02.0" {
		t.Errorf("unexpected address: %q", s.Entries[0].Label)
	}
	if s.Entries[0].Value != "Intel Corporation UHD Graphics 620 (driver: i915)" {
		t.Errorf("unexpected device name: %q", s.Entries[0].Value)
	}
}

func TestDisplayAdaptersUnavailableWithoutClass(t *testing.T) {
	c := &Collector{
		pci: func() (*ghw.PCIInfo, error) {
			return &ghw.PCIInfo{Devices: []*pci.Device{
				pciDevice("0000:00:1f.6", "02", "00", "Intel Corporation", "Ethernet Connection I219-V", "e1000e"),
			}}, nil
		},
	}

	s := c.DisplayAdapters(context.Background())
	if s.Available {
		t.Fatal("expected section to be unavailable when no display-class device exists")
	}
}

func TestAudioDevices(t *testing.T) {
	c := &Collector{pci: testPCI()}

	s := c.AudioDevices(context.Background())
	if !s.Available {
		t.Fatal("expected section to be available")
	}
	if len(s.Entries) != 1 || s.Entries[0].Label != "0000:00:1f.3" {
		t.Fatalf("expected the HD Audio device, got %+v", s.Entries)
	}
}

func TestUSBControllersWithDevices(t *testing.T) {
	runner := &mockRunner{
		outputs: map[string]string{
			"lsusb": "Bus 001 Device 002: ID 8087:0a2b Intel Corp. Bluetooth wireless interface\nBus 001 Device 001: ID 1d6b:0002 Linux Foundation 2.0 root hub\n",
		},
	}
	c := &Collector{pci: testPCI(), runner: runner}

	s := c.USBControllers(context.Background())
	if !s.Available {
		t.Fatal("expected section to be available")
	}
	// one controller plus two attached devices
	if len(s.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(s.Entries))
	}
	if s.Entries[1].Label != "Bus 001 Device 002" {
		t.Errorf("unexpected device label: %q", s.Entries[1].Label)
	}
}

func TestUSBControllersUnavailable(t *testing.T) {
	runner := &mockRunner{errs: map[string]error{"lsusb": errors.New("not installed")}}
	c := &Collector{
		pci:    func() (*ghw.PCIInfo, error) { return nil, errors.New("no pci") },
		runner: runner,
	}

	s := c.USBControllers(context.Background())
	if s.Available {
		t.Fatal("expected section to be unavailable")
	}
}

func TestParseLsusbLine(t *testing.T) {
	label, value, ok := parseLsusbLine("Bus 003 Device 001: ID 1d6b:0003 Linux Foundation 3.0 root hub")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if label != "Bus 003 Device 001" {
		t.Errorf("unexpected label: %q", label)
	}
	if value != "ID 1d6b:0003 Linux Foundation 3.0 root hub" {
		t.Errorf("unexpected value: %q", value)
	}

	if _, _, ok := parseLsusbLine(""); ok {
		t.Error("expected empty line to be rejected")
	}
	if _, _, ok := parseLsusbLine("couldn't open device"); ok {
		t.Error("expected malformed line to be rejected")
	}
}
