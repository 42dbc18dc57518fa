package collect

import (
	"context"

	"github.com/hwprobe/hwprobe/internal/report"
)

// System reports the machine's DMI product identity.
func (c *Collector) System(ctx context.Context) report.Section {
	product, err := c.product()
	if err != nil || product == nil {
		return report.Unavailable(TitleSystem)
	}

	s := report.NewSection(TitleSystem)
	s.Add("Manufacturer", orUnknown(product.Vendor))
	s.Add("Product Name", orUnknown(product.Name))
	s.Add("Version", orUnknown(product.Version))
	s.Add("Serial Number", orUnknown(product.SerialNumber))
	s.Add("UUID", orUnknown(product.UUID))
	return s
}

// Motherboard reports baseboard vendor and model details.
func (c *Collector) Motherboard(ctx context.Context) report.Section {
	board, err := c.baseboard()
	if err != nil || board == nil {
		return report.Unavailable(TitleMotherboard)
	}

	s := report.NewSection(TitleMotherboard)
	s.Add("Vendor", orUnknown(board.Vendor))
	s.Add("Product", orUnknown(board.Product))
	s.Add("Version", orUnknown(board.Version))
	s.Add("Serial Number", orUnknown(board.SerialNumber))
	return s
}

// BIOS reports firmware vendor, version, and release date.
func (c *Collector) BIOS(ctx context.Context) report.Section {
	bios, err := c.bios()
	if err != nil || bios == nil {
		return report.Unavailable(TitleBIOS)
	}

	s := report.NewSection(TitleBIOS)
	s.Add("Vendor", orUnknown(bios.Vendor))
	s.Add("Version", orUnknown(bios.Version))
	s.Add("Release Date", orUnknown(bios.Date))
	return s
}
