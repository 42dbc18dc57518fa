package collect

import (
	"context"
	"testing"

	"github.com/jaypipes/ghw"
	"github.com/jaypipes/ghw/pkg/block"
	"github.com/jaypipes/ghw/pkg/memory"
)

func TestStorage(t *testing.T) {
	c := &Collector{
		block: func() (*ghw.BlockInfo, error) {
			return &ghw.BlockInfo{
				TotalSizeBytes: 500107862016,
				Disks: []*block.Disk{{
					Name:              "nvme0n1",
					SizeBytes:         500107862016,
					DriveType:         block.DRIVE_TYPE_SSD,
					StorageController: block.STORAGE_CONTROLLER_NVME,
					Vendor:            "Samsung",
					Model:             "SSD 980",
				}},
			}, nil
		},
	}

	s := c.Storage(context.Background())
	if !s.Available {
		t.Fatal("expected section to be available")
	}
	if s.Entries[1].Label != "/dev/nvme0n1" {
		t.Errorf("unexpected disk label: %q", s.Entries[1].Label)
	}
}

func TestStorageUnavailableWithoutDisks(t *testing.T) {
	c := &Collector{
		block: func() (*ghw.BlockInfo, error) {
			return &ghw.BlockInfo{}, nil
		},
	}

	s := c.Storage(context.Background())
	if s.Available {
		t.Fatal("expected section to be unavailable with zero disks")
	}
}

func TestMemory(t *testing.T) {
	c := &Collector{
		memory: func() (*ghw.MemoryInfo, error) {
			return &ghw.MemoryInfo{
				Area: memory.Area{
					TotalPhysicalBytes: 17179869184,
					TotalUsableBytes:   16577331200,
				},
			}, nil
		},
	}

	s := c.Memory(context.Background())
	if !s.Available {
		t.Fatal("expected section to be available")
	}
	if s.Entries[0].Label != "Total Physical" || s.Entries[0].Value != "16 GiB" {
		t.Errorf("unexpected physical memory entry: %+v", s.Entries[0])
	}
}

func TestHumanizeBytesUnknown(t *testing.T) {
	if got := humanizeBytes(-1); got != "unknown" {
		t.Errorf("humanizeBytes(-1) = %q, want unknown", got)
	}
}
