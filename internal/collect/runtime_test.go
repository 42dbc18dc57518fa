package collect

import (
	"context"
	"sync"
	"testing"

	"github.com/docker/docker/api/types/system"
)

type mockRuntime struct {
	info system.Info
	err  error
}

func (m *mockRuntime) Info(ctx context.Context) (system.Info, error) {
	if m.err != nil {
		return system.Info{}, m.err
	}
	return m.info, nil
}

func TestContainerRuntime(t *testing.T) {
	c := &Collector{
		runtime: &mockRuntime{info: system.Info{
			ServerVersion:     "27.3.1",
			Driver:            "overlay2",
			CgroupDriver:      "systemd",
			CgroupVersion:     "2",
			Containers:        4,
			ContainersRunning: 2,
			Images:            10,
		}},
	}

	s := c.ContainerRuntime(context.Background())
	if !s.Available {
		t.Fatal("expected section to be available")
	}
	if s.Entries[0].Value != "27.3.1" {
		t.Errorf("unexpected server version: %q", s.Entries[0].Value)
	}
	if s.Entries[3].Value != "4 (2 running)" {
		t.Errorf("unexpected container count: %q", s.Entries[3].Value)
	}
}

func TestContainerRuntimeUnavailableWithoutClient(t *testing.T) {
	c := &Collector{}

	s := c.ContainerRuntime(context.Background())
	if s.Available {
		t.Fatal("expected section to be unavailable without a client")
	}
	if c.runtime != nil {
		t.Fatal("expected the collector to stay unmodified")
	}
}

// Collectors are shared across API request goroutines, so sections must
// not mutate the Collector.
func TestContainerRuntimeConcurrent(t *testing.T) {
	c := &Collector{
		runtime: &mockRuntime{info: system.Info{ServerVersion: "27.3.1"}},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := c.ContainerRuntime(context.Background())
			if !s.Available {
				t.Error("expected section to be available")
			}
		}()
	}
	wg.Wait()
}

func TestContainerRuntimeUnavailableWithoutDaemon(t *testing.T) {
	c := &Collector{
		runtime: &mockRuntime{err: context.DeadlineExceeded},
	}

	s := c.ContainerRuntime(context.Background())
	if s.Available {
		t.Fatal("expected section to be unavailable without a reachable daemon")
	}
}
