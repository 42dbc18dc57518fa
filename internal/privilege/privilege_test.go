package privilege

import (
	"errors"
	"testing"
)

func TestCheckRoot(t *testing.T) {
	if err := check(0); err != nil {
		t.Fatalf("check(0) error = %v", err)
	}
}

func TestCheckNonRoot(t *testing.T) {
	for _, euid := range []int{1, 1000, 65534} {
		err := check(euid)
		if !errors.Is(err, ErrNotRoot) {
			t.Errorf("check(%d): expected ErrNotRoot, got %v", euid, err)
		}
	}
}
