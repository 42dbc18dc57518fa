package deps

import (
	"context"
	"fmt"
	"time"

	sh "github.com/codeskyblue/go-sh"
)

const aptTimeout = 5 * time.Minute

// AptInstaller installs packages with apt-get on Debian-style systems.
type AptInstaller struct {
	run func(ctx context.Context, name string, args ...string) error
}

// NewAptInstaller creates an AptInstaller shelling out to apt-get.
func NewAptInstaller() *AptInstaller {
	return &AptInstaller{run: runApt}
}

// Name identifies the backend in log output.
func (a *AptInstaller) Name() string { return "apt" }

// Install installs a single package non-interactively. No retry, no
// version pinning.
func (a *AptInstaller) Install(ctx context.Context, pkg string) error {
	if err := a.run(ctx, "apt-get", "install", "-y", pkg); err != nil {
		return fmt.Errorf("apt-get install %s failed: %w", pkg, err)
	}
	return nil
}

func runApt(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sess := sh.NewSession()
	sess.SetTimeout(aptTimeout)
	sess.SetEnv("DEBIAN_FRONTEND", "noninteractive")

	cmdArgs := make([]interface{}, 0, len(args))
	for _, a := range args {
		cmdArgs = append(cmdArgs, a)
	}
	return sess.Command(name, cmdArgs...).Run()
}
