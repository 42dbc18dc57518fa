// Package deps ensures the external probe tools are present, installing
// missing ones through the platform package manager. Installation failures
// are never fatal: the report degrades per section instead.
package deps

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Tool maps a required binary to the package that provides it.
type Tool struct {
	Name    string
	Package string
}

// RequiredTools lists every external binary the collectors may shell out
// to, with the single package each one comes from.
var RequiredTools = []Tool{
	{Name: "smartctl", Package: "smartmontools"},
	{Name: "lsusb", Package: "usbutils"},
	{Name: "lspci", Package: "pciutils"},
	{Name: "sensors", Package: "lm-sensors"},
}

// Installer installs a single package through a platform package manager.
type Installer interface {
	Name() string
	Install(ctx context.Context, pkg string) error
}

// ErrNoPackageManager is returned by the fallback installer on platforms
// without a supported package manager.
var ErrNoPackageManager = errors.New("no supported package manager found")

// Resolver checks tool presence and drives the installer for missing ones.
type Resolver struct {
	installer Installer
	lookPath  func(string) (string, error)
	log       *logrus.Logger
}

// NewResolver creates a Resolver using the given installer backend.
func NewResolver(installer Installer, log *logrus.Logger) *Resolver {
	return &Resolver{
		installer: installer,
		lookPath:  exec.LookPath,
		log:       log,
	}
}

// Ensure checks each tool and attempts one installation per missing tool.
// It never returns an error: failures are logged and the run continues
// with degraded output.
func (r *Resolver) Ensure(ctx context.Context, tools []Tool) {
	for _, t := range tools {
		if _, err := r.lookPath(t.Name); err == nil {
			continue
		}

		r.log.Warnf("%s not found, installing %s via %s", t.Name, t.Package, r.installer.Name())
		if err := r.installer.Install(ctx, t.Package); err != nil {
			r.log.Warnf("failed to install %s: %v, related sections will be degraded", t.Package, err)
		}
	}
}

// DetectInstaller picks the package manager backend for this machine:
// apt on Debian-style systems, pacman on Arch, a warn-only fallback
// elsewhere.
func DetectInstaller(log *logrus.Logger) Installer {
	return detectInstaller("/", log)
}

func detectInstaller(root string, log *logrus.Logger) Installer {
	if _, err := os.Stat(root + "etc/debian_version"); err == nil {
		return NewAptInstaller()
	}
	if _, err := os.Stat(root + "var/lib/pacman"); err == nil {
		pm, err := NewPacmanInstaller()
		if err == nil {
			return pm
		}
		log.Warnf("pacman detected but unusable: %v", err)
	}
	return &noopInstaller{}
}

// noopInstaller is used on platforms without a supported package manager.
type noopInstaller struct{}

func (n *noopInstaller) Name() string { return "none" }

func (n *noopInstaller) Install(ctx context.Context, pkg string) error {
	return ErrNoPackageManager
}
