package deps

import (
	"context"
	"fmt"
	"os"

	alpm "github.com/Jguer/go-alpm/v2"
)

const (
	pacmanDBPath = "/var/lib/pacman"
	pacmanRoot   = "/"
)

// PacmanInstaller installs packages through libalpm on Arch systems.
type PacmanInstaller struct {
	handle *alpm.Handle
}

// NewPacmanInstaller initializes an alpm handle and registers the standard
// sync databases. Databases that cannot be registered are skipped with a
// warning; the installer still works with whatever remains.
func NewPacmanInstaller() (*PacmanInstaller, error) {
	h, err := alpm.Initialize(pacmanRoot, pacmanDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize alpm: %w", err)
	}

	for _, dbName := range []string{"core", "extra", "multilib"} {
		if _, err := h.RegisterSyncDB(dbName, alpm.SigUseDefault); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not register sync db '%s'\n", dbName)
		}
	}

	return &PacmanInstaller{handle: h}, nil
}

// Close releases the alpm handle.
func (p *PacmanInstaller) Close() {
	if p.handle != nil {
		p.handle.Release()
	}
}

// Name identifies the backend in log output.
func (p *PacmanInstaller) Name() string { return "pacman" }

// Install installs a single package. Packages already present locally are
// left untouched.
func (p *PacmanInstaller) Install(ctx context.Context, pkg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	localDB, err := p.handle.LocalDB()
	if err != nil {
		return fmt.Errorf("could not get local db: %w", err)
	}
	if localDB.Pkg(pkg) != nil {
		return nil
	}

	remotePkg, err := p.findSyncPackage(pkg)
	if err != nil {
		return err
	}

	if err := p.handle.TransInit(alpm.TransFlagNoDeps); err != nil {
		return fmt.Errorf("failed to initialize transaction: %w", err)
	}
	defer p.handle.TransRelease()

	if err := p.handle.AddPkg(remotePkg); err != nil {
		return fmt.Errorf("failed to add package %s to transaction: %w", remotePkg.Name(), err)
	}
	if err := p.handle.TransPrepare(); err != nil {
		return fmt.Errorf("failed to prepare transaction: %w", err)
	}
	if err := p.handle.TransCommit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// findSyncPackage looks a package up by exact name across the registered
// sync databases.
func (p *PacmanInstaller) findSyncPackage(name string) (alpm.IPackage, error) {
	syncDBs, err := p.handle.SyncDBs()
	if err != nil {
		return nil, fmt.Errorf("could not get sync dbs: %w", err)
	}

	for _, syncDB := range syncDBs.Slice() {
		for _, pkg := range syncDB.Search([]string{name}).Slice() {
			if pkg.Name() == name {
				return pkg, nil
			}
		}
	}
	return nil, fmt.Errorf("package '%s' not found in remote repositories", name)
}
