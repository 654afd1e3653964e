package tracker

import (
	"context"
	"strings"

	"pkgscout/internal/executor"
	"pkgscout/pkg/install"
	"pkgscout/pkg/source"
)

// UpdateStatus classifies the result of one update check.
type UpdateStatus int

const (
	UpdateUnknown UpdateStatus = iota
	UpToDate
	UpdateAvailable
)

func (s UpdateStatus) String() string {
	switch s {
	case UpToDate:
		return "up to date"
	case UpdateAvailable:
		return "update available"
	}
	return "unknown"
}

// Update pairs a tracked install with the version its source currently
// advertises.
type Update struct {
	Install   Install
	Available string
	Status    UpdateStatus
}

// Checker compares tracked installs against what sources currently ship.
type Checker struct {
	store *Store
	aur   *source.AUR
	exec  *executor.Executor
}

// NewChecker creates an update checker. The AUR client answers version
// queries for AUR installs; everything else goes through the source's tool.
func NewChecker(store *Store, aur *source.AUR, exec *executor.Executor) *Checker {
	return &Checker{store: store, aur: aur, exec: exec}
}

// Check looks up the advertised version for one install. Versions are
// compared for plain string inequality; no ordering between them is implied,
// so a downgrade on the source side also reports as an available update.
func (c *Checker) Check(ctx context.Context, in Install) Update {
	update := Update{Install: in, Status: UpdateUnknown}

	recorded := strings.TrimSpace(in.Version)
	if recorded == "" || recorded == "unknown" {
		return update
	}

	var available string
	if in.Source == "aur" {
		if c.aur == nil {
			return update
		}
		available, _ = c.aur.InfoVersion(ctx, in.Name)
	} else {
		available = install.AvailableVersion(ctx, c.exec, in.Name, in.Source)
	}

	if available == "" {
		return update
	}

	update.Available = available
	if available == recorded {
		update.Status = UpToDate
	} else {
		update.Status = UpdateAvailable
	}
	return update
}

// CheckAll checks every tracked install, newest first.
func (c *Checker) CheckAll(ctx context.Context) ([]Update, error) {
	installs, err := c.store.List(0)
	if err != nil {
		return nil, err
	}

	updates := make([]Update, 0, len(installs))
	for _, in := range installs {
		updates = append(updates, c.Check(ctx, in))
	}
	return updates, nil
}
