package state

import (
	"context"
	"sync"

	"fitcoach/client/internal/domain"
)

// DirectoryBackend is the slice of the API client the admin directory uses.
type DirectoryBackend interface {
	GetAllUsers(ctx context.Context) ([]domain.DirectoryEntry, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) (string, error)
	DeleteHealthDeclaration(ctx context.Context, id int64) (string, error)
}

// Directory is the admin-only trainee cache: loaded once when an admin session
// is established, then overwritten wholesale after every mutation that affects
// it. There are no partial updates; callers re-supply the entire corrected list.
type Directory struct {
	backend DirectoryBackend
	notify  Notifier
	gate    Gate

	mu      sync.Mutex
	entries []domain.DirectoryEntry
	loaded  bool
}

// NewDirectory creates an empty directory cache.
func NewDirectory(backend DirectoryBackend, notify Notifier) *Directory {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Directory{backend: backend, notify: notify}
}

// Load fetches the full trainee list. Called once per admin session; later
// calls are no-ops unless force is set.
func (d *Directory) Load(ctx context.Context, force bool) error {
	d.mu.Lock()
	if d.loaded && !force {
		d.mu.Unlock()
		return nil
	}
	d.mu.Unlock()

	entries, err := d.backend.GetAllUsers(ctx)
	if err != nil {
		d.notify.Error(ErrorMessage(err))
		return err
	}
	d.Reload(entries)
	return nil
}

// Reload overwrites the cached list wholesale.
func (d *Directory) Reload(entries []domain.DirectoryEntry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = entries
	d.loaded = true
}

// Entries returns a snapshot of the cached list.
func (d *Directory) Entries() []domain.DirectoryEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.DirectoryEntry(nil), d.entries...)
}

// Find returns the cached entry with the given id.
func (d *Directory) Find(id int64) (domain.DirectoryEntry, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, entry := range d.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return domain.DirectoryEntry{}, false
}

// DeleteTrainee removes an account and reloads the cache with the filtered
// list. The backend's confirmation message is surfaced on success.
func (d *Directory) DeleteTrainee(ctx context.Context, id int64) error {
	if !d.gate.TryStart() {
		return nil
	}
	defer d.gate.Done()

	Run(
		func() (string, error) { return d.backend.DeleteUser(ctx, id) },
		func(msg string) {
			d.Reload(RemoveByID(d.Entries(), id,
				func(e domain.DirectoryEntry) int64 { return e.ID }))
			d.notify.Success(msg)
		},
		d.notify.Error,
	)
	return nil
}

// ClearHealthDeclaration deletes a trainee's declaration and reloads the cache
// with that one projected field nulled on the affected entry.
func (d *Directory) ClearHealthDeclaration(ctx context.Context, traineeID, declarationID int64) error {
	if !d.gate.TryStart() {
		return nil
	}
	defer d.gate.Done()

	Run(
		func() (string, error) { return d.backend.DeleteHealthDeclaration(ctx, declarationID) },
		func(msg string) {
			updated := d.Entries()
			for i := range updated {
				if updated[i].ID == traineeID {
					updated[i].HealthDeclarationID = nil
				}
			}
			d.Reload(updated)
			d.notify.Success(msg)
		},
		d.notify.Error,
	)
	return nil
}
