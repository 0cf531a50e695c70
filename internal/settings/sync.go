// Package settings implements the settings sync workflow: apply a batch
// of proposed setting changes durably and reconcile on-disk assets,
// without letting asset cleanup failures roll back or block the write.
package settings

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/sitepanel/sitepanel/internal/assets"
)

// ErrNoChanges is returned when an empty change set is submitted.
var ErrNoChanges = errors.New("no settings provided")

// Store is the key/value settings store the syncer writes to.
type Store interface {
	// GetAll returns a full key/value snapshot.
	GetAll() (map[string]string, error)
	// Set upserts one key atomically.
	Set(key, value string) error
}

// FileRemover removes an upload-relative path, tolerating "already gone".
type FileRemover interface {
	DeleteIfExists(relativePath string) error
}

// Syncer coordinates the settings store and the upload store for one
// request-scoped update.
type Syncer struct {
	store Store
	files FileRemover
}

// New creates a Syncer over the given store and file remover.
func New(store Store, files FileRemover) *Syncer {
	return &Syncer{store: store, files: files}
}

// Apply durably upserts every key of changes, then removes uploaded
// files orphaned by replaced "*_image" values.
//
// Keys are applied in sorted order as independent atomic units; the
// batch is not transactional. If an upsert fails the remaining keys are
// not attempted, cleanup is skipped and the failure is returned;
// already committed keys stay committed. Callers may safely retry the
// whole batch, upserts are idempotent per key.
//
// Cleanup runs only after a fully committed batch and can never fail
// the update: deletion errors are logged and swallowed. Stale file
// leakage is acceptable, a failed settings save because of an unrelated
// filesystem hiccup is not.
func (s *Syncer) Apply(changes map[string]string) error {
	if len(changes) == 0 {
		return ErrNoChanges
	}

	// "before" snapshot, used only for cleanup decisions
	snapshot, err := s.store.GetAll()
	if err != nil {
		return errors.Wrap(err, "failed to read settings snapshot")
	}

	keys := make([]string, 0, len(changes))
	for key := range changes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := s.store.Set(key, changes[key]); err != nil {
			return errors.Wrapf(err, "failed to upsert setting %q", key)
		}
	}

	for _, relativePath := range assets.PlanCleanup(snapshot, changes) {
		if err := s.files.DeleteIfExists(relativePath); err != nil {
			log.Error().Err(err).Str("path", relativePath).Msg("failed to delete replaced settings image")
		}
	}

	return nil
}
