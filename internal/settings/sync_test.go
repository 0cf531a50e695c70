package settings

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory settings store with optional fault
// injection per key.
type fakeStore struct {
	data        map[string]string
	setCalls    []string
	failOnKey   string
	failGetAll  bool
	injectedErr error
}

func newFakeStore(data map[string]string) *fakeStore {
	if data == nil {
		data = map[string]string{}
	}
	return &fakeStore{data: data, injectedErr: errors.New("injected failure")}
}

func (f *fakeStore) GetAll() (map[string]string, error) {
	if f.failGetAll {
		return nil, f.injectedErr
	}
	out := make(map[string]string, len(f.data))
	for k, v := range f.data {
		out[k] = v
	}
	return out, nil
}

func (f *fakeStore) Set(key, value string) error {
	f.setCalls = append(f.setCalls, key)
	if key == f.failOnKey {
		return f.injectedErr
	}
	f.data[key] = value
	return nil
}

// fakeRemover records deletion requests and can fail all of them.
type fakeRemover struct {
	deleted []string
	failAll bool
}

func (f *fakeRemover) DeleteIfExists(relativePath string) error {
	if f.failAll {
		return errors.New("disk on fire")
	}
	f.deleted = append(f.deleted, relativePath)
	return nil
}

func TestApplyEmptyBatch(t *testing.T) {
	store := newFakeStore(nil)
	files := &fakeRemover{}

	err := New(store, files).Apply(map[string]string{})

	assert.ErrorIs(t, err, ErrNoChanges)
	assert.Empty(t, store.setCalls)
	assert.Empty(t, files.deleted)
}

func TestApplySnapshotFailure(t *testing.T) {
	store := newFakeStore(nil)
	store.failGetAll = true
	files := &fakeRemover{}

	err := New(store, files).Apply(map[string]string{"company_name": "Acme"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.injectedErr)
	assert.Empty(t, store.setCalls, "no writes after a failed snapshot")
}

func TestApplyCommitsAllKeys(t *testing.T) {
	store := newFakeStore(map[string]string{"company_name": "Old Co"})
	files := &fakeRemover{}

	err := New(store, files).Apply(map[string]string{
		"company_name": "Acme",
		"tagline":      "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"company_name": "Acme",
		"tagline":      "hello",
	}, store.data)
	assert.Empty(t, files.deleted, "no image keys changed")
}

func TestApplyCleansUpReplacedImages(t *testing.T) {
	store := newFakeStore(map[string]string{
		"home_about_image": "/uploads/old-banner.jpg",
		"company_name":     "Acme",
	})
	files := &fakeRemover{}

	err := New(store, files).Apply(map[string]string{
		"home_about_image": "/uploads/new-banner.jpg",
		"company_name":     "Acme Ltd",
	})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/new-banner.jpg", store.data["home_about_image"])
	assert.Equal(t, []string{"old-banner.jpg"}, files.deleted)
}

func TestApplyPartialBatchFailure(t *testing.T) {
	store := newFakeStore(map[string]string{
		"logo_image": "/uploads/stale.jpg",
	})
	store.failOnKey = "b_key"
	files := &fakeRemover{}

	err := New(store, files).Apply(map[string]string{
		"a_key":      "1",
		"b_key":      "2",
		"c_key":      "3",
		"logo_image": "/uploads/fresh.jpg",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.injectedErr)
	assert.Contains(t, err.Error(), `"b_key"`)

	// keys before the failure stay committed, keys after are never tried
	assert.Equal(t, []string{"a_key", "b_key"}, store.setCalls)
	assert.Equal(t, "1", store.data["a_key"])
	_, ok := store.data["c_key"]
	assert.False(t, ok)

	// a failed batch never triggers asset cleanup
	assert.Empty(t, files.deleted)
	assert.Equal(t, "/uploads/stale.jpg", store.data["logo_image"])
}

func TestApplyCleanupFailureIsSwallowed(t *testing.T) {
	store := newFakeStore(map[string]string{
		"logo_image": "/uploads/old.png",
	})
	files := &fakeRemover{failAll: true}

	err := New(store, files).Apply(map[string]string{
		"logo_image": "/uploads/new.png",
	})

	assert.NoError(t, err, "cleanup failures never surface to the caller")
	assert.Equal(t, "/uploads/new.png", store.data["logo_image"])
}

func TestApplyRetryAfterPartialFailure(t *testing.T) {
	store := newFakeStore(nil)
	store.failOnKey = "b_key"
	files := &fakeRemover{}
	syncer := New(store, files)

	changes := map[string]string{"a_key": "1", "b_key": "2"}
	require.Error(t, syncer.Apply(changes))

	// clearing the fault and retrying the same batch converges
	store.failOnKey = ""
	require.NoError(t, syncer.Apply(changes))
	assert.Equal(t, map[string]string{"a_key": "1", "b_key": "2"}, store.data)
}
