package wizard

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSettingsStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "onboarding.json")
	store := NewFileSettingsStore(path)
	ctx := context.Background()

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "missing file loads as nil settings")

	saved := StoredSettings{Country: "NG", Vertical: "ecommerce"}
	require.NoError(t, store.Save(ctx, saved))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, *loaded)

	// Saving again overwrites.
	require.NoError(t, store.Save(ctx, StoredSettings{Country: "DE", Vertical: "saas"}))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "DE", loaded.Country)
}
