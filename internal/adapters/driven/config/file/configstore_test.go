package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pizza", "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[defaults\nw = "), 0600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("defaults.yeast", "fresh"))

	val, ok := store.Get("defaults.yeast")
	assert.True(t, ok)
	assert.Equal(t, "fresh", val)
	assert.Equal(t, "fresh", store.GetString("defaults.yeast"))
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("defaults.w", 300))
	require.NoError(t, store.Set("model.fridge_bulk_share", 0.4))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[defaults]")
	assert.Contains(t, string(data), "[model]")
	assert.Contains(t, string(data), "w = 300")
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("defaults.w", 320))
	require.NoError(t, store.Set("defaults.hydration", 0.68))
	require.NoError(t, store.Set("defaults.yeast", "dry"))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 320, reloaded.GetInt("defaults.w"))
	h, ok := reloaded.GetFloat("defaults.hydration")
	assert.True(t, ok)
	assert.Equal(t, 0.68, h)
	assert.Equal(t, "dry", reloaded.GetString("defaults.yeast"))
}

func TestConfigStore_HandEditedFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[defaults]\ntemp_c = 22\nballs = 6\n\n[model]\nstrength_exponent = 0.25\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	temp, ok := store.GetFloat("defaults.temp_c")
	assert.True(t, ok)
	assert.Equal(t, 22.0, temp)
	assert.Equal(t, 6, store.GetInt("defaults.balls"))
	exp, ok := store.GetFloat("model.strength_exponent")
	assert.True(t, ok)
	assert.Equal(t, 0.25, exp)
}

func TestConfigStore_GetFloat_NotNumeric(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("defaults.yeast", "dry"))

	_, ok := store.GetFloat("defaults.yeast")
	assert.False(t, ok)
	_, ok = store.GetFloat("missing")
	assert.False(t, ok)
}

func TestConfigStore_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("defaults.balls", 4))

	require.NoError(t, store.Delete("defaults.balls"))
	require.NoError(t, store.Delete("defaults.balls"))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	_, ok := reloaded.Get("defaults.balls")
	assert.False(t, ok)
}

func TestConfigStore_Set_ConflictingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("defaults", "flat"))

	err = store.Set("defaults.w", 260)

	assert.Error(t, err)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	_, ok := store.Get("defaults.w")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set(fmt.Sprintf("defaults.k%d", n), n)
			_, _ = store.GetFloat(fmt.Sprintf("defaults.k%d", n))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		assert.Equal(t, i, store.GetInt(fmt.Sprintf("defaults.k%d", i)))
	}
}

func TestNestMap(t *testing.T) {
	nested, err := nestMap(map[string]any{
		"defaults.w":     260,
		"defaults.yeast": "dry",
		"model.strength": 0.2,
		"top":            true,
	})

	require.NoError(t, err)
	assert.Equal(t, true, nested["top"])
	defaults, ok := nested["defaults"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 260, defaults["w"])
	assert.Equal(t, "dry", defaults["yeast"])
	assert.Equal(t, 0.2, flattenMap(nested, "")["model.strength"])
}
