package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchclock/internal/core/model"
)

func TestFileRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timecard.json")
	repo := NewFileRepository(path)

	cards := model.Timecard{
		"2024-01-01": {Hours: 8.5, Punch: model.NoPunch},
		"2024-01-02": {Hours: 0, Punch: "09:00"},
		"2024-01-03": {Hours: 6.25, Punch: model.NoPunch},
	}
	require.NoError(t, repo.Save(cards))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, cards, loaded)
}

func TestFileRepositoryLoadMissingFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "timecard.json"))

	cards, err := repo.Load()
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestFileRepositoryLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timecard.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileRepository(path).Load()
	assert.Error(t, err)
}

func TestFileRepositorySaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(filepath.Join(dir, "timecard.json"))
	require.NoError(t, repo.Save(model.Timecard{"2024-01-01": model.NewEntry()}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "timecard.json", entries[0].Name())
}

func TestMemoryRepositoryIsolation(t *testing.T) {
	repo := NewMemoryRepository(model.Timecard{"2024-01-01": {Hours: 2, Punch: model.NoPunch}})

	cards, err := repo.Load()
	require.NoError(t, err)

	// Mutating the loaded copy must not leak into the repository.
	cards["2024-01-01"] = model.Entry{Hours: 99, Punch: model.NoPunch}
	again, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 2.0, again["2024-01-01"].Hours)

	require.NoError(t, repo.Save(cards))
	assert.Equal(t, 1, repo.Saves)
	final, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 99.0, final["2024-01-01"].Hours)
}
