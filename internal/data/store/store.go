// Package store persists the timecard as a single JSON object keyed by
// ISO date. The whole card is loaded once per invocation and flushed
// after every mutation.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"punchclock/internal/core/model"
)

// Repository abstracts timecard persistence so the punch engine and
// aggregations never touch the filesystem directly.
type Repository interface {
	Load() (model.Timecard, error)
	Save(model.Timecard) error
}

// FileRepository stores the timecard in a JSON file. Writes go through a
// temp file and rename so a crash mid-write cannot truncate the card.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Load() (model.Timecard, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Timecard{}, nil
		}
		return nil, fmt.Errorf("read timecard: %w", err)
	}

	var cards model.Timecard
	if err := sonic.Unmarshal(content, &cards); err != nil {
		return nil, fmt.Errorf("parse timecard: %w", err)
	}
	if cards == nil {
		cards = model.Timecard{}
	}
	return cards, nil
}

func (r *FileRepository) Save(cards model.Timecard) error {
	data, err := sonic.Marshal(cards)
	if err != nil {
		return fmt.Errorf("encode timecard: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create records directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".timecard-*.json")
	if err != nil {
		return fmt.Errorf("write timecard: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write timecard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write timecard: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write timecard: %w", err)
	}
	return nil
}

// MemoryRepository keeps the timecard in memory. Used by tests and by
// read-only rendering paths that must never write back.
type MemoryRepository struct {
	cards model.Timecard
	Saves int
}

func NewMemoryRepository(cards model.Timecard) *MemoryRepository {
	if cards == nil {
		cards = model.Timecard{}
	}
	return &MemoryRepository{cards: cards}
}

func (r *MemoryRepository) Load() (model.Timecard, error) {
	out := model.Timecard{}
	for k, v := range r.cards {
		out[k] = v
	}
	return out, nil
}

func (r *MemoryRepository) Save(cards model.Timecard) error {
	r.cards = model.Timecard{}
	for k, v := range cards {
		r.cards[k] = v
	}
	r.Saves++
	return nil
}
