package restore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"translation-keeper/internal/config"
	"translation-keeper/internal/encfile"
	"translation-keeper/internal/filewalker"
	"translation-keeper/internal/manifest"
	"translation-keeper/internal/store"
	"translation-keeper/internal/textutil"

	"github.com/rs/zerolog"
)

// Summary reports the per-record outcomes of a restore.
type Summary struct {
	Loaded   int
	Restored int
	Skipped  int
	Failed   int
}

// Restorer reinjects stored Chinese translations into live manifests.
type Restorer struct {
	cfg *config.Config
	log zerolog.Logger
}

func NewRestorer(cfg *config.Config, logger zerolog.Logger) *Restorer {
	return &Restorer{cfg: cfg, log: logger}
}

type outcome int

const (
	outcomeRestored outcome = iota
	outcomeSkipped
	outcomeFailed
)

// Run loads the store file from root and patches every record flagged as
// Chinese back into its manifest. A missing or unparsable store file is
// fatal; everything after that is per-record, counted and isolated.
func (r *Restorer) Run(root string) (*Summary, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve mods root: %w", err)
	}

	storePath := filepath.Join(root, r.cfg.StoreFile)
	st, err := store.Load(storePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("translation store %s not found, run scan first: %w", storePath, err)
		}
		return nil, fmt.Errorf("load translation store %s (run scan to recreate it): %w", storePath, err)
	}

	r.log.Info().Int("records", len(st)).Str("path", storePath).Msg("Loaded translation store")

	sum := &Summary{Loaded: len(st)}
	for _, rec := range st {
		switch r.restoreOne(root, rec) {
		case outcomeRestored:
			sum.Restored++
		case outcomeSkipped:
			sum.Skipped++
		case outcomeFailed:
			sum.Failed++
		}
	}

	r.log.Info().
		Int("restored", sum.Restored).
		Int("skipped", sum.Skipped).
		Int("failed", sum.Failed).
		Msg("Restore complete")

	return sum, nil
}

func (r *Restorer) restoreOne(root string, rec store.Record) outcome {
	manifestPath := filepath.Join(root, rec.Path, filewalker.ManifestFileName)

	if _, err := os.Stat(manifestPath); err != nil {
		r.log.Warn().Str("path", manifestPath).Msg("Manifest no longer exists, skipping")
		return outcomeSkipped
	}

	text, _, err := encfile.Read(manifestPath)
	if err != nil {
		r.log.Error().Err(err).Str("path", manifestPath).Msg("Failed to read manifest")
		return outcomeFailed
	}

	if strings.TrimSpace(text) == "" {
		r.log.Warn().Str("path", manifestPath).Msg("Empty manifest, skipping")
		return outcomeSkipped
	}

	if !shouldUpdate(rec) {
		r.log.Debug().Str("mod", rec.Path).Msg("No Chinese translation, skipping")
		return outcomeSkipped
	}

	updated := false
	if rec.Name != nil {
		var changed bool
		text, changed = manifest.Patch(text, "Name", *rec.Name)
		updated = updated || changed
	}
	if rec.Description != nil {
		var changed bool
		text, changed = manifest.Patch(text, "Description", *rec.Description)
		updated = updated || changed
	}

	if !updated {
		r.log.Warn().Str("mod", rec.Path).Msg("No updatable field found")
		return outcomeFailed
	}

	if err := encfile.Write(manifestPath, text); err != nil {
		r.log.Error().Err(err).Str("path", manifestPath).Msg("Failed to write manifest")
		return outcomeFailed
	}

	r.log.Info().Str("mod", rec.Path).Str("name", textutil.Truncate(derefOr(rec.Name, ""), 40)).Msg("Restored translation")
	return outcomeRestored
}

// shouldUpdate trusts the stored IsChinese flag; only store files written
// before the flag existed fall back to rechecking the stored values.
func shouldUpdate(rec store.Record) bool {
	if rec.IsChinese != nil {
		return *rec.IsChinese
	}
	return textutil.AnyChinese(derefOr(rec.Name, ""), derefOr(rec.Description, ""))
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
