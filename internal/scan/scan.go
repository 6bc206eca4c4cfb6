package scan

import (
	"fmt"
	"path/filepath"

	"translation-keeper/internal/config"
	"translation-keeper/internal/encfile"
	"translation-keeper/internal/filewalker"
	"translation-keeper/internal/manifest"
	"translation-keeper/internal/store"
	"translation-keeper/internal/textutil"

	"github.com/rs/zerolog"
)

// Summary reports the per-manifest outcomes of a scan.
type Summary struct {
	Found     int
	Extracted int
	NoContent int
	Failed    int
}

// Scanner walks a mods tree, extracts translatable fields from each
// manifest and writes the aggregate translation store.
type Scanner struct {
	cfg       *config.Config
	extractor *manifest.Extractor
	log       zerolog.Logger
}

func NewScanner(cfg *config.Config, logger zerolog.Logger) *Scanner {
	return &Scanner{
		cfg:       cfg,
		extractor: manifest.NewExtractor(cfg.NexusHost, cfg.GameSlug),
		log:       logger,
	}
}

// Run scans root and saves the store file inside it. Per-manifest errors
// are counted, not propagated; only a failure to walk the tree or to
// write the store aborts the run. An empty result produces a warning and
// no store file.
func (s *Scanner) Run(root string) (*Summary, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve mods root: %w", err)
	}

	paths, err := filewalker.NewWalker(s.log).Walk(root)
	if err != nil {
		return nil, fmt.Errorf("walk mods directory: %w", err)
	}

	sum := &Summary{Found: len(paths)}
	st := store.Store{}

	for _, path := range paths {
		rec, ok, err := s.scanOne(root, path)
		if err != nil {
			s.log.Error().Err(err).Str("path", path).Msg("Failed to process manifest")
			sum.Failed++
			continue
		}
		if !ok {
			s.log.Warn().Str("path", path).Msg("No Name or Description found")
			sum.NoContent++
			continue
		}

		st[rec.Path] = rec
		sum.Extracted++
		s.log.Debug().Str("mod", rec.Path).Str("name", textutil.Truncate(nameOf(rec), 40)).Msg("Extracted")
	}

	if len(st) == 0 {
		s.log.Warn().Msg("No translation data extracted, store not written")
		return sum, nil
	}

	storePath := filepath.Join(root, s.cfg.StoreFile)
	if err := st.Save(storePath); err != nil {
		return sum, fmt.Errorf("save translation store: %w", err)
	}

	s.log.Info().
		Str("path", storePath).
		Int("extracted", sum.Extracted).
		Int("no_content", sum.NoContent).
		Int("failed", sum.Failed).
		Msg("Scan complete")

	return sum, nil
}

// scanOne reads and extracts a single manifest. ok is false when neither
// Name nor Description is present, which excludes the manifest from the
// store altogether.
func (s *Scanner) scanOne(root, path string) (store.Record, bool, error) {
	text, _, err := encfile.Read(path)
	if err != nil {
		return store.Record{}, false, err
	}

	fields := s.extractor.Extract(text)
	if fields.Name == nil && fields.Description == nil {
		return store.Record{}, false, nil
	}

	dir := filepath.Dir(path)
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return store.Record{}, false, fmt.Errorf("relativize path: %w", err)
	}

	uniqueID := ""
	if fields.UniqueID != nil {
		uniqueID = *fields.UniqueID
	}
	if uniqueID == "" {
		uniqueID = filepath.Base(dir)
	}

	isChinese := fields.IsChinese
	return store.Record{
		UniqueID:    uniqueID,
		Name:        fields.Name,
		Description: fields.Description,
		Path:        rel,
		IsChinese:   &isChinese,
		Nurl:        fields.UpdateURL,
	}, true, nil
}

func nameOf(rec store.Record) string {
	if rec.Name != nil {
		return *rec.Name
	}
	return ""
}
