package synth

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"translation-keeper/internal/config"
	"translation-keeper/internal/filewalker"
	"translation-keeper/internal/store"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var nexusModIDPattern = regexp.MustCompile(`/mods/(\d+)$`)

// testManifest is the minimal SMAPI manifest written for each record.
// Slots the original tooling filled with null are omitted entirely.
type testManifest struct {
	Name               string         `json:"Name"`
	Author             string         `json:"Author"`
	Version            string         `json:"Version"`
	Description        string         `json:"Description"`
	UniqueID           string         `json:"UniqueID"`
	MinimumGameVersion string         `json:"MinimumGameVersion"`
	MinimumApiVersion  string         `json:"MinimumApiVersion"`
	UpdateKeys         []string       `json:"UpdateKeys"`
	ContentPackFor     *packRef       `json:"ContentPackFor,omitempty"`
	Dependencies       []string       `json:"Dependencies"`
	Maps               map[string]any `json:"Maps"`
}

type packRef struct {
	UniqueID string `json:"UniqueID"`
}

// contentPackParents maps UniqueID fragments of known content packs to
// their framework mod, for records whose Name carries the [CP] marker.
var contentPackParents = []struct {
	fragment string
	parent   string
}{
	{"BetterJunimos", "hawkfalcon.BetterJunimos"},
	{"VPP", "KediDili.VanillaPlusProfessions"},
	{"Pierre", "Pathoschild.ContentPatcher"},
	{"DaisyNiko", "Pathoschild.ContentPatcher"},
	{"Shopkeeper", "Pathoschild.ContentPatcher"},
	{"Way", "Pathoschild.ContentPatcher"},
	{"Canon", "Pathoschild.ContentPatcher"},
}

// Summary reports the outcomes of a synthesis run.
type Summary struct {
	Created int
	Failed  int
}

// Synthesizer materializes a mods tree from a translation store, one
// directory with a minimal manifest per record. It exists to exercise
// scan and restore against realistic trees.
type Synthesizer struct {
	cfg *config.Config
	log zerolog.Logger
}

func NewSynthesizer(cfg *config.Config, logger zerolog.Logger) *Synthesizer {
	return &Synthesizer{cfg: cfg, log: logger}
}

// Run loads the store file from root and writes one manifest per record
// under root. Per-record failures are counted and do not abort the run.
func (s *Synthesizer) Run(root string) (*Summary, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve output root: %w", err)
	}

	storePath := filepath.Join(root, s.cfg.StoreFile)
	st, err := store.Load(storePath)
	if err != nil {
		return nil, fmt.Errorf("load translation store %s: %w", storePath, err)
	}

	sum := &Summary{}
	for _, rec := range st {
		if err := s.writeOne(root, rec); err != nil {
			s.log.Error().Err(err).Str("mod", rec.Path).Msg("Failed to create test mod")
			sum.Failed++
			continue
		}
		sum.Created++
		s.log.Debug().Str("mod", rec.Path).Msg("Created test mod")
	}

	s.log.Info().Int("created", sum.Created).Int("failed", sum.Failed).Str("root", root).Msg("Test mods generated")
	return sum, nil
}

func (s *Synthesizer) writeOne(root string, rec store.Record) error {
	dir := filepath.Join(root, rec.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create mod directory: %w", err)
	}

	m := buildManifest(rec)
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, filewalker.ManifestFileName), data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func buildManifest(rec store.Record) testManifest {
	m := testManifest{
		Name:               valueOr(rec.Name, "Unknown Mod"),
		Author:             "Test Author",
		Version:            "1.0.0",
		Description:        valueOr(rec.Description, "No description provided"),
		UniqueID:           rec.UniqueID,
		MinimumGameVersion: "1.5.6",
		MinimumApiVersion:  "3.14.0",
		UpdateKeys:         []string{},
		Dependencies:       []string{},
		Maps:               map[string]any{},
	}
	if m.UniqueID == "" {
		m.UniqueID = "unknown.mod"
	}

	// Restore the Nexus update key from the stored URL so a scan of the
	// synthesized tree round-trips the Nurl field.
	if rec.Nurl != nil {
		if id := nexusModIDPattern.FindStringSubmatch(*rec.Nurl); id != nil {
			m.UpdateKeys = append(m.UpdateKeys, "Nexus:"+id[1])
		}
	}

	if strings.Contains(m.Name, "[CP]") {
		for _, cp := range contentPackParents {
			if strings.Contains(m.UniqueID, cp.fragment) {
				m.ContentPackFor = &packRef{UniqueID: cp.parent}
				break
			}
		}
	}

	return m
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
