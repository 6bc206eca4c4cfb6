package manifest

import (
	"fmt"
	"regexp"

	"translation-keeper/internal/textutil"
)

// SMAPI manifests are JSON in spirit but frequently carry comments and
// trailing commas, so fields are located by pattern rather than parsed.
var (
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentPattern  = regexp.MustCompile(`(?m)//.*$`)
	namePattern         = regexp.MustCompile(`"Name"\s*:\s*"([^"]*)"`)
	descriptionPattern  = regexp.MustCompile(`"Description"\s*:\s*"([^"]*)"`)
	uniqueIDPattern     = regexp.MustCompile(`(?i)"UniqueID"\s*:\s*"([^"]*)"`)
	updateKeysPattern   = regexp.MustCompile(`(?s)"UpdateKeys"\s*:\s*\[(.*?)\]`)
	nexusPattern        = regexp.MustCompile(`"Nexus:(\d+)"`)
)

// Fields holds the values extracted from a single manifest. Nil means the
// field was not present in the source text.
type Fields struct {
	Name        *string
	Description *string
	UniqueID    *string
	UpdateURL   *string
	IsChinese   bool
}

// Extractor locates the translatable fields of a manifest.
type Extractor struct {
	nexusHost string
	gameSlug  string
}

// NewExtractor creates an Extractor. nexusHost and gameSlug form the mod
// page URL synthesized from a Nexus update key.
func NewExtractor(nexusHost, gameSlug string) *Extractor {
	return &Extractor{nexusHost: nexusHost, gameSlug: gameSlug}
}

// Extract returns the Name, Description, UniqueID and update URL found in
// the manifest text. Comments are stripped before the field search; the
// first match of each field wins. Absence of any field is a normal outcome,
// never an error.
func (e *Extractor) Extract(text string) Fields {
	stripped := StripComments(text)

	fields := Fields{
		Name:        firstGroup(namePattern, stripped),
		Description: firstGroup(descriptionPattern, stripped),
		UniqueID:    firstGroup(uniqueIDPattern, stripped),
	}

	if keys := updateKeysPattern.FindStringSubmatch(stripped); keys != nil {
		if m := nexusPattern.FindStringSubmatch(keys[1]); m != nil {
			url := fmt.Sprintf("https://%s/%s/mods/%s", e.nexusHost, e.gameSlug, m[1])
			fields.UpdateURL = &url
		}
	}

	fields.IsChinese = textutil.AnyChinese(deref(fields.Name), deref(fields.Description))
	return fields
}

// StripComments removes block comments then line comments as a plain text
// transform. Quoted values are not tokenized, so a comment delimiter inside
// a quoted string can defeat the heuristic; the format makes that rare and
// the behavior is kept for parity with existing stores.
func StripComments(text string) string {
	text = blockCommentPattern.ReplaceAllString(text, "")
	return lineCommentPattern.ReplaceAllString(text, "")
}

func firstGroup(p *regexp.Regexp, text string) *string {
	m := p.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &m[1]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
