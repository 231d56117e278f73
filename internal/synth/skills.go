package synth

import (
	"sort"
	"strings"

	"resume-builder/internal/model"
)

const maxSuggestions = 5

// SuggestSkills ranks up to five skills for jobTitle that are not already in
// existing. Every role key contained in the lowercased title contributes its
// candidates; a title matching no key falls back to cross-functional skills.
// industry is accepted for callers that have one and does not affect ranking.
func (s *Synthesizer) SuggestSkills(jobTitle, industry string, existing []string) []model.SuggestedSkill {
	title := strings.ToLower(jobTitle)
	var candidates []Candidate
	for _, role := range s.catalog.roles {
		if strings.Contains(title, role.Key) {
			candidates = append(candidates, role.Skills...)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, s.catalog.generic...)
	}

	known := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		known[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}

	filtered := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := known[strings.ToLower(c.Name)]; ok {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Relevance > filtered[j].Relevance
	})

	if len(filtered) > maxSuggestions {
		filtered = filtered[:maxSuggestions]
	}

	out := make([]model.SuggestedSkill, 0, len(filtered))
	for _, c := range filtered {
		out = append(out, model.SuggestedSkill{Name: c.Name, Confidence: c.Relevance})
	}
	return out
}

// classify returns the bucket a free-form skill belongs to, by keyword.
func (s *Synthesizer) classify(skill string) bucket {
	lower := strings.ToLower(skill)
	for _, kw := range s.catalog.softKeywords {
		if strings.Contains(lower, kw) {
			return bucketSoft
		}
	}
	for _, kw := range s.catalog.toolKeywords {
		if strings.Contains(lower, kw) {
			return bucketTools
		}
	}
	return bucketTechnical
}

type bucket int

const (
	bucketTechnical bucket = iota
	bucketSoft
	bucketTools
)

// skillSet accumulates skills into buckets, keeping insertion order and
// dropping blanks and case-insensitive repeats across all buckets.
type skillSet struct {
	seen   map[string]struct{}
	skills model.Skills
}

func newSkillSet() *skillSet {
	return &skillSet{
		seen: map[string]struct{}{},
		skills: model.Skills{
			Technical: []string{},
			Soft:      []string{},
			Tools:     []string{},
		},
	}
}

func (ss *skillSet) add(name string, b bucket) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	key := strings.ToLower(name)
	if _, dup := ss.seen[key]; dup {
		return
	}
	ss.seen[key] = struct{}{}
	switch b {
	case bucketSoft:
		ss.skills.Soft = append(ss.skills.Soft, name)
	case bucketTools:
		ss.skills.Tools = append(ss.skills.Tools, name)
	default:
		ss.skills.Technical = append(ss.skills.Technical, name)
	}
}

// splitSkills splits delimited skills text on commas and newlines.
func splitSkills(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' || r == '\r' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
