package synth

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minDescriptionLen = 20
	minLineLen        = 15
	minAchievements   = 3
	maxAchievements   = 5
)

// Achievements turns a free-text work description into 3-5 accomplishment
// bullets. Short or empty descriptions yield a fixed set chosen by targetJob.
func (s *Synthesizer) Achievements(workExperience, targetJob string) []string {
	if utf8.RuneCountInString(strings.TrimSpace(workExperience)) < minDescriptionLen {
		return s.trackFor(targetJob)
	}

	var achievements []string
	lines := nonBlankLines(workExperience)
	if len(lines) > maxAchievements {
		lines = lines[:maxAchievements]
	}
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= minLineLen {
			continue
		}
		if s.startsWithActionVerb(line) {
			achievements = append(achievements, line)
			continue
		}
		achievements = append(achievements, "Successfully "+lowerFirst(line))
	}

	for _, f := range s.catalog.filler {
		if len(achievements) >= minAchievements {
			break
		}
		achievements = append(achievements, f)
	}

	if len(achievements) > maxAchievements {
		achievements = achievements[:maxAchievements]
	}
	return achievements
}

func (s *Synthesizer) trackFor(targetJob string) []string {
	job := strings.ToLower(targetJob)
	switch {
	case strings.Contains(job, "engineer"), strings.Contains(job, "developer"):
		return s.catalog.TechnicalTrack()
	case strings.Contains(job, "manager"):
		return s.catalog.LeadershipTrack()
	default:
		return s.catalog.GenericTrack()
	}
}

func (s *Synthesizer) startsWithActionVerb(line string) bool {
	lower := strings.ToLower(line)
	for _, verb := range s.catalog.actionVerbs {
		if strings.HasPrefix(lower, strings.ToLower(verb)) {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func nonBlankLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
