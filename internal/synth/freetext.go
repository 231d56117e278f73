package synth

import (
	"regexp"
	"strings"

	"resume-builder/internal/model"
)

// Free-text parsing for the legacy single-textarea form.
//
// Known limitation: a line starts a new experience entry only because it lacks
// a leading "-" or "•". A wrapped bullet that lost its marker is read as a new
// company. The structured form does not have this problem.

var bulletMarkers = []string{"-", "•"}

func (s *Synthesizer) parseExperienceText(text, targetJob, fallbackTitle string) []model.ExperienceEntry {
	var entries []model.ExperienceEntry
	var current *model.ExperienceEntry

	flush := func() {
		if current == nil {
			return
		}
		if len(current.Bullets) == 0 {
			current.Bullets = s.Achievements("", targetJob)
		}
		entries = append(entries, *current)
		current = nil
	}

	for _, line := range nonBlankLines(text) {
		if body, ok := stripBullet(line); ok {
			if current == nil {
				current = newTextEntry("", fallbackTitle)
			}
			if body != "" {
				current.Bullets = append(current.Bullets, body)
			}
			continue
		}
		flush()
		current = newTextEntry(line, fallbackTitle)
	}
	flush()
	return entries
}

// newTextEntry reads "Company, Title, 2019 - 2022" positionally. Only the
// company is required; the rest falls back to the structured defaults.
func newTextEntry(header, fallbackTitle string) *model.ExperienceEntry {
	parts := splitTrim(header, ",")
	e := &model.ExperienceEntry{
		Company:  defaultCompany,
		Title:    orDefault(fallbackTitle, defaultPosition),
		Start:    defaultStart,
		End:      defaultEnd,
		Location: defaultLocation,
	}
	if len(parts) > 0 && parts[0] != "" {
		e.Company = parts[0]
	}
	if len(parts) > 1 && parts[1] != "" {
		e.Title = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		e.Start, e.End = dateRange(parts[2])
	}
	if len(parts) > 3 && parts[3] != "" {
		e.Location = strings.Join(parts[3:], ", ")
	}
	return e
}

var isoMonth = regexp.MustCompile(`^\d{4}-\d{2}$`)

// dateRange splits "start - end". Spaced separators are tried first so ISO
// months like 2019-03 survive; a bare dash splits only when it is the only one.
func dateRange(s string) (string, string) {
	s = strings.TrimSpace(s)
	for _, sep := range []string{" - ", " – ", " — ", " to "} {
		if i := strings.Index(s, sep); i >= 0 {
			return splitRange(s[:i], s[i+len(sep):])
		}
	}
	if !isoMonth.MatchString(s) {
		for _, sep := range []string{"–", "—", "-"} {
			if strings.Count(s, sep) == 1 {
				i := strings.Index(s, sep)
				return splitRange(s[:i], s[i+len(sep):])
			}
		}
	}
	return orDefault(s, defaultStart), defaultEnd
}

func splitRange(start, end string) (string, string) {
	return orDefault(start, defaultStart), orDefault(end, defaultEnd)
}

func stripBullet(line string) (string, bool) {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(strings.TrimPrefix(line, m)), true
		}
	}
	return line, false
}

func (s *Synthesizer) parseEducationText(text string) []model.EducationEntry {
	var out []model.EducationEntry
	for _, line := range nonBlankLines(text) {
		parts := splitTrim(line, ",")
		e := model.EducationEntry{
			Institution: defaultInstitution,
			Degree:      defaultDegree,
			Year:        defaultStart,
		}
		if len(parts) > 0 && parts[0] != "" {
			e.Institution = parts[0]
		}
		if len(parts) > 1 && parts[1] != "" {
			e.Degree = parts[1]
		}
		if len(parts) > 2 && parts[2] != "" {
			e.Year = parts[2]
		}
		out = append(out, e)
	}
	return out
}

func (s *Synthesizer) parseSkillsText(text string, ss *skillSet) {
	for _, skill := range splitSkills(text) {
		ss.add(skill, s.classify(skill))
	}
}

func (s *Synthesizer) parseProjectsText(text string) []model.ProjectEntry {
	var out []model.ProjectEntry
	for _, line := range nonBlankLines(text) {
		p := model.ProjectEntry{TechStack: []string{}}
		if name, desc, ok := strings.Cut(line, ":"); ok {
			p.Name = strings.TrimSpace(name)
			p.Description = strings.TrimSpace(desc)
		} else {
			p.Name = line
		}
		if p.Name == "" {
			p.Name = defaultProject
		}
		out = append(out, p)
	}
	return out
}

func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
