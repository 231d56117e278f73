package synth

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"resume-builder/internal/model"
)

// A bio longer than this is kept as written.
const bioThreshold = 50

// Summary returns the professional-summary paragraph for form.
func (s *Synthesizer) Summary(form model.FormInput) string {
	bio := strings.TrimSpace(form.SummaryOrBio)
	if utf8.RuneCountInString(bio) > bioThreshold {
		target := orDefault(form.TargetJob, "professional")
		sector := ""
		if industry := strings.TrimSpace(form.Industry); industry != "" {
			sector = fmt.Sprintf(" in the %s sector", industry)
		}
		return fmt.Sprintf("%s Seeking opportunities to contribute as a %s%s.", bio, target, sector)
	}

	currentTitle := orDefault(form.CurrentTitle, "experienced professional")
	targetJob := orDefault(form.TargetJob, "specialist")
	industry := orDefault(form.Industry, "relevant")

	skillsText := ""
	if skills := splitSkills(form.RawSkills()); len(skills) > 0 {
		if len(skills) > 3 {
			skills = skills[:3]
		}
		skillsText = " with expertise in " + strings.Join(skills, ", ")
	}

	return fmt.Sprintf(
		"Results-driven %s%s, bringing %d+ years of proven experience in %s industry. "+
			"Demonstrated success in delivering high-impact solutions and driving measurable business outcomes. "+
			"Seeking to leverage technical expertise and collaborative approach as a %s to contribute to organizational growth and innovation.",
		currentTitle, skillsText, s.yearsOfExperience, industry, targetJob,
	)
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
