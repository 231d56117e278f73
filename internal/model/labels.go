package model

// Section label keys used by the HTML and DOCX renderers.
const (
	LabelSummary         = "professional_summary"
	LabelExperience      = "professional_experience"
	LabelEducation       = "education"
	LabelSkills          = "skills"
	LabelTechnicalSkills = "technical_skills"
	LabelSoftSkills      = "soft_skills"
	LabelTools           = "tools_platforms"
	LabelSuggestedSkills = "recommended_skills"
	LabelProjects        = "projects"
	LabelTechnologies    = "technologies"
)

// Labels maps a section key to its heading in the resume language.
type Labels map[string]string

// DefaultLabels returns English section headings.
func DefaultLabels() Labels {
	return Labels{
		LabelSummary:         "Professional Summary",
		LabelExperience:      "Professional Experience",
		LabelEducation:       "Education",
		LabelSkills:          "Skills",
		LabelTechnicalSkills: "Technical Skills",
		LabelSoftSkills:      "Soft Skills",
		LabelTools:           "Tools & Platforms",
		LabelSuggestedSkills: "Recommended Skills to Consider",
		LabelProjects:        "Projects",
		LabelTechnologies:    "Technologies",
	}
}

// Get returns the heading for key, falling back to the English default when
// the key is missing or blank.
func (l Labels) Get(key string) string {
	if v, ok := l[key]; ok && v != "" {
		return v
	}
	return DefaultLabels()[key]
}

// Merge overlays non-empty known keys from other onto a copy of l.
func (l Labels) Merge(other map[string]string) Labels {
	out := Labels{}
	for k, v := range l {
		out[k] = v
	}
	defaults := DefaultLabels()
	for k, v := range other {
		if _, known := defaults[k]; known && v != "" {
			out[k] = v
		}
	}
	return out
}
