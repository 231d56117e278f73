package model

import "strings"

// FormInput is the career information collected by the builder form.
//
// Experience, education, skills and projects arrive either as structured
// entries (the current form) or as a single block of delimited text (the
// legacy form). When both are present the structured entries win.
type FormInput struct {
	Name         string `json:"name" validate:"required"`
	CurrentTitle string `json:"current_title,omitempty"`
	TargetJob    string `json:"target_job" validate:"required"`
	Industry     string `json:"industry,omitempty"`
	SummaryOrBio string `json:"summary_or_bio,omitempty"`
	Language     string `json:"language,omitempty"`

	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`

	Experience []ExperienceInput `json:"work_experience,omitempty"`
	Education  []EducationInput  `json:"education,omitempty"`
	Skills     []SkillInput      `json:"skills,omitempty"`
	Projects   []ProjectInput    `json:"projects,omitempty"`

	ExperienceText string `json:"-"`
	EducationText  string `json:"-"`
	SkillsText     string `json:"-"`
	ProjectsText   string `json:"-"`
}

type ExperienceInput struct {
	Company      string `json:"company,omitempty"`
	Title        string `json:"title,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Location     string `json:"location,omitempty"`
	Description  string `json:"description,omitempty"`
	Achievements string `json:"achievements,omitempty"`
}

type EducationInput struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Skill categories offered by the form's category picker.
const (
	CategorySoftSkills = "Soft Skills"
	CategoryTools      = "Tools & Platforms"
	CategoryLanguages  = "Languages"
	CategoryTechnical  = "Technical Skills"
)

type SkillInput struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type ProjectInput struct {
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"`
	Link         string `json:"link,omitempty"`
}

// RawSkills returns the skills as a single comma-delimited string, the shape
// the summary template works from regardless of input mode.
func (f FormInput) RawSkills() string {
	if len(f.Skills) == 0 {
		return f.SkillsText
	}
	names := make([]string, 0, len(f.Skills))
	for _, s := range f.Skills {
		if n := strings.TrimSpace(s.Name); n != "" {
			names = append(names, n)
		}
	}
	return strings.Join(names, ", ")
}

// HeaderTitle is the job title shown in the resume header.
func (f FormInput) HeaderTitle() string {
	if t := strings.TrimSpace(f.TargetJob); t != "" {
		return t
	}
	if t := strings.TrimSpace(f.CurrentTitle); t != "" {
		return t
	}
	return "Professional"
}
