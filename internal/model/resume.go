package model

// Go models that match schema/resume.schema.json used for validation and rendering.

type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

type Header struct {
	Name    string  `json:"name"`
	Title   string  `json:"title"`
	Contact Contact `json:"contact"`
}

type ExperienceEntry struct {
	Company  string   `json:"company"`
	Title    string   `json:"title"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Location string   `json:"location"`
	Bullets  []string `json:"bullets"`
}

type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

// Skills partitions a candidate's skills into three insertion-ordered buckets.
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

// All returns every skill across the three buckets in bucket order.
func (s Skills) All() []string {
	out := make([]string, 0, len(s.Technical)+len(s.Soft)+len(s.Tools))
	out = append(out, s.Technical...)
	out = append(out, s.Soft...)
	out = append(out, s.Tools...)
	return out
}

type ProjectEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	Link        string   `json:"link,omitempty"`
}

// SuggestedSkill is a skill the candidate does not list yet. Confidence is a
// relevance score in [0,1], not a calibrated probability.
type SuggestedSkill struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

type Resume struct {
	Header               Header            `json:"header"`
	Summary              string            `json:"summary"`
	Experience           []ExperienceEntry `json:"experience"`
	Education            []EducationEntry  `json:"education"`
	Skills               Skills            `json:"skills"`
	Projects             []ProjectEntry    `json:"projects"`
	ExtraSkillsSuggested []SuggestedSkill  `json:"extra_skills_suggested"`
}
