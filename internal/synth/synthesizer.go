package synth

import (
	"strings"

	"resume-builder/internal/model"
)

// Display defaults substituted for missing form values.
const (
	defaultName        = "Professional"
	defaultCompany     = "Company"
	defaultPosition    = "Position"
	defaultStart       = "2020"
	defaultEnd         = "Present"
	defaultLocation    = "United States"
	defaultInstitution = "University"
	defaultDegree      = "Degree"
	defaultProject     = "Project"
	defaultEmail       = "contact@email.com"
	defaultPhone       = "+1 (555) 123-4567"
	defaultLinkedIn    = "linkedin.com/in/profile"

	synthesizedCompany = "Professional Experience"

	DefaultYearsOfExperience = 3
)

// Synthesizer maps form input to a canonical resume. It holds only immutable
// configuration and is safe for concurrent use.
type Synthesizer struct {
	catalog           *Catalog
	yearsOfExperience int
}

type Option func(*Synthesizer)

// WithCatalog replaces the built-in reference tables.
func WithCatalog(c *Catalog) Option {
	return func(s *Synthesizer) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithYearsOfExperience sets the years quoted by the generated summary.
func WithYearsOfExperience(years int) Option {
	return func(s *Synthesizer) {
		if years > 0 {
			s.yearsOfExperience = years
		}
	}
}

func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{catalog: DefaultCatalog(), yearsOfExperience: DefaultYearsOfExperience}
	for _, o := range opts {
		o(s)
	}
	return s
}

var defaultSynthesizer = New()

// Synthesize builds a resume with the default catalog.
func Synthesize(form model.FormInput) model.Resume {
	return defaultSynthesizer.Synthesize(form)
}

// Synthesize builds a complete resume from form. Every missing piece gets a
// deterministic default, so the result always has a header name and title,
// at least one experience entry with bullets, and at least one soft skill.
func (s *Synthesizer) Synthesize(form model.FormInput) model.Resume {
	skills := s.buildSkills(form)

	suggestTitle := strings.TrimSpace(form.TargetJob)
	if suggestTitle == "" {
		suggestTitle = strings.TrimSpace(form.CurrentTitle)
	}

	return model.Resume{
		Header:               s.buildHeader(form),
		Summary:              s.Summary(form),
		Experience:           s.buildExperience(form),
		Education:            s.buildEducation(form),
		Skills:               skills,
		Projects:             s.buildProjects(form),
		ExtraSkillsSuggested: s.SuggestSkills(suggestTitle, form.Industry, skills.All()),
	}
}

func (s *Synthesizer) buildHeader(form model.FormInput) model.Header {
	name := strings.TrimSpace(form.Name)

	email := strings.TrimSpace(form.Email)
	linkedin := strings.TrimSpace(form.LinkedIn)
	if fields := strings.Fields(strings.ToLower(name)); len(fields) > 0 {
		if email == "" {
			email = strings.Join(fields, ".") + "@email.com"
		}
		if linkedin == "" {
			linkedin = "linkedin.com/in/" + strings.Join(fields, "")
		}
	}

	return model.Header{
		Name:  orDefault(name, defaultName),
		Title: form.HeaderTitle(),
		Contact: model.Contact{
			Email:    orDefault(email, defaultEmail),
			Phone:    orDefault(form.Phone, defaultPhone),
			Location: orDefault(form.Location, defaultLocation),
			LinkedIn: orDefault(linkedin, defaultLinkedIn),
		},
	}
}

func (s *Synthesizer) buildExperience(form model.FormInput) []model.ExperienceEntry {
	var entries []model.ExperienceEntry

	for _, in := range form.Experience {
		if in == (model.ExperienceInput{}) {
			continue
		}
		bullets := nonBlankLines(in.Achievements)
		if len(bullets) == 0 {
			bullets = s.Achievements(in.Description, form.TargetJob)
		}
		entries = append(entries, model.ExperienceEntry{
			Company:  orDefault(in.Company, defaultCompany),
			Title:    orDefault(in.Title, defaultPosition),
			Start:    orDefault(in.StartDate, defaultStart),
			End:      orDefault(in.EndDate, defaultEnd),
			Location: orDefault(in.Location, defaultLocation),
			Bullets:  bullets,
		})
	}

	if len(entries) == 0 && strings.TrimSpace(form.ExperienceText) != "" {
		entries = s.parseExperienceText(form.ExperienceText, form.TargetJob, form.CurrentTitle)
	}

	if len(entries) == 0 {
		entries = []model.ExperienceEntry{{
			Company:  synthesizedCompany,
			Title:    form.HeaderTitle(),
			Start:    defaultStart,
			End:      defaultEnd,
			Location: defaultLocation,
			Bullets:  s.Achievements("", form.TargetJob),
		}}
	}
	return entries
}

func (s *Synthesizer) buildEducation(form model.FormInput) []model.EducationEntry {
	entries := []model.EducationEntry{}
	for _, in := range form.Education {
		if in == (model.EducationInput{}) {
			continue
		}
		entries = append(entries, model.EducationEntry{
			Institution: orDefault(in.Institution, defaultInstitution),
			Degree:      orDefault(in.Degree, defaultDegree),
			Year:        orDefault(in.Year, defaultStart),
		})
	}
	if len(entries) == 0 && strings.TrimSpace(form.EducationText) != "" {
		entries = append(entries, s.parseEducationText(form.EducationText)...)
	}
	return entries
}

func (s *Synthesizer) buildSkills(form model.FormInput) model.Skills {
	ss := newSkillSet()
	if len(form.Skills) > 0 {
		for _, in := range form.Skills {
			ss.add(in.Name, s.bucketForCategory(in))
		}
	} else {
		s.parseSkillsText(form.SkillsText, ss)
	}

	if len(ss.skills.Soft) == 0 {
		for _, soft := range s.catalog.defaultSoft {
			ss.add(soft, bucketSoft)
		}
	}
	return ss.skills
}

// bucketForCategory honours the form's category picker; uncategorised skills
// are classified by keyword like free-text ones.
func (s *Synthesizer) bucketForCategory(in model.SkillInput) bucket {
	switch strings.ToLower(strings.TrimSpace(in.Category)) {
	case "":
		return s.classify(in.Name)
	case strings.ToLower(model.CategorySoftSkills):
		return bucketSoft
	case strings.ToLower(model.CategoryTools), strings.ToLower(model.CategoryLanguages):
		return bucketTools
	default:
		return bucketTechnical
	}
}

func (s *Synthesizer) buildProjects(form model.FormInput) []model.ProjectEntry {
	entries := []model.ProjectEntry{}
	for _, in := range form.Projects {
		if in == (model.ProjectInput{}) {
			continue
		}
		tech := []string{}
		for _, t := range strings.Split(in.Technologies, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tech = append(tech, t)
			}
		}
		entries = append(entries, model.ProjectEntry{
			Name:        orDefault(in.Name, defaultProject),
			Description: strings.TrimSpace(in.Description),
			TechStack:   tech,
			Link:        strings.TrimSpace(in.Link),
		})
	}
	if len(entries) == 0 && strings.TrimSpace(form.ProjectsText) != "" {
		entries = append(entries, s.parseProjectsText(form.ProjectsText)...)
	}
	return entries
}
