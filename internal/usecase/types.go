package usecase

import (
	"strings"

	"resume-builder/internal/model"
)

// NewFormInputFromMap converts a decoded request body into a FormInput.
// It normalises the common input shapes: each list section may arrive as an
// array of objects (structured form), an array of strings or a single block
// of text (legacy form). Values of any other type are treated as absent.
func NewFormInputFromMap(m map[string]interface{}) model.FormInput {
	if m == nil {
		return model.FormInput{}
	}

	form := model.FormInput{
		Name:         str(m, "name"),
		CurrentTitle: str(m, "current_title", "currentTitle"),
		TargetJob:    str(m, "target_job", "targetJob"),
		Industry:     str(m, "industry"),
		SummaryOrBio: str(m, "summary_or_bio", "summaryOrBio", "summary"),
		Language:     str(m, "language"),
		Email:        str(m, "email"),
		Phone:        str(m, "phone"),
		Location:     str(m, "location"),
		LinkedIn:     str(m, "linkedin", "linkedIn"),
	}

	if v, ok := m["work_experience"]; ok {
		switch t := v.(type) {
		case string:
			form.ExperienceText = t
		case []interface{}:
			var lines []string
			for _, it := range t {
				switch e := it.(type) {
				case map[string]interface{}:
					form.Experience = append(form.Experience, model.ExperienceInput{
						Company:      str(e, "company"),
						Title:        str(e, "title", "position"),
						StartDate:    str(e, "startDate", "start_date", "start"),
						EndDate:      str(e, "endDate", "end_date", "end"),
						Location:     str(e, "location"),
						Description:  str(e, "description"),
						Achievements: str(e, "achievements"),
					})
				case string:
					lines = append(lines, e)
				}
			}
			form.ExperienceText = strings.Join(lines, "\n")
		}
	}

	if v, ok := m["education"]; ok {
		switch t := v.(type) {
		case string:
			form.EducationText = t
		case []interface{}:
			var lines []string
			for _, it := range t {
				switch e := it.(type) {
				case map[string]interface{}:
					form.Education = append(form.Education, model.EducationInput{
						Institution: str(e, "institution", "school"),
						Degree:      str(e, "degree"),
						Year:        str(e, "year", "graduationYear", "graduation_year"),
					})
				case string:
					lines = append(lines, e)
				}
			}
			form.EducationText = strings.Join(lines, "\n")
		}
	}

	if v, ok := m["skills"]; ok {
		switch t := v.(type) {
		case string:
			form.SkillsText = t
		case []interface{}:
			for _, it := range t {
				switch s := it.(type) {
				case map[string]interface{}:
					if name := str(s, "name"); name != "" {
						form.Skills = append(form.Skills, model.SkillInput{Name: name, Category: str(s, "category")})
					}
				case string:
					if name := strings.TrimSpace(s); name != "" {
						form.Skills = append(form.Skills, model.SkillInput{Name: name})
					}
				}
			}
		}
	}

	if v, ok := m["projects"]; ok {
		switch t := v.(type) {
		case string:
			form.ProjectsText = t
		case []interface{}:
			var lines []string
			for _, it := range t {
				switch p := it.(type) {
				case map[string]interface{}:
					form.Projects = append(form.Projects, model.ProjectInput{
						Name:         str(p, "name"),
						Description:  str(p, "description"),
						Technologies: technologies(p["technologies"]),
						Link:         str(p, "link", "url"),
					})
				case string:
					lines = append(lines, p)
				}
			}
			form.ProjectsText = strings.Join(lines, "\n")
		}
	}

	return form
}

// str returns the first string value found under keys.
func str(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			return s
		}
	}
	return ""
}

// technologies accepts "Go, React" or ["Go", "React"].
func technologies(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, strings.TrimSpace(s))
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// formPayload is the form as sent to the AI provider: structured sections
// plus any free-text blocks, which the JSON form of FormInput omits.
func formPayload(form model.FormInput) map[string]interface{} {
	out := map[string]interface{}{
		"name":           form.Name,
		"current_title":  form.CurrentTitle,
		"target_job":     form.TargetJob,
		"industry":       form.Industry,
		"summary_or_bio": form.SummaryOrBio,
		"contact": map[string]interface{}{
			"email":    form.Email,
			"phone":    form.Phone,
			"location": form.Location,
			"linkedin": form.LinkedIn,
		},
	}
	if len(form.Experience) > 0 {
		out["work_experience"] = form.Experience
	} else if form.ExperienceText != "" {
		out["work_experience"] = form.ExperienceText
	}
	if len(form.Education) > 0 {
		out["education"] = form.Education
	} else if form.EducationText != "" {
		out["education"] = form.EducationText
	}
	if len(form.Skills) > 0 {
		out["skills"] = form.Skills
	} else if form.SkillsText != "" {
		out["skills"] = form.SkillsText
	}
	if len(form.Projects) > 0 {
		out["projects"] = form.Projects
	} else if form.ProjectsText != "" {
		out["projects"] = form.ProjectsText
	}
	return out
}
