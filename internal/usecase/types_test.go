package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func decode(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestNewFormInputFromMap_Structured(t *testing.T) {
	form := NewFormInputFromMap(decode(t, `{
		"name": "Jane Doe",
		"targetJob": "Product Designer",
		"current_title": "UX Designer",
		"language": "German",
		"email": "jane@example.com",
		"work_experience": [
			{"company": "Acme", "title": "Designer", "startDate": "2020", "end_date": "2023", "achievements": "Shipped v2"}
		],
		"education": [{"institution": "RISD", "degree": "BFA", "year": "2019"}],
		"skills": [{"name": "Figma", "category": "Tools & Platforms"}, {"name": ""}, "Empathy"],
		"projects": [{"name": "Kit", "technologies": ["React", " ", "Storybook"], "url": "kit.dev"}]
	}`))

	assert.Equal(t, "Jane Doe", form.Name)
	assert.Equal(t, "Product Designer", form.TargetJob)
	assert.Equal(t, "UX Designer", form.CurrentTitle)
	assert.Equal(t, "German", form.Language)
	assert.Equal(t, "jane@example.com", form.Email)

	require.Len(t, form.Experience, 1)
	assert.Equal(t, model.ExperienceInput{Company: "Acme", Title: "Designer", StartDate: "2020", EndDate: "2023", Achievements: "Shipped v2"}, form.Experience[0])
	assert.Empty(t, form.ExperienceText)

	assert.Equal(t, []model.EducationInput{{Institution: "RISD", Degree: "BFA", Year: "2019"}}, form.Education)
	assert.Equal(t, []model.SkillInput{{Name: "Figma", Category: model.CategoryTools}, {Name: "Empathy"}}, form.Skills)
	assert.Equal(t, []model.ProjectInput{{Name: "Kit", Technologies: "React, Storybook", Link: "kit.dev"}}, form.Projects)
}

func TestNewFormInputFromMap_FreeText(t *testing.T) {
	form := NewFormInputFromMap(decode(t, `{
		"name": "Sam",
		"target_job": "Data Analyst",
		"work_experience": "Acme, Analyst, 2019 - 2021\n- Built dashboards",
		"education": ["MIT, BSc, 2018", "Harvard, MBA, 2022"],
		"skills": "SQL, Python",
		"projects": "Dash: a dashboard"
	}`))

	assert.Equal(t, "Acme, Analyst, 2019 - 2021\n- Built dashboards", form.ExperienceText)
	assert.Equal(t, "MIT, BSc, 2018\nHarvard, MBA, 2022", form.EducationText)
	assert.Equal(t, "SQL, Python", form.SkillsText)
	assert.Equal(t, "Dash: a dashboard", form.ProjectsText)
	assert.Empty(t, form.Experience)
	assert.Empty(t, form.Skills)
}

func TestNewFormInputFromMap_WrongTypesIgnored(t *testing.T) {
	form := NewFormInputFromMap(decode(t, `{
		"name": 42,
		"target_job": "Engineer",
		"industry": null,
		"work_experience": 7,
		"skills": {"name": "Go"},
		"education": [1, true]
	}`))

	assert.Equal(t, "", form.Name)
	assert.Equal(t, "Engineer", form.TargetJob)
	assert.Equal(t, "", form.Industry)
	assert.Empty(t, form.Experience)
	assert.Empty(t, form.ExperienceText)
	assert.Empty(t, form.Skills)
	assert.Empty(t, form.SkillsText)
	assert.Empty(t, form.Education)
	assert.Empty(t, form.EducationText)
}

func TestNewFormInputFromMap_Nil(t *testing.T) {
	assert.Equal(t, model.FormInput{}, NewFormInputFromMap(nil))
}

func TestFormPayload(t *testing.T) {
	p := formPayload(model.FormInput{Name: "A", SkillsText: "Go", Skills: []model.SkillInput{{Name: "Rust"}}, ExperienceText: "Acme"})
	assert.Equal(t, []model.SkillInput{{Name: "Rust"}}, p["skills"])
	assert.Equal(t, "Acme", p["work_experience"])
	assert.NotContains(t, p, "education")
	assert.Equal(t, "A", p["name"])
}
