package usecase

import (
	"context"
	"fmt"
	"log/slog"

	ai "resume-builder/pkg/ai"
)

// StageValidationResult holds validation state for a stage
type StageValidationResult struct {
	Valid   bool
	Missing []string
}

func (r *StageValidationResult) miss(field string) {
	r.Valid = false
	r.Missing = append(r.Missing, field)
}

// Stage is one section of the AI resume that is checked, and repaired when
// needed, independently of the others.
type Stage struct {
	Name     string
	Validate func(resumeMap map[string]interface{}) *StageValidationResult
}

// Stages returns the section stages in the order they are checked.
func Stages() []Stage {
	return []Stage{
		{Name: "header", Validate: HeaderValidator},
		{Name: "summary", Validate: SummaryValidator},
		{Name: "experience", Validate: ExperienceValidator},
		{Name: "skills", Validate: SkillsValidator},
	}
}

// HeaderValidator validates header.name, header.title and header.contact
func HeaderValidator(resumeMap map[string]interface{}) *StageValidationResult {
	result := &StageValidationResult{Valid: true}

	header, ok := resumeMap["header"].(map[string]interface{})
	if !ok {
		result.miss("header")
		return result
	}
	if name, ok := header["name"].(string); !ok || name == "" {
		result.miss("header.name")
	}
	if title, ok := header["title"].(string); !ok || title == "" {
		result.miss("header.title")
	}
	if contact, ok := header["contact"]; ok {
		if _, isMap := contact.(map[string]interface{}); !isMap {
			result.miss("header.contact")
		}
	}
	return result
}

// SummaryValidator validates that summary is a non-empty string
func SummaryValidator(resumeMap map[string]interface{}) *StageValidationResult {
	result := &StageValidationResult{Valid: true}
	if s, ok := resumeMap["summary"].(string); !ok || s == "" {
		result.miss("summary")
	}
	return result
}

// ExperienceValidator validates experience[] entries: company, title and a
// non-empty list of string bullets.
func ExperienceValidator(resumeMap map[string]interface{}) *StageValidationResult {
	result := &StageValidationResult{Valid: true}

	expArr, ok := resumeMap["experience"].([]interface{})
	if !ok || len(expArr) == 0 {
		result.miss("experience")
		return result
	}

	for i, exp := range expArr {
		expMap, ok := exp.(map[string]interface{})
		if !ok {
			result.miss(fmt.Sprintf("experience[%d]", i))
			continue
		}
		if company, ok := expMap["company"].(string); !ok || company == "" {
			result.miss(fmt.Sprintf("experience[%d].company", i))
		}
		if title, ok := expMap["title"].(string); !ok || title == "" {
			result.miss(fmt.Sprintf("experience[%d].title", i))
		}
		bullets, ok := expMap["bullets"].([]interface{})
		if !ok || len(bullets) == 0 {
			result.miss(fmt.Sprintf("experience[%d].bullets", i))
			continue
		}
		for _, b := range bullets {
			if _, ok := b.(string); !ok {
				result.miss(fmt.Sprintf("experience[%d].bullets", i))
				break
			}
		}
	}
	return result
}

// SkillsValidator validates skills.{technical,soft,tools}: each present bucket
// must be a list of strings and at least one skill must be listed overall.
func SkillsValidator(resumeMap map[string]interface{}) *StageValidationResult {
	result := &StageValidationResult{Valid: true}

	skills, ok := resumeMap["skills"].(map[string]interface{})
	if !ok {
		result.miss("skills")
		return result
	}

	total := 0
	for _, bucket := range []string{"technical", "soft", "tools"} {
		raw, present := skills[bucket]
		if !present {
			continue
		}
		arr, ok := raw.([]interface{})
		if !ok {
			result.miss("skills." + bucket)
			continue
		}
		for _, s := range arr {
			if _, ok := s.(string); !ok {
				result.miss("skills." + bucket)
				break
			}
		}
		total += len(arr)
	}
	if result.Valid && total == 0 {
		result.miss("skills (empty)")
	}
	return result
}

// enrichStage asks the AI for a fresh copy of one section and merges it into
// resumeMap, returning an error when the section is still invalid.
func enrichStage(ctx context.Context, aiClient *ai.Client, stage Stage, payload, resumeMap map[string]interface{}, validation *StageValidationResult) error {
	if validation.Valid {
		return nil
	}

	slog.Info("processor: enriching stage", "stage", stage.Name, "missing", validation.Missing)

	out, err := aiClient.EnrichSection(ctx, stage.Name, map[string]interface{}{
		"form":   payload,
		"resume": resumeMap,
	})
	if err != nil {
		return fmt.Errorf("enrich %s: %w", stage.Name, err)
	}
	resumeMap[stage.Name] = out[stage.Name]

	if revalidation := stage.Validate(resumeMap); !revalidation.Valid {
		return fmt.Errorf("enrich %s: still invalid after enrichment: %v", stage.Name, revalidation.Missing)
	}
	return nil
}
