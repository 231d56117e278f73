package formatters

import (
	"context"
	"fmt"
	"log/slog"

	"resume-builder/internal/model"
)

type ResumeFormatter struct {
	completer Completer
	language  string
}

func NewResumeFormatter(c Completer, language string) *ResumeFormatter {
	return &ResumeFormatter{completer: c, language: language}
}

// Format asks the model for a complete resume built from payload (the form
// fields) and returns the decoded JSON object. The object is not validated
// here; callers run it through the resume schema.
func (rf *ResumeFormatter) Format(ctx context.Context, payload map[string]interface{}) (map[string]interface{}, error) {
	instr := "You are an expert resume writer. Build a complete, ATS-friendly resume for the candidate described in 'payload'.\n\n" +
		"Return ONLY a single JSON object that conforms to the JSON-SCHEMA below. Do NOT include explanatory text, backticks, or code fences.\n\n" +
		"RULES:\n" +
		"- header.name MUST be the candidate name exactly as given\n" +
		"- header.title MUST be the target job\n" +
		"- experience: one entry per role, 3-5 achievement bullets each, starting with an action verb\n" +
		"- skills: split into technical, soft and tools\n" +
		"- extra_skills_suggested: at most 5 skills the candidate does not list, confidence between 0 and 1\n" +
		"- Do NOT invent employers, degrees or dates that are not implied by the payload\n"
	if lang := languageOrEnglish(rf.language); lang != "English" {
		instr += fmt.Sprintf("\nLANGUAGE: write every text value in %s. Keep the JSON keys in English.\n", lang)
	}
	instr += "\nJSON-SCHEMA:\n" + model.Schema()

	userCtx := map[string]interface{}{"payload": payload, "instructions": instr}
	prompt := "Generate resume:\n" + mustMarshal(userCtx)

	slog.Debug("ai.client: FormatResume", "language", rf.language, "prompt_len", len(prompt))

	output, err := rf.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := DecodeObject(output, &out); err != nil {
		return nil, fmt.Errorf("FormatResume: %w", err)
	}
	sanitizeResume(out)
	return out, nil
}

// sanitizeResume coerces common near-misses in place: a contact given as a
// bare string becomes an email, and a summary given as a list is joined.
func sanitizeResume(m map[string]interface{}) {
	if header, ok := m["header"].(map[string]interface{}); ok {
		if contactStr, ok := header["contact"].(string); ok && contactStr != "" {
			header["contact"] = map[string]interface{}{"email": contactStr}
		}
	}
	if parts, ok := m["summary"].([]interface{}); ok {
		s := ""
		for i, p := range parts {
			if i > 0 {
				s += " "
			}
			s += fmt.Sprintf("%v", p)
		}
		m["summary"] = s
	}
}

func languageOrEnglish(lang string) string {
	if lang == "" {
		return "English"
	}
	return lang
}
