package formatters

import (
	"context"
	"fmt"
	"log/slog"
)

// Sections a SectionFormatter can regenerate, with the shape the model must
// return for each.
var sectionShapes = map[string]string{
	"header":     `{"header": {"name": string, "title": string, "contact": {"email": string, "phone": string, "location": string, "linkedin": string}}}`,
	"summary":    `{"summary": string (2-4 sentences)}`,
	"experience": `{"experience": [{"company": string, "title": string, "start": string, "end": string, "location": string, "bullets": [string, 3-5 items]}]}`,
	"skills":     `{"skills": {"technical": [string], "soft": [string], "tools": [string]}}`,
}

// SectionFormatter regenerates a single resume section that failed
// validation, given the candidate payload and the partial resume so far.
type SectionFormatter struct {
	completer Completer
	language  string
}

func NewSectionFormatter(c Completer, language string) *SectionFormatter {
	return &SectionFormatter{completer: c, language: language}
}

func (sf *SectionFormatter) Format(ctx context.Context, section string, payload map[string]interface{}) (map[string]interface{}, error) {
	shape, ok := sectionShapes[section]
	if !ok {
		return nil, fmt.Errorf("unknown resume section %q", section)
	}

	instr := fmt.Sprintf("Return ONLY a single JSON object with the single key '%s' shaped exactly as:\n%s\n"+
		"Base it on 'payload.form' and stay consistent with 'payload.resume'. Do NOT include any extra text.",
		section, shape)
	if lang := languageOrEnglish(sf.language); lang != "English" {
		instr += fmt.Sprintf("\nWrite every text value in %s.", lang)
	}

	userCtx := map[string]interface{}{"payload": payload, "instructions": instr}
	prompt := "Regenerate resume section " + section + ":\n" + mustMarshal(userCtx)

	slog.Debug("ai.client: FormatSection", "section", section, "prompt_len", len(prompt))

	output, err := sf.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := DecodeObject(output, &out); err != nil {
		return nil, fmt.Errorf("FormatSection %s: %w", section, err)
	}
	if _, ok := out[section]; !ok {
		return nil, fmt.Errorf("FormatSection %s: reply has no %q key", section, section)
	}
	sanitizeResume(out)
	return out, nil
}
