package formatters

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"resume-builder/internal/model"
)

type LabelsFormatter struct {
	completer Completer
	language  string
}

func NewLabelsFormatter(c Completer, language string) *LabelsFormatter {
	return &LabelsFormatter{completer: c, language: language}
}

// Format translates the resume section headings into the formatter's
// language. Only the keys of DefaultLabels are requested; callers merge the
// reply over the English defaults so a partial translation is still usable.
func (lf *LabelsFormatter) Format(ctx context.Context) (map[string]string, error) {
	defaults := GetDefaultLabels()
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var skeleton strings.Builder
	skeleton.WriteString("{\n")
	for i, k := range keys {
		fmt.Fprintf(&skeleton, "  %q: \"<translated %s>\"", k, defaults[k])
		if i < len(keys)-1 {
			skeleton.WriteString(",")
		}
		skeleton.WriteString("\n")
	}
	skeleton.WriteString("}")

	instr := fmt.Sprintf(`You are a professional resume label translator. Translate section headings to %s.

RULES:
1. Return ONLY valid JSON (no markdown, no code blocks, no explanation)
2. Translate VALUES to %s ONLY - do NOT change the KEY names
3. Each value must be a professional heading (1-5 words)
4. MUST include ALL %d keys in the output

REQUIRED OUTPUT FORMAT:
%s`, lf.language, lf.language, len(keys), skeleton.String())

	prompt := "Translate UI labels to " + lf.language + ":\n" + instr

	slog.Debug("ai.client: FormatLabels", "language", lf.language)

	output, err := lf.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var out map[string]string
	if err := DecodeObject(output, &out); err != nil {
		return nil, fmt.Errorf("FormatLabels: %w", err)
	}
	return out, nil
}

// GetDefaultLabels returns English labels as fallback
func GetDefaultLabels() map[string]string {
	return model.DefaultLabels()
}
