package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"resume-builder/internal/model"
	"resume-builder/internal/synth"
	"resume-builder/internal/usecase"
)

const (
	promptGenerate  = "Generate resume:"
	promptSection   = "Regenerate resume section "
	promptTranslate = "Translate UI labels to "
)

type mockChatRequest struct {
	Agent string `json:"agent"`
	Input string `json:"input"`
}

type mockChatResponse struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

func newMockAICmd() *cobra.Command {
	var (
		addr  string
		years int
	)

	cmd := &cobra.Command{
		Use:   "mock-ai",
		Short: "Serve a stand-in ai-service backed by the offline synthesizer",
		Long: "Serve POST /v1/chat with the ai-service wire format. Resumes and sections are built by the offline synthesizer " +
			"and labels are returned in English. Point AI_SERVICE_URL at it to run the server without a model.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := newMockAIApp(synth.New(synth.WithYearsOfExperience(years)))

			go func() {
				<-cmd.Context().Done()
				_ = app.Shutdown()
			}()

			slog.Info("mock-ai: listening", "addr", addr)
			return app.Listen(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8000", "Listen address")
	cmd.Flags().IntVar(&years, "years", synth.DefaultYearsOfExperience, "Years of experience quoted by generated summaries")
	return cmd
}

func newMockAIApp(s *synth.Synthesizer) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/v1/chat", func(c *fiber.Ctx) error {
		var req mockChatRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
		output, err := mockReply(s, req.Input)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(mockChatResponse{Agent: "mock", Output: output})
	})
	return app
}

// mockReply answers the three prompt kinds the ai client sends.
func mockReply(s *synth.Synthesizer, input string) (string, error) {
	switch {
	case strings.HasPrefix(input, promptGenerate):
		resume, err := synthesizeFromPrompt(s, input)
		if err != nil {
			return "", err
		}
		return marshalString(resume)

	case strings.HasPrefix(input, promptSection):
		section := strings.TrimSuffix(firstLine(input)[len(promptSection):], ":")
		resume, err := synthesizeFromPrompt(s, input)
		if err != nil {
			return "", err
		}
		raw, err := json.Marshal(resume)
		if err != nil {
			return "", err
		}
		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err != nil {
			return "", err
		}
		value, ok := m[section]
		if !ok {
			return "", fmt.Errorf("unknown section %q", section)
		}
		return marshalString(map[string]interface{}{section: value})

	case strings.HasPrefix(input, promptTranslate):
		return marshalString(model.DefaultLabels())
	}
	return "", fmt.Errorf("unrecognised prompt")
}

// synthesizeFromPrompt decodes the JSON body after the prompt's first line.
// Resume prompts carry the form as payload; section prompts carry it as
// payload.form.
func synthesizeFromPrompt(s *synth.Synthesizer, input string) (model.Resume, error) {
	_, body, _ := strings.Cut(input, "\n")
	var envelope struct {
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return model.Resume{}, fmt.Errorf("prompt body is not JSON: %w", err)
	}
	form := envelope.Payload
	if inner, ok := form["form"].(map[string]interface{}); ok {
		form = inner
	}
	if contact, ok := form["contact"].(map[string]interface{}); ok {
		for k, v := range contact {
			if _, set := form[k]; !set {
				form[k] = v
			}
		}
	}
	return s.Synthesize(usecase.NewFormInputFromMap(form)), nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func marshalString(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
