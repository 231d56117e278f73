package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"resume-builder/internal/config"
	"resume-builder/internal/synth"
	"resume-builder/internal/usecase"
)

func newSynthesizeCmd() *cobra.Command {
	var (
		inFile  string
		outFile string
		useAI   bool
		years   int
	)

	cmd := &cobra.Command{
		Use:   "synthesize",
		Short: "Build a resume from builder form JSON",
		Long:  "Build a complete resume from builder form JSON. The resume is synthesized offline unless --ai is set, in which case the configured AI provider is tried first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(cmd, inFile)
			if err != nil {
				return err
			}
			var body map[string]interface{}
			if err := json.Unmarshal(data, &body); err != nil {
				return fmt.Errorf("failed to parse form JSON: %w", err)
			}
			form := usecase.NewFormInputFromMap(body)

			opts := []usecase.Option{
				usecase.WithSynthesizer(synth.New(synth.WithYearsOfExperience(years))),
			}
			if useAI {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				client, closeAI, err := cfg.AIClient(cmd.Context())
				if err != nil {
					return err
				}
				defer closeAI()
				if client != nil {
					opts = append(opts, usecase.WithAI(client))
				}
			}

			res, err := usecase.NewProcessor(opts...).Generate(cmd.Context(), form)
			if err != nil {
				return fmt.Errorf("failed to generate resume: %w", err)
			}
			return writeJSON(cmd, outFile, res)
		},
	}

	cmd.Flags().StringVarP(&inFile, "in", "i", "-", "Path to form JSON file (- for stdin)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Path to output JSON file (default stdout)")
	cmd.Flags().BoolVar(&useAI, "ai", false, "Use the AI provider from the environment (AI_PROVIDER)")
	cmd.Flags().IntVar(&years, "years", synth.DefaultYearsOfExperience, "Years of experience quoted by the generated summary")
	return cmd
}
