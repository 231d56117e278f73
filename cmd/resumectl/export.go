package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

func newExportCmd() *cobra.Command {
	var (
		inFile     string
		outFile    string
		format     string
		chromePath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a resume as HTML, PDF or DOCX",
		Long:  "Export a resume as HTML, PDF or DOCX. The input is either a resume object or the output of 'resumectl synthesize', whose translated labels are then reused.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(cmd, inFile)
			if err != nil {
				return err
			}
			resume, labels, err := decodeExportInput(data)
			if err != nil {
				return err
			}

			var exp *usecase.Export
			switch format {
			case domain.FormatHTML:
				exp, err = usecase.NewProcessor().ExportHTML(cmd.Context(), resume, labels)
			case domain.FormatDOCX:
				exp, err = usecase.NewProcessor().ExportDOCX(cmd.Context(), resume, labels)
			case domain.FormatPDF:
				p := usecase.NewProcessor(usecase.WithRenderer(infra.NewChromedpRenderer(chromePath, 60*time.Second)))
				exp, err = p.ExportPDF(cmd.Context(), resume, labels)
			default:
				return fmt.Errorf("unsupported format %q (want html, pdf or docx)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to export %s: %w", format, err)
			}

			if outFile == "" {
				outFile = exp.FileName
			}
			if err := os.WriteFile(outFile, exp.Data, 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			for _, w := range exp.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			fmt.Fprintln(cmd.OutOrStdout(), outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inFile, "in", "i", "-", "Path to resume JSON file (- for stdin)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Output path (default <Name>_Resume.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", domain.FormatPDF, "Output format: html, pdf or docx")
	cmd.Flags().StringVar(&chromePath, "chrome-path", os.Getenv("CHROME_PATH"), "Chrome executable used for PDF export")
	return cmd
}

// decodeExportInput accepts a bare resume or a generation result holding
// "resume" and "labels".
func decodeExportInput(data []byte) (model.Resume, model.Labels, error) {
	var wrapped struct {
		Resume *model.Resume      `json:"resume"`
		Labels map[string]string `json:"labels"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return model.Resume{}, nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if wrapped.Resume != nil {
		return *wrapped.Resume, model.DefaultLabels().Merge(wrapped.Labels), nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Resume{}, nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if err := model.ValidateMap(raw); err != nil {
		return model.Resume{}, nil, err
	}
	var r model.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return model.Resume{}, nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return r, model.DefaultLabels(), nil
}
