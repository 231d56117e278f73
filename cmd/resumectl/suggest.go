package main

import (
	"github.com/spf13/cobra"

	"resume-builder/internal/synth"
)

func newSuggestCmd() *cobra.Command {
	var (
		title    string
		industry string
		skills   []string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest up to five skills for a job title",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd, "", map[string]interface{}{
				"suggestions": synth.New().SuggestSkills(title, industry, skills),
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Job title")
	cmd.Flags().StringVar(&industry, "industry", "", "Industry")
	cmd.Flags().StringSliceVarP(&skills, "skills", "s", nil, "Skills the candidate already lists (comma-separated)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
