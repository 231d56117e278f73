package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/synth"
	ai "resume-builder/pkg/ai"

	"golang.org/x/sync/errgroup"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type JobsRepo interface {
	Save(ctx context.Context, j *domain.ExportJob) error
}

// Where a generated resume came from.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Result is the outcome of Generate. Labels always holds every section
// heading, translated when the form asked for another language and the
// translation succeeded.
type Result struct {
	Resume   model.Resume `json:"resume"`
	Source   string       `json:"source"`
	Labels   model.Labels `json:"labels"`
	Warnings []string     `json:"warnings,omitempty"`
}

type Processor struct {
	synth          *synth.Synthesizer
	aiClient       *ai.Client
	renderer       Renderer
	repo           JobsRepo
	renderAttempts int
	renderBackoff  time.Duration
}

type Option func(*Processor)

// WithAI enables AI generation. Without it Generate always returns the
// deterministic resume.
func WithAI(c *ai.Client) Option {
	return func(p *Processor) { p.aiClient = c }
}

func WithSynthesizer(s *synth.Synthesizer) Option {
	return func(p *Processor) {
		if s != nil {
			p.synth = s
		}
	}
}

// WithRenderer enables PDF export.
func WithRenderer(r Renderer) Option {
	return func(p *Processor) { p.renderer = r }
}

// WithJobsRepo records every export in repo.
func WithJobsRepo(repo JobsRepo) Option {
	return func(p *Processor) { p.repo = repo }
}

// WithRenderRetry sets how many times PDF rendering is attempted and the
// base delay between attempts, doubled after each failure.
func WithRenderRetry(attempts int, backoff time.Duration) Option {
	return func(p *Processor) {
		if attempts > 0 {
			p.renderAttempts = attempts
		}
		if backoff > 0 {
			p.renderBackoff = backoff
		}
	}
}

func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		synth:          synth.New(),
		renderAttempts: 3,
		renderBackoff:  time.Second,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// SuggestSkills ranks catalog skills the candidate does not list yet.
func (p *Processor) SuggestSkills(jobTitle, industry string, existing []string) []model.SuggestedSkill {
	return p.synth.SuggestSkills(jobTitle, industry, existing)
}

// Generate builds a resume for form. With an AI client the model's resume is
// used when it validates, section by section repairs are attempted when it
// does not, and any unrecoverable AI failure yields the deterministic resume.
// Only a cancelled context is returned as an error.
func (p *Processor) Generate(ctx context.Context, form model.FormInput) (*Result, error) {
	fallback := p.synth.Synthesize(form)
	res := &Result{Resume: fallback, Source: SourceFallback, Labels: model.DefaultLabels()}

	if p.aiClient == nil {
		return res, nil
	}

	client := p.aiClient.WithLanguage(strings.TrimSpace(form.Language))
	payload := formPayload(form)

	var (
		resumeMap map[string]interface{}
		labels    map[string]string
	)

	// label translation failing must not discard the resume, and the other
	// way round, so the group does not cancel on error
	var g errgroup.Group
	g.Go(func() error {
		out, err := client.FormatResume(ctx, payload)
		if err != nil {
			return fmt.Errorf("format resume: %w", err)
		}
		resumeMap = out
		return nil
	})
	if needsTranslation(client.Language()) {
		g.Go(func() error {
			out, err := client.FormatLabels(ctx)
			if err != nil {
				slog.Warn("processor: label translation failed", "language", client.Language(), "error", err)
				return nil
			}
			labels = out
			return nil
		})
	}
	err := g.Wait()

	res.Labels = model.DefaultLabels().Merge(labels)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		slog.Warn("processor: ai generation failed, using fallback", "error", err)
		res.Warnings = append(res.Warnings, "AI generation unavailable; resume built from form data")
		return res, nil
	}

	resume, warnings, err := p.assemble(ctx, client, form, payload, resumeMap, fallback)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		slog.Warn("processor: ai resume rejected, using fallback", "error", err)
		res.Warnings = append(res.Warnings, "AI output did not match the resume schema; resume built from form data")
		return res, nil
	}

	res.Resume = resume
	res.Source = SourceAI
	res.Warnings = append(res.Warnings, warnings...)
	slog.Info("processor: resume generated", "source", res.Source, "warnings", len(res.Warnings))
	return res, nil
}

// assemble checks the AI resume stage by stage, repairs what it can and
// validates the result against the schema.
func (p *Processor) assemble(ctx context.Context, client *ai.Client, form model.FormInput, payload, resumeMap map[string]interface{}, fallback model.Resume) (model.Resume, []string, error) {
	fallbackMap, err := toMap(fallback)
	if err != nil {
		return model.Resume{}, nil, err
	}

	var warnings []string
	for _, stage := range Stages() {
		validation := stage.Validate(resumeMap)
		if validation.Valid {
			continue
		}
		if err := enrichStage(ctx, client, stage, payload, resumeMap, validation); err != nil {
			if ctx.Err() != nil {
				return model.Resume{}, nil, ctx.Err()
			}
			slog.Warn("processor: stage replaced from fallback", "stage", stage.Name, "error", err)
			resumeMap[stage.Name] = fallbackMap[stage.Name]
			warnings = append(warnings, fmt.Sprintf("%s section was generated from form data", stage.Name))
		}
	}

	for _, key := range []string{"education", "projects"} {
		v, present := resumeMap[key]
		if !present || v == nil {
			resumeMap[key] = fallbackMap[key]
			continue
		}
		if _, ok := v.([]interface{}); !ok {
			resumeMap[key] = fallbackMap[key]
			warnings = append(warnings, fmt.Sprintf("%s section was generated from form data", key))
		}
	}

	// suggestions are always recomputed from the final skills
	delete(resumeMap, "extra_skills_suggested")

	if err := model.ValidateMap(resumeMap); err != nil {
		return model.Resume{}, nil, fmt.Errorf("ai response validation failed: %w", err)
	}

	resume, err := fromMap(resumeMap)
	if err != nil {
		return model.Resume{}, nil, err
	}
	normalize(&resume)
	applyContactOverrides(&resume, form)

	title := strings.TrimSpace(form.TargetJob)
	if title == "" {
		title = strings.TrimSpace(form.CurrentTitle)
	}
	resume.ExtraSkillsSuggested = p.synth.SuggestSkills(title, form.Industry, resume.Skills.All())

	return resume, warnings, nil
}

// applyContactOverrides puts the details the candidate typed in over whatever
// the model wrote.
func applyContactOverrides(r *model.Resume, form model.FormInput) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&r.Header.Name, form.Name)
	set(&r.Header.Contact.Email, form.Email)
	set(&r.Header.Contact.Phone, form.Phone)
	set(&r.Header.Contact.Location, form.Location)
	set(&r.Header.Contact.LinkedIn, form.LinkedIn)
}

// normalize replaces nil slices so the resume always serialises with arrays.
func normalize(r *model.Resume) {
	if r.Experience == nil {
		r.Experience = []model.ExperienceEntry{}
	}
	for i := range r.Experience {
		if r.Experience[i].Bullets == nil {
			r.Experience[i].Bullets = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []model.EducationEntry{}
	}
	if r.Projects == nil {
		r.Projects = []model.ProjectEntry{}
	}
	for i := range r.Projects {
		if r.Projects[i].TechStack == nil {
			r.Projects[i].TechStack = []string{}
		}
	}
	if r.Skills.Technical == nil {
		r.Skills.Technical = []string{}
	}
	if r.Skills.Soft == nil {
		r.Skills.Soft = []string{}
	}
	if r.Skills.Tools == nil {
		r.Skills.Tools = []string{}
	}
	if r.ExtraSkillsSuggested == nil {
		r.ExtraSkillsSuggested = []model.SuggestedSkill{}
	}
}

func needsTranslation(language string) bool {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "", "en", "english":
		return false
	}
	return true
}

func toMap(r model.Resume) (map[string]interface{}, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromMap(m map[string]interface{}) (model.Resume, error) {
	var r model.Resume
	b, err := json.Marshal(m)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(b, &r); err != nil {
		return r, fmt.Errorf("decode ai resume: %w", err)
	}
	return r, nil
}
