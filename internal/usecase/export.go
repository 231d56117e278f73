package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/extract"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/google/uuid"
)

// ErrNoRenderer is returned by ExportPDF when no PDF renderer is configured.
var ErrNoRenderer = errors.New("pdf rendering is not configured")

// ErrJobsDisabled is returned by Job when exports are not being recorded.
var ErrJobsDisabled = errors.New("export job log is disabled")

const maxRecommendedPages = 2

// JobReader looks up recorded exports.
type JobReader interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error)
}

// Export is a rendered resume ready for download.
type Export struct {
	Data        []byte
	ContentType string
	FileName    string
	JobID       uuid.UUID
	Warnings    []string
}

// ExportHTML renders resume as a standalone HTML page.
func (p *Processor) ExportHTML(ctx context.Context, resume model.Resume, labels model.Labels) (*Export, error) {
	html, err := render.HTML(resume, labels)
	if err != nil {
		return nil, err
	}
	exp := &Export{
		Data:        []byte(html),
		ContentType: "text/html; charset=utf-8",
		FileName:    render.FileName(resume, "html"),
	}
	exp.JobID = p.recordJob(ctx, domain.FormatHTML, resume, domain.JobStatusCompleted, map[string]interface{}{"bytes": len(html)})
	return exp, nil
}

// ExportPDF renders resume to PDF through the configured renderer, retrying
// failed or malformed renders with exponential backoff.
func (p *Processor) ExportPDF(ctx context.Context, resume model.Resume, labels model.Labels) (*Export, error) {
	if p.renderer == nil {
		return nil, ErrNoRenderer
	}

	html, err := render.HTML(resume, labels)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := p.renderPDF(ctx, html)
	if err != nil {
		p.recordJob(ctx, domain.FormatPDF, resume, domain.JobStatusFailed, map[string]interface{}{
			"pdf_render_error": err.Error(),
		})
		return nil, err
	}

	exp := &Export{
		Data:        pdfBytes,
		ContentType: "application/pdf",
		FileName:    render.FileName(resume, "pdf"),
	}
	meta := map[string]interface{}{"bytes": len(pdfBytes)}
	if pages, err := extract.PageCount(pdfBytes); err != nil {
		slog.Warn("processor: could not count pdf pages", "error", err)
	} else {
		meta["pages"] = pages
		if pages > maxRecommendedPages {
			exp.Warnings = append(exp.Warnings, fmt.Sprintf("resume runs to %d pages; %d or fewer is recommended", pages, maxRecommendedPages))
		}
	}
	exp.JobID = p.recordJob(ctx, domain.FormatPDF, resume, domain.JobStatusCompleted, meta)
	return exp, nil
}

func (p *Processor) renderPDF(ctx context.Context, html string) ([]byte, error) {
	var (
		pdfBytes  []byte
		renderErr error
	)
	for i := 0; i < p.renderAttempts; i++ {
		pdfBytes, renderErr = p.renderer.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			// validate basic PDF signature
			if bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
				return pdfBytes, nil
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		slog.Warn("processor: render attempt failed", "attempt", i+1, "error", renderErr)
		if i < p.renderAttempts-1 {
			select {
			case <-time.After(p.renderBackoff * time.Duration(1<<i)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, &render.RenderError{
		Message: fmt.Sprintf("rendering failed after %d attempts", p.renderAttempts),
		Cause:   renderErr,
	}
}

// ExportDOCX renders resume as a Word document.
func (p *Processor) ExportDOCX(ctx context.Context, resume model.Resume, labels model.Labels) (*Export, error) {
	data, err := render.DOCX(resume, labels)
	if err != nil {
		return nil, err
	}
	exp := &Export{
		Data:        data,
		ContentType: render.DocxContentType,
		FileName:    render.FileName(resume, "docx"),
	}
	exp.JobID = p.recordJob(ctx, domain.FormatDOCX, resume, domain.JobStatusCompleted, map[string]interface{}{"bytes": len(data)})
	return exp, nil
}

// Job returns a recorded export.
func (p *Processor) Job(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	reader, ok := p.repo.(JobReader)
	if !ok || !p.recording() {
		return nil, ErrJobsDisabled
	}
	return reader.Get(ctx, id)
}

// recording reports whether exports are persisted. Repositories may opt out
// at runtime through an Enabled method.
func (p *Processor) recording() bool {
	if p.repo == nil {
		return false
	}
	if e, ok := p.repo.(interface{ Enabled() bool }); ok {
		return e.Enabled()
	}
	return true
}

// recordJob saves an export record (best-effort) and returns its id, or
// uuid.Nil when nothing was recorded.
func (p *Processor) recordJob(ctx context.Context, format string, resume model.Resume, status string, meta map[string]interface{}) uuid.UUID {
	if !p.recording() {
		return uuid.Nil
	}
	job := domain.NewExportJob(format, resume.Header.Name, resume.Header.Title)
	job.Status = status
	for k, v := range meta {
		job.Metadata[k] = v
	}
	if err := p.repo.Save(ctx, job); err != nil {
		slog.Warn("processor: failed to save export job", "format", format, "error", err)
		return uuid.Nil
	}
	return job.ID
}
