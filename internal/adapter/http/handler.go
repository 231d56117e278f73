package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/extract"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	processor *usecase.Processor
	validator *validator.Validate
}

func NewHandler(p *usecase.Processor) *Handler {
	return &Handler{processor: p, validator: validator.New()}
}

// GenerateResume builds a resume from the builder form.
func (h *Handler) GenerateResume(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil || body == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	form := usecase.NewFormInputFromMap(body)
	form.Name = strings.TrimSpace(form.Name)
	form.TargetJob = strings.TrimSpace(form.TargetJob)
	if err := h.validator.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": extractValidationErrors(err)})
	}

	res, err := h.processor.Generate(c.UserContext(), form)
	if err != nil {
		slog.Error("http: generate failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Failed to generate resume"})
	}

	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return c.JSON(fiber.Map{
		"resume":   res.Resume,
		"source":   res.Source,
		"labels":   res.Labels,
		"warnings": warnings,
		"message":  "Resume generated successfully",
	})
}

type suggestReq struct {
	JobTitle       string   `json:"job_title"`
	Industry       string   `json:"industry"`
	ExistingSkills []string `json:"existing_skills"`
}

// SuggestSkills ranks skills worth adding for a job title.
func (h *Handler) SuggestSkills(c *fiber.Ctx) error {
	var req suggestReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return c.JSON(fiber.Map{
		"suggestions": h.processor.SuggestSkills(req.JobTitle, req.Industry, req.ExistingSkills),
	})
}

type exportReq struct {
	ResumeData *model.Resume      `json:"resumeData"`
	Labels     map[string]string `json:"labels"`
}

func (h *Handler) parseExport(c *fiber.Ctx) (*exportReq, error) {
	var req exportReq
	if err := c.BodyParser(&req); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.ResumeData == nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Resume data is required"})
	}
	return &req, nil
}

// GeneratePDF renders the resume to PDF, or with ?format=html returns the
// print-ready HTML page instead.
func (h *Handler) GeneratePDF(c *fiber.Ctx) error {
	req, err := h.parseExport(c)
	if req == nil {
		return err
	}
	labels := model.DefaultLabels().Merge(req.Labels)

	if strings.EqualFold(c.Query("format"), "html") {
		exp, err := h.processor.ExportHTML(c.UserContext(), *req.ResumeData, labels)
		if err != nil {
			slog.Error("http: html export failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate HTML"})
		}
		return c.JSON(fiber.Map{"html": string(exp.Data), "success": true})
	}

	exp, err := h.processor.ExportPDF(c.UserContext(), *req.ResumeData, labels)
	if errors.Is(err, usecase.ErrNoRenderer) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "PDF rendering is not available"})
	}
	if err != nil {
		slog.Error("http: pdf export failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate PDF"})
	}
	return sendExport(c, exp)
}

// GenerateDOCX renders the resume as a Word document.
func (h *Handler) GenerateDOCX(c *fiber.Ctx) error {
	req, err := h.parseExport(c)
	if req == nil {
		return err
	}

	exp, err := h.processor.ExportDOCX(c.UserContext(), *req.ResumeData, model.DefaultLabels().Merge(req.Labels))
	if err != nil {
		slog.Error("http: docx export failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate DOCX"})
	}
	return sendExport(c, exp)
}

func sendExport(c *fiber.Ctx, exp *usecase.Export) error {
	c.Set(fiber.HeaderContentType, exp.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, exp.FileName))
	if exp.JobID != uuid.Nil {
		c.Set("X-Export-Job", exp.JobID.String())
	}
	for _, w := range exp.Warnings {
		c.Append("X-Resume-Warning", w)
	}
	return c.Send(exp.Data)
}

// ImportResume extracts text from an uploaded resume so the form can be
// prefilled.
func (h *Handler) ImportResume(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not open file"})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read file"})
	}

	mime := extract.DetectMime(fh.Header.Get(fiber.HeaderContentType), fh.Filename, data)
	text, err := extract.Text(mime, data)
	var unsupported *extract.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": unsupported.Error()})
	}
	if err != nil {
		slog.Warn("http: import failed", "mime", mime, "error", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "could not extract text from file"})
	}
	return c.JSON(fiber.Map{"text": text, "mime": mime})
}

// GetJob returns a recorded export.
func (h *Handler) GetJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid job id"})
	}
	job, err := h.processor.Job(c.UserContext(), id)
	if errors.Is(err, usecase.ErrJobsDisabled) || errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	if err != nil {
		slog.Error("http: job lookup failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "job lookup failed"})
	}
	return c.JSON(job)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
