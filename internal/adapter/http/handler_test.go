package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/extract/pdftest"
	"resume-builder/internal/model"
	"resume-builder/internal/synth"
	"resume-builder/internal/usecase"
)

type stubRenderer struct{ pdf []byte }

func (s stubRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return s.pdf, nil
}

type memJobs struct{ jobs map[uuid.UUID]*domain.ExportJob }

func (m *memJobs) Save(ctx context.Context, j *domain.ExportJob) error {
	m.jobs[j.ID] = j
	return nil
}

func (m *memJobs) Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	if j, ok := m.jobs[id]; ok {
		return j, nil
	}
	return nil, errors.New("missing")
}

func newTestApp(opts ...usecase.Option) *fiber.App {
	return NewApp(NewHandler(usecase.NewProcessor(opts...)), AppOptions{})
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestGenerateResume(t *testing.T) {
	app := newTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/generate-resume", map[string]interface{}{
		"name":       "Jane Doe",
		"target_job": "Senior Software Engineer",
		"skills":     "Python, Leadership",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Resume   model.Resume      `json:"resume"`
		Source   string            `json:"source"`
		Labels   map[string]string `json:"labels"`
		Warnings []string          `json:"warnings"`
		Message  string            `json:"message"`
	}
	readJSON(t, resp, &out)
	assert.Equal(t, "Jane Doe", out.Resume.Header.Name)
	assert.Equal(t, []string{"Python"}, out.Resume.Skills.Technical)
	assert.Equal(t, usecase.SourceFallback, out.Source)
	assert.Equal(t, "Professional Experience", out.Labels[model.LabelExperience])
	assert.NotNil(t, out.Warnings)
	assert.Equal(t, "Resume generated successfully", out.Message)
}

func TestGenerateResume_Validation(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/generate-resume", map[string]interface{}{"name": "Jane"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out map[string]string
	readJSON(t, resp, &out)
	assert.Equal(t, "validation error: TargetJob - required", out["error"])

	resp = doJSON(t, app, http.MethodPost, "/api/generate-resume", map[string]interface{}{"name": "  ", "target_job": "X"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/generate-resume", []string{"not", "an", "object"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSuggestSkills(t *testing.T) {
	app := newTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/suggest-skills", map[string]interface{}{
		"job_title":       "Software Engineer",
		"existing_skills": []string{"system design"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Suggestions []model.SuggestedSkill `json:"suggestions"`
	}
	readJSON(t, resp, &out)
	require.NotEmpty(t, out.Suggestions)
	assert.LessOrEqual(t, len(out.Suggestions), 5)
	for _, s := range out.Suggestions {
		assert.NotEqual(t, "System Design", s.Name)
	}
}

func exportBody() map[string]interface{} {
	return map[string]interface{}{
		"resumeData": synth.Synthesize(model.FormInput{Name: "Jane Doe", TargetJob: "Engineer"}),
		"labels":     map[string]string{model.LabelSummary: "Resumen Profesional"},
	}
}

func TestGeneratePDF_HTMLFormat(t *testing.T) {
	app := newTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/generate-pdf?format=html", exportBody())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		HTML    string `json:"html"`
		Success bool   `json:"success"`
	}
	readJSON(t, resp, &out)
	assert.True(t, out.Success)
	assert.Contains(t, out.HTML, "Resumen Profesional")
	assert.Contains(t, out.HTML, "<h1>Jane Doe</h1>")
}

func TestGeneratePDF(t *testing.T) {
	jobs := &memJobs{jobs: map[uuid.UUID]*domain.ExportJob{}}
	app := newTestApp(usecase.WithRenderer(stubRenderer{pdf: pdftest.Build("Jane")}), usecase.WithJobsRepo(jobs))

	resp := doJSON(t, app, http.MethodPost, "/api/generate-pdf", exportBody())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Jane_Doe_Resume.pdf"`, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	jobID := resp.Header.Get("X-Export-Job")
	require.NotEmpty(t, jobID)

	resp = doJSON(t, app, http.MethodGet, "/api/jobs/"+jobID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var job domain.ExportJob
	readJSON(t, resp, &job)
	assert.Equal(t, domain.FormatPDF, job.Format)
	assert.Equal(t, "Jane Doe", job.CandidateName)
}

func TestGeneratePDF_NoRenderer(t *testing.T) {
	resp := doJSON(t, newTestApp(), http.MethodPost, "/api/generate-pdf", exportBody())
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestExport_MissingResumeData(t *testing.T) {
	app := newTestApp()
	for _, path := range []string{"/api/generate-pdf", "/api/generate-docx"} {
		resp := doJSON(t, app, http.MethodPost, path, map[string]interface{}{"labels": map[string]string{}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		var out map[string]string
		readJSON(t, resp, &out)
		assert.Equal(t, "Resume data is required", out["error"])
	}
}

func TestGenerateDOCX(t *testing.T) {
	resp := doJSON(t, newTestApp(), http.MethodPost, "/api/generate-docx", exportBody())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Jane_Doe_Resume.docx"`, resp.Header.Get("Content-Disposition"))
	assert.Empty(t, resp.Header.Get("X-Export-Job"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(body[:2]))
}

func upload(t *testing.T, app *fiber.App, name, contentType string, data []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + name + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestImportResume(t *testing.T) {
	app := newTestApp()

	resp := upload(t, app, "cv.txt", "text/plain", []byte("Jane Doe\nEngineer"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]string
	readJSON(t, resp, &out)
	assert.Equal(t, "Jane Doe\nEngineer", out["text"])
	assert.Equal(t, "text/plain", out["mime"])

	resp = upload(t, app, "cv.pdf", "application/pdf", pdftest.Build("Jane Doe"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	readJSON(t, resp, &out)
	assert.Contains(t, out["text"], "Jane")

	resp = upload(t, app, "photo.png", "image/png", []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a})
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	resp = upload(t, app, "cv.pdf", "application/pdf", []byte("broken"))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestImportResume_NoFile(t *testing.T) {
	resp := doJSON(t, newTestApp(), http.MethodPost, "/api/import", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetJob(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/jobs/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// job log disabled
	resp = doJSON(t, app, http.MethodGet, "/api/jobs/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	resp := doJSON(t, newTestApp(), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	app := NewApp(NewHandler(usecase.NewProcessor()), AppOptions{RateLimitPerMinute: 2})
	body := map[string]interface{}{"job_title": "Developer"}
	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodPost, "/api/suggest-skills", body).StatusCode)
	}
	assert.Equal(t, http.StatusTooManyRequests, doJSON(t, app, http.MethodPost, "/api/suggest-skills", body).StatusCode)
	// health checks are not limited
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/healthz", nil).StatusCode)
}
