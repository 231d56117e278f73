package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nguyenthenguyen/docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func sampleResume() model.Resume {
	return model.Resume{
		Header: model.Header{
			Name:  "Jane Doe",
			Title: "Senior Software Engineer",
			Contact: model.Contact{
				Email:    "jane.doe@email.com",
				Phone:    "+1 (555) 123-4567",
				Location: "Austin, TX",
			},
		},
		Summary: "Results-driven engineer.",
		Experience: []model.ExperienceEntry{{
			Company:  "Acme <Corp>",
			Title:    "Backend Engineer",
			Start:    "2019",
			End:      "2022",
			Location: "Remote",
			Bullets:  []string{"Built the billing pipeline", "Cut costs by 20%"},
		}},
		Education: []model.EducationEntry{{Institution: "MIT", Degree: "BSc Computer Science", Year: "2018"}},
		Skills: model.Skills{
			Technical: []string{"Go", "Python"},
			Soft:      []string{"Leadership"},
			Tools:     []string{},
		},
		Projects: []model.ProjectEntry{{
			Name:        "resumectl",
			Description: "Resume CLI",
			TechStack:   []string{"Go", "Cobra"},
			Link:        "www.github.com/jane/resumectl",
		}},
		ExtraSkillsSuggested: []model.SuggestedSkill{{Name: "System Design", Confidence: 0.9}},
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML(sampleResume(), model.DefaultLabels())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, "<h1>Jane Doe</h1>")
	assert.Contains(t, html, "Professional Experience")
	assert.Contains(t, html, "Recommended Skills to Consider")
	assert.Contains(t, html, "<li>Built the billing pipeline</li>")
	assert.Contains(t, html, "width: 90%")
	assert.Contains(t, html, `<span class="pct">90%</span>`)
	// stylesheet is inlined
	assert.Contains(t, html, ".resume { max-width: 800px")
	// user text is escaped
	assert.Contains(t, html, "Acme &lt;Corp&gt;")
	assert.NotContains(t, html, "Acme <Corp>")
	// link label is the registrable domain
	assert.Contains(t, html, `href="https://www.github.com/jane/resumectl"`)
	assert.Contains(t, html, ">github.com</a>")
	// empty tools bucket renders no heading
	assert.NotContains(t, html, "Tools &amp; Platforms")
}

func TestHTML_TranslatedLabels(t *testing.T) {
	labels := model.DefaultLabels().Merge(map[string]string{model.LabelExperience: "Experiencia Profesional"})
	html, err := HTML(sampleResume(), labels)
	require.NoError(t, err)
	assert.Contains(t, html, "Experiencia Profesional")
	assert.Contains(t, html, "Professional Summary")
	assert.Contains(t, html, "<html>")
	assert.NotContains(t, html, `lang="en"`)
}

func TestDocumentLang(t *testing.T) {
	assert.Equal(t, "en", documentLang(nil))
	assert.Equal(t, "en", documentLang(model.DefaultLabels()))
	assert.Equal(t, "en", documentLang(model.Labels{model.LabelSkills: ""}))
	assert.Equal(t, "", documentLang(model.Labels{model.LabelSkills: "Compétences"}))
}

func TestHTML_NilLabelsAndEmptySections(t *testing.T) {
	r := model.Resume{Header: model.Header{Name: "A", Title: "B"}}
	html, err := HTML(r, nil)
	require.NoError(t, err)
	assert.NotContains(t, html, "<section>")
}

func TestProjectLink(t *testing.T) {
	cases := []struct{ in, href, label string }{
		{"", "", ""},
		{"https://github.com/x/y", "https://github.com/x/y", "github.com"},
		{"portfolio.example.co.uk/work", "https://portfolio.example.co.uk/work", "example.co.uk"},
		{"http://localhost:3000", "http://localhost:3000", "localhost"},
	}
	for _, c := range cases {
		href, label := projectLink(c.in)
		assert.Equal(t, c.href, href, c.in)
		assert.Equal(t, c.label, label, c.in)
	}
}

func TestDOCX(t *testing.T) {
	out, err := DOCX(sampleResume(), model.DefaultLabels())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "PK", string(out[:2]))

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	defer r.Close()
	content := r.Editable().GetContent()

	assert.NotContains(t, content, "{{p")
	assert.Contains(t, content, "Jane Doe")
	assert.Contains(t, content, "jane.doe@email.com | +1 (555) 123-4567 | Austin, TX")
	assert.Contains(t, content, "PROFESSIONAL EXPERIENCE")
	assert.Contains(t, content, "Remote | 2019 - 2022")
	assert.Contains(t, content, "• Built the billing pipeline")
	assert.Contains(t, content, "Technical Skills: ")
	assert.Contains(t, content, "Go, Python")
	assert.Contains(t, content, "System Design (90%)")
	assert.Contains(t, content, "Go, Cobra")
	assert.Contains(t, content, "Acme &lt;Corp&gt;")
}

func TestDOCX_PlaceholderLikeText(t *testing.T) {
	r := sampleResume()
	r.Summary = "Literal {{p0}} and {{p99}} tokens"
	out, err := DOCX(r, nil)
	require.NoError(t, err)

	d, err := docx.ReadDocxFromMemory(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	defer d.Close()
	content := d.Editable().GetContent()
	assert.Contains(t, content, "Jane Doe")
	assert.Contains(t, content, "Literal {{p0}} and {{p99}} tokens")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Jane_Doe_Resume.docx", FileName(sampleResume(), "docx"))
	assert.Equal(t, "Jane_Doe_Resume.pdf", FileName(sampleResume(), ".pdf"))
	assert.Equal(t, "Resume.pdf", FileName(model.Resume{}, "pdf"))
	r := model.Resume{Header: model.Header{Name: ` Ana  "Q" / Li `}}
	assert.Equal(t, "Ana_Q__Li_Resume.docx", FileName(r, "docx"))
}

func TestRenderError(t *testing.T) {
	cause := assert.AnError
	err := &RenderError{Message: "boom", Cause: cause}
	assert.Equal(t, "boom: "+cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "plain", (&RenderError{Message: "plain"}).Error())
}
