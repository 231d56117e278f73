// Package render turns a resume into the documents users download: a
// self-contained HTML page (also the input for PDF printing) and a DOCX file.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"resume-builder/internal/model"
)

//go:embed templates/resume.html templates/style.css
var templatesFS embed.FS

var resumeTemplate = template.Must(
	template.New("resume.html").
		Funcs(template.FuncMap{"percent": percent}).
		ParseFS(templatesFS, "templates/resume.html"),
)

var stylesheet = mustRead("templates/style.css")

type projectView struct {
	model.ProjectEntry
	Href      string
	LinkLabel string
}

type htmlView struct {
	model.Resume
	Labels       model.Labels
	Lang         string
	CSS          template.CSS
	ProjectViews []projectView
}

func (v htmlView) HasSkills() bool {
	return len(v.Skills.All()) > 0 || len(v.ExtraSkillsSuggested) > 0
}

// HTML renders resume as a single HTML document with the stylesheet inlined,
// so it can be saved or printed without other assets. Section headings come
// from labels; missing keys fall back to English.
func HTML(resume model.Resume, labels model.Labels) (string, error) {
	view := htmlView{
		Resume: resume,
		Labels: labels,
		Lang:   documentLang(labels),
		CSS:    template.CSS(stylesheet),
	}
	for _, p := range resume.Projects {
		href, label := projectLink(p.Link)
		view.ProjectViews = append(view.ProjectViews, projectView{ProjectEntry: p, Href: href, LinkLabel: label})
	}

	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, view); err != nil {
		return "", &RenderError{Message: "failed to execute resume template", Cause: err}
	}
	return buf.String(), nil
}

// documentLang is "en" unless labels carry a translated heading, in which
// case the language is left undeclared.
func documentLang(labels model.Labels) string {
	defaults := model.DefaultLabels()
	for k, v := range labels {
		if v != "" && v != defaults[k] {
			return ""
		}
	}
	return "en"
}

// projectLink normalises a user-supplied link into an absolute URL and a
// short label: the registrable domain for web links ("github.com"), or the
// raw text when it cannot be parsed.
func projectLink(link string) (href, label string) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", ""
	}
	candidate := link
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return "", link
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return candidate, strings.TrimPrefix(etld, "www.")
	}
	return candidate, strings.TrimPrefix(host, "www.")
}

func percent(confidence float64) int {
	return int(math.Round(confidence * 100))
}

func mustRead(name string) string {
	b, err := templatesFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return string(b)
}
