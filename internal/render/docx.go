package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"resume-builder/internal/model"
)

const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Paragraph and run formatting used by the DOCX layout.
const (
	accentColor = "3B82F6"

	pCenter  = `<w:jc w:val="center"/>`
	pJustify = `<w:jc w:val="both"/>`
	pHeading = `<w:spacing w:before="240" w:after="100"/><w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="` + accentColor + `"/></w:pBdr>`
	pBullet  = `<w:ind w:left="360" w:hanging="216"/><w:spacing w:after="80"/>`

	rName    = `<w:b/><w:sz w:val="40"/>`
	rTitle   = `<w:color w:val="` + accentColor + `"/><w:sz w:val="28"/>`
	rHeading = `<w:b/><w:sz w:val="26"/>`
	rStrong  = `<w:b/><w:sz w:val="24"/>`
	rAccent  = `<w:b/><w:color w:val="` + accentColor + `"/>`
	rItalic  = `<w:i/>`
	rBoldIt  = `<w:b/><w:i/>`
	rPlain   = ``
)

type docxRun struct {
	props string
	text  string
}

type docxParagraph struct {
	props string
	runs  []docxRun
}

// docxBuilder lays out the document as paragraphs whose run text is a
// numbered placeholder; the real text is filled in afterwards through the
// docx library so that escaping is handled in one place.
type docxBuilder struct {
	paragraphs []docxParagraph
	texts      []string
}

func (b *docxBuilder) add(pProps string, runs ...docxRun) {
	b.paragraphs = append(b.paragraphs, docxParagraph{props: pProps, runs: runs})
}

func (b *docxBuilder) heading(text string) {
	b.add(pHeading, docxRun{rHeading, strings.ToUpper(text)})
}

func (b *docxBuilder) documentXML() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range b.paragraphs {
		sb.WriteString("<w:p>")
		if p.props != "" {
			sb.WriteString("<w:pPr>" + p.props + "</w:pPr>")
		}
		for _, r := range p.runs {
			sb.WriteString("<w:r>")
			if r.props != "" {
				sb.WriteString("<w:rPr>" + r.props + "</w:rPr>")
			}
			fmt.Fprintf(&sb, `<w:t xml:space="preserve">%s</w:t>`, placeholder(len(b.texts)))
			sb.WriteString("</w:r>")
			b.texts = append(b.texts, r.text)
		}
		sb.WriteString("</w:p>")
	}
	// A4 with 0.5in margins
	sb.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720" w:header="708" w:footer="708" w:gutter="0"/></w:sectPr>`)
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func placeholder(i int) string {
	return fmt.Sprintf("{{p%d}}", i)
}

var docxSkeleton = map[string]string{
	"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
		`</Types>`,
	"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
		`</Relationships>`,
	"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
}

// DOCX renders resume as a Word document.
func DOCX(resume model.Resume, labels model.Labels) ([]byte, error) {
	b := &docxBuilder{}
	layoutDocx(b, resume, labels)
	docXML := b.documentXML()

	var pkg bytes.Buffer
	zw := zip.NewWriter(&pkg)
	parts := map[string]string{"word/document.xml": docXML}
	for name, body := range docxSkeleton {
		parts[name] = body
	}
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/_rels/document.xml.rels"} {
		w, err := zw.Create(name)
		if err != nil {
			return nil, &RenderError{Message: "failed to create docx part " + name, Cause: err}
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			return nil, &RenderError{Message: "failed to write docx part " + name, Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &RenderError{Message: "failed to close docx package", Cause: err}
	}

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(pkg.Bytes()), int64(pkg.Len()))
	if err != nil {
		return nil, &RenderError{Message: "failed to open docx skeleton", Cause: err}
	}
	defer r.Close()

	doc := r.Editable()
	// Fill from the last placeholder back so text that happens to contain a
	// placeholder token is never matched before the real one.
	for i := len(b.texts) - 1; i >= 0; i-- {
		if err := doc.Replace(placeholder(i), docxText(b.texts[i]), 1); err != nil {
			return nil, &RenderError{Message: "failed to fill docx text", Cause: err}
		}
	}

	var out bytes.Buffer
	if err := doc.Write(&out); err != nil {
		return nil, &RenderError{Message: "failed to write docx", Cause: err}
	}
	return out.Bytes(), nil
}

func layoutDocx(b *docxBuilder, r model.Resume, labels model.Labels) {
	b.add(pCenter, docxRun{rName, r.Header.Name})
	b.add(pCenter, docxRun{rTitle, r.Header.Title})

	var contact []string
	for _, c := range []string{r.Header.Contact.Email, r.Header.Contact.Phone, r.Header.Contact.Location, r.Header.Contact.LinkedIn} {
		if c = strings.TrimSpace(c); c != "" {
			contact = append(contact, c)
		}
	}
	if len(contact) > 0 {
		b.add(pCenter, docxRun{rPlain, strings.Join(contact, " | ")})
	}

	if r.Summary != "" {
		b.heading(labels.Get(model.LabelSummary))
		b.add(pJustify, docxRun{rPlain, r.Summary})
	}

	if len(r.Experience) > 0 {
		b.heading(labels.Get(model.LabelExperience))
		for _, e := range r.Experience {
			b.add("", docxRun{rStrong, e.Title})
			b.add("", docxRun{rAccent, e.Company})
			meta := []string{}
			if e.Location != "" {
				meta = append(meta, e.Location)
			}
			meta = append(meta, e.Start+" - "+e.End)
			b.add("", docxRun{rItalic, strings.Join(meta, " | ")})
			for _, bullet := range e.Bullets {
				b.add(pBullet, docxRun{rPlain, "• " + bullet})
			}
		}
	}

	if len(r.Education) > 0 {
		b.heading(labels.Get(model.LabelEducation))
		for _, e := range r.Education {
			b.add("", docxRun{rStrong, e.Degree})
			b.add("", docxRun{`<w:color w:val="` + accentColor + `"/>`, e.Institution})
			if e.Year != "" {
				b.add("", docxRun{rPlain, e.Year})
			}
		}
	}

	if len(r.Skills.All()) > 0 || len(r.ExtraSkillsSuggested) > 0 {
		b.heading(labels.Get(model.LabelSkills))
		skillLine := func(key string, skills []string) {
			if len(skills) > 0 {
				b.add("", docxRun{rAccent, labels.Get(key) + ": "}, docxRun{rPlain, strings.Join(skills, ", ")})
			}
		}
		skillLine(model.LabelTechnicalSkills, r.Skills.Technical)
		skillLine(model.LabelSoftSkills, r.Skills.Soft)
		skillLine(model.LabelTools, r.Skills.Tools)

		if len(r.ExtraSkillsSuggested) > 0 {
			items := make([]string, 0, len(r.ExtraSkillsSuggested))
			for _, s := range r.ExtraSkillsSuggested {
				items = append(items, fmt.Sprintf("%s (%d%%)", s.Name, percent(s.Confidence)))
			}
			b.add("", docxRun{rBoldIt, labels.Get(model.LabelSuggestedSkills) + ": "}, docxRun{rItalic, strings.Join(items, ", ")})
		}
	}

	if len(r.Projects) > 0 {
		b.heading(labels.Get(model.LabelProjects))
		for _, p := range r.Projects {
			b.add("", docxRun{rStrong, p.Name})
			if p.Description != "" {
				b.add("", docxRun{rPlain, p.Description})
			}
			if len(p.TechStack) > 0 {
				b.add("", docxRun{`<w:b/>`, labels.Get(model.LabelTechnologies) + ": "}, docxRun{rPlain, strings.Join(p.TechStack, ", ")})
			}
			if _, label := projectLink(p.Link); label != "" {
				b.add("", docxRun{rItalic, strings.TrimSpace(p.Link)})
			}
		}
	}
}

// docxText flattens text to a single line; a run holds no line breaks.
func docxText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FileName returns the download name for resume, e.g. "Jane_Doe_Resume.docx".
func FileName(resume model.Resume, ext string) string {
	name := strings.Join(strings.Fields(resume.Header.Name), "_")
	if name == "" {
		name = "Resume"
	} else {
		name += "_Resume"
	}
	var sb strings.Builder
	for _, r := range name {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String() + "." + strings.TrimPrefix(ext, ".")
}
