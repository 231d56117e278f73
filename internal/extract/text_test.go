package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/extract/pdftest"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

func TestDetectMime(t *testing.T) {
	pdfBytes := pdftest.Build("x")
	cases := []struct {
		declared, name string
		data           []byte
		want           string
	}{
		{"application/pdf", "cv", nil, MimePDF},
		{"text/plain; charset=utf-8", "cv", nil, MimeText},
		{"application/octet-stream", "cv.docx", nil, MimeDOCX},
		{"application/octet-stream", "cv.PDF", nil, MimePDF},
		{"", "upload", pdfBytes, MimePDF},
		{"", "notes", []byte("plain words"), MimeText},
		{"image/png", "photo.png", []byte{0x89, 'P', 'N', 'G'}, "image/png"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DetectMime(c.declared, c.name, c.data), c.name)
	}
}

func TestText_Plain(t *testing.T) {
	got, err := Text(MimeText, []byte("  Jane Doe\nEngineer  "))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEngineer", got)
}

func TestText_PDF(t *testing.T) {
	data := pdftest.Build("Hello from page one", "Second page")
	got, err := Text(MimePDF, data)
	require.NoError(t, err)
	assert.Contains(t, got, "Hello")
	assert.Contains(t, got, "Second")
}

func TestText_DOCX(t *testing.T) {
	r := model.Resume{
		Header:  model.Header{Name: "Jane Doe", Title: "Engineer"},
		Summary: "Builds reliable systems.",
	}
	data, err := render.DOCX(r, nil)
	require.NoError(t, err)

	got, err := Text(MimeDOCX, data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEngineer\nPROFESSIONAL SUMMARY\nBuilds reliable systems.", got)
}

func TestText_Unsupported(t *testing.T) {
	_, err := Text("image/png", []byte{1})
	var ute *UnsupportedTypeError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, "image/png", ute.Mime)
}

func TestText_CorruptInputs(t *testing.T) {
	_, err := Text(MimePDF, []byte("not a pdf"))
	assert.Error(t, err)
	_, err = Text(MimeDOCX, []byte("not a zip"))
	assert.Error(t, err)
}

func TestPageCount(t *testing.T) {
	n, err := PageCount(pdftest.Build("a", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = PageCount([]byte("%PDF-garbage"))
	assert.Error(t, err)
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document xmlns:w="x"><w:body><w:p><w:r><w:t>One</w:t></w:r></w:p><w:p><w:r><w:t>Two</w:t><w:br/><w:t>Three</w:t></w:r></w:p></w:body></w:document>`
	assert.Equal(t, "One\nTwo\nThree", stripDocxXML(raw))
}
