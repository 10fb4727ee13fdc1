package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testData = Data{
	Folio:         "PC-2024-00001",
	FullName:      "Juan Pérez",
	Course:        "Primeros Auxilios",
	DurationHours: 8,
	Date:          "2024-01-15",
	Grade:         "10",
	Notes:         "Participación destacada",
}

func TestVerificationURL(t *testing.T) {
	assert.Equal(t, "https://example.org/validar/PC-2024-00001",
		VerificationURL("https://example.org", "PC-2024-00001"))
	assert.Equal(t, "https://example.org/validar/PC-2024-00001",
		VerificationURL("https://example.org/", "PC-2024-00001"))
}

// Missing template must not be an error: the from-scratch layout takes over.
func TestRender_FallbackWhenTemplateMissing(t *testing.T) {
	r := &Renderer{TemplatePath: filepath.Join(t.TempDir(), "nope.pdf")}
	out, err := r.Render(testData, "https://example.org")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

// A corrupt template falls back the same way.
func TestRender_FallbackWhenTemplateCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	r := &Renderer{TemplatePath: path}
	out, err := r.Render(testData, "https://example.org")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_WithTemplate(t *testing.T) {
	// Build a one-page template the importer can load.
	path := filepath.Join(t.TempDir(), "template.pdf")
	tpl := gofpdf.New("P", "pt", "A4", "")
	tpl.AddPage()
	tpl.SetFont("Helvetica", "B", 24)
	tpl.Text(100, 100, "CONSTANCIA DE CAPACITACION")
	require.NoError(t, tpl.OutputFileAndClose(path))

	r := &Renderer{TemplatePath: path}
	out, err := r.Render(testData, "https://example.org")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_OptionalFieldsOmitted(t *testing.T) {
	d := testData
	d.Grade = ""
	d.Notes = ""
	r := &Renderer{TemplatePath: "does-not-exist.pdf"}
	out, err := r.Render(d, "https://example.org")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15 de enero de 2024", formatDate("2024-01-15"))
	assert.Equal(t, "1 de diciembre de 2023", formatDate("2023-12-01"))
	assert.Equal(t, "sin-fecha", formatDate("sin-fecha"))
}
