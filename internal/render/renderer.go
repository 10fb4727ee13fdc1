package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"constancias-backend/internal/qr"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"github.com/rs/zerolog/log"
)

// Data carries the fields printed on a certificate. Grade and Notes are
// optional (empty string = absent).
type Data struct {
	Folio         string
	FullName      string
	Course        string
	DurationHours int
	Date          string // YYYY-MM-DD
	Grade         string
	Notes         string
}

// Renderer produces the one-page certificate PDF. It tries the pre-designed
// template first and falls back to a from-scratch layout when the template
// cannot be read or imported.
type Renderer struct {
	TemplatePath string
}

// Render returns the finished PDF bytes. The verification URL
// <baseURL>/validar/<folio> is encoded into the embedded QR. A QR or
// serialization failure is fatal; a missing template is not.
func (r *Renderer) Render(data Data, baseURL string) ([]byte, error) {
	verificationURL := VerificationURL(baseURL, data.Folio)
	qrPNG, err := qr.Encode(verificationURL)
	if err != nil {
		return nil, err
	}

	tpl, err := os.ReadFile(r.TemplatePath)
	if err != nil {
		log.Warn().Err(err).Str("template", r.TemplatePath).Msg("template unavailable, using fallback layout")
		return r.renderFromScratch(data, qrPNG)
	}
	out, err := r.renderTemplate(data, tpl, qrPNG)
	if err != nil {
		log.Warn().Err(err).Str("template", r.TemplatePath).Msg("template import failed, using fallback layout")
		return r.renderFromScratch(data, qrPNG)
	}
	return out, nil
}

// VerificationURL builds the public QR payload for a folio.
func VerificationURL(baseURL, folio string) string {
	return strings.TrimRight(baseURL, "/") + "/validar/" + folio
}

func (r *Renderer) renderTemplate(data Data, tpl []byte, qrPNG []byte) (out []byte, err error) {
	// gofpdi panics on malformed template files; recover so the caller can
	// fall back instead of crashing the issuance.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("template import: %v", rec)
		}
	}()

	pdf := gofpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	var rs io.ReadSeeker = bytes.NewReader(tpl)
	tplID := gofpdi.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")
	gofpdi.UseImportedTemplate(pdf, tplID, 0, 0, pageWidth, pageHeight)

	drawText(pdf, tr, templateLayout["nombre"], data.FullName)
	drawText(pdf, tr, templateLayout["curso"], data.Course)
	drawText(pdf, tr, templateLayout["duracion"], fmt.Sprintf("Duración: %d horas", data.DurationHours))
	drawText(pdf, tr, templateLayout["fecha"], formatDate(data.Date))
	if data.Grade != "" {
		drawText(pdf, tr, templateLayout["calificacion"], data.Grade)
	}
	drawText(pdf, tr, templateLayout["folio"], data.Folio)

	drawQR(pdf, qrPNG, templateQRBox)

	return output(pdf)
}

func (r *Renderer) renderFromScratch(data Data, qrPNG []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	drawText(pdf, tr, scratchLayout["titulo"], "CONSTANCIA")
	drawText(pdf, tr, scratchLayout["otorga"], "QUE SE OTORGA A")
	drawText(pdf, tr, scratchLayout["nombre"], data.FullName)
	drawText(pdf, tr, scratchLayout["participacion"], "Por haber participado en los cursos de:")
	drawText(pdf, tr, scratchLayout["curso"], data.Course)
	drawText(pdf, tr, scratchLayout["duracion"], fmt.Sprintf("Duración: %d horas", data.DurationHours))
	drawText(pdf, tr, scratchLayout["fecha"], "Fecha: "+formatDate(data.Date))
	if data.Grade != "" {
		drawText(pdf, tr, scratchLayout["calificacionLabel"], "CALIFICACIÓN")
		drawText(pdf, tr, scratchLayout["calificacion"], data.Grade)
	}
	if data.Notes != "" {
		drawText(pdf, tr, scratchLayout["observacionesLabel"], "OBSERVACIONES")
		drawText(pdf, tr, scratchLayout["observaciones"], data.Notes)
	}
	drawText(pdf, tr, scratchLayout["folio"], "Registro: "+data.Folio)

	drawQR(pdf, qrPNG, scratchQRBox)

	return output(pdf)
}

func drawText(pdf *gofpdf.Fpdf, tr func(string) string, st TextStyle, s string) {
	style := ""
	if st.Bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, st.Size)
	pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	pdf.Text(st.X, st.Y, tr(s))
}

func drawQR(pdf *gofpdf.Fpdf, png []byte, box ImageBox) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("qr", box.X, box.Y, box.W, box.H, false, opts, 0, "")
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatDate renders YYYY-MM-DD as a long es-MX date ("15 de enero de 2024").
// Unparseable input is printed as-is.
func formatDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
