package render

// Page size in points (A4 portrait).
const (
	pageWidth  = 595.28
	pageHeight = 841.89
)

// RGB color for PDF text.
type RGB struct {
	R, G, B int
}

var (
	colorBlue  = RGB{R: 33, G: 89, B: 148}
	colorGray  = RGB{R: 128, G: 128, B: 128}
	colorDark  = RGB{R: 51, G: 51, B: 51}
	colorBlack = RGB{R: 0, G: 0, B: 0}
)

// TextStyle places one field on the page. Coordinates are points from the
// top-left corner; Y is the text baseline. Positions are tuned against the
// specific template and are not derived from content length, so overly long
// values overflow visually rather than re-flow.
type TextStyle struct {
	X, Y  float64
	Size  float64
	Bold  bool
	Color RGB
}

// ImageBox places the QR raster.
type ImageBox struct {
	X, Y, W, H float64
}

// templateLayout is tuned against the constancia.pdf template.
var templateLayout = map[string]TextStyle{
	"nombre":       {X: 128, Y: 194, Size: 18.4, Bold: true, Color: colorBlue},
	"curso":        {X: 128, Y: 296, Size: 17.25, Bold: true, Color: colorBlue},
	"duracion":     {X: 100, Y: 382, Size: 14, Bold: true, Color: colorBlue},
	"fecha":        {X: 184, Y: 341, Size: 19.6, Bold: true, Color: colorBlue},
	"calificacion": {X: 210, Y: 408, Size: 19.2, Bold: true, Color: colorBlue},
	"folio":        {X: 100, Y: 452, Size: 10, Color: colorGray},
}

// templateQRBox sits in the white square of the template, lower center.
var templateQRBox = ImageBox{X: 220, Y: 516, W: 158.6, H: 158.6}

// scratchLayout is the from-scratch fallback design (same informational
// content, plainer look).
var scratchLayout = map[string]TextStyle{
	"titulo":             {X: 247, Y: 80, Size: 20, Bold: true, Color: colorDark},
	"otorga":             {X: 100, Y: 150, Size: 12, Color: colorDark},
	"nombre":             {X: 100, Y: 180, Size: 14, Bold: true, Color: colorDark},
	"participacion":      {X: 100, Y: 220, Size: 12, Color: colorDark},
	"curso":              {X: 100, Y: 250, Size: 12, Color: colorDark},
	"duracion":           {X: 100, Y: 280, Size: 12, Color: colorDark},
	"fecha":              {X: 100, Y: 310, Size: 12, Color: colorDark},
	"calificacionLabel":  {X: 100, Y: 350, Size: 12, Bold: true, Color: colorDark},
	"calificacion":       {X: 300, Y: 350, Size: 12, Color: colorDark},
	"observacionesLabel": {X: 100, Y: 380, Size: 12, Bold: true, Color: colorDark},
	"observaciones":      {X: 300, Y: 380, Size: 12, Color: colorDark},
	"folio":              {X: 100, Y: 420, Size: 10, Color: colorDark},
}

var scratchQRBox = ImageBox{X: pageWidth - 150, Y: pageHeight - 150, W: 100, H: 100}
