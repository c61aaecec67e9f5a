package pdf

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
	"jewelry-crm/internal/config"
	"jewelry-crm/internal/service/document"
)

const (
	family = "DejaVu"

	margin      = 15.0
	lineHeight  = 5.0
	textSize    = 10.0
	titleSize   = 15.0
	headingSize = 12.0
	keyShare    = 0.35
)

// Встроенный DejaVu Sans с кириллицей, используется когда шрифты из конфига не найдены.
var (
	//go:embed fonts/DejaVuSans.ttf
	embeddedRegular []byte
	//go:embed fonts/DejaVuSans-Bold.ttf
	embeddedBold []byte
)

// Renderer печатает document.Page в PDF формата A4.
type Renderer struct {
	regular []byte
	bold    []byte
}

func New(log *slog.Logger, fonts config.Fonts) *Renderer {
	const op = "pdf.New"

	regular, err := os.ReadFile(fonts.Regular)
	if err != nil {
		log.Warn("шрифт не найден, используется встроенный DejaVu Sans", slog.String("op", op), slog.String("path", fonts.Regular))
		return &Renderer{}
	}

	bold, err := os.ReadFile(fonts.Bold)
	if err != nil {
		log.Warn("жирный шрифт не найден, используется обычный", slog.String("op", op), slog.String("path", fonts.Bold))
		bold = regular
	}

	return &Renderer{regular: regular, bold: bold}
}

func (r *Renderer) fonts() (regular, bold []byte) {
	if len(r.regular) == 0 {
		return embeddedRegular, embeddedBold
	}
	if len(r.bold) == 0 {
		return r.regular, r.regular
	}
	return r.regular, r.bold
}

func (r *Renderer) Render(page *document.Page) ([]byte, error) {
	const op = "pdf.Renderer.Render"

	p := fpdf.New("P", "mm", "A4", "")
	p.SetMargins(margin, margin, margin)
	p.SetAutoPageBreak(true, margin)
	p.SetTitle(page.Title, true)
	p.SetCreator("jewelry-crm", true)

	regular, bold := r.fonts()
	p.AddUTF8FontFromBytes(family, "", regular)
	p.AddUTF8FontFromBytes(family, "B", bold)

	w := &writer{pdf: p}

	p.AddPage()
	pageW, _ := p.GetPageSize()
	w.width = pageW - 2*margin

	for _, s := range page.Sections {
		w.section(s)
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

type writer struct {
	pdf   *fpdf.Fpdf
	width float64
}

func (w *writer) font(bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}
	w.pdf.SetFont(family, style, size)
}

func (w *writer) section(s document.Section) {
	if s.Title != "" {
		w.font(true, headingSize)
		w.pdf.MultiCell(w.width, lineHeight+2, s.Title, "", "L", false)
		w.pdf.Ln(1)
	}

	for _, b := range s.Blocks {
		switch b := b.(type) {
		case document.Heading:
			w.heading(b)
		case document.Paragraph:
			w.font(b.Bold, textSize)
			w.pdf.MultiCell(w.width, lineHeight, b.Text, "", align(b.Align), false)
		case document.KeyValue:
			w.keyValue(b.Fields)
		case document.Totals:
			w.totals(b.Fields)
		case document.Table:
			w.table(b)
		case document.Signatures:
			w.signatures(b)
		case document.Spacer:
			w.pdf.Ln(b.Height)
		}
	}
}

func (w *writer) heading(h document.Heading) {
	size := titleSize
	alignStr := "C"
	if h.Level > 0 {
		size = headingSize
		alignStr = "L"
	}
	w.font(true, size)
	w.pdf.MultiCell(w.width, lineHeight+2, h.Text, "", alignStr, false)
}

func (w *writer) keyValue(fields []document.Field) {
	keyW := w.width * keyShare
	for _, f := range fields {
		w.font(true, textSize)
		w.pdf.CellFormat(keyW, lineHeight, f.Key, "", 0, "L", false, 0, "")
		w.font(false, textSize)
		w.pdf.MultiCell(w.width-keyW, lineHeight, f.Value, "", "L", false)
	}
}

func (w *writer) totals(fields []document.Field) {
	valueW := w.width * 0.17
	keyW := w.width * 0.3
	for _, f := range fields {
		w.font(true, textSize)
		w.pdf.CellFormat(w.width-keyW-valueW, lineHeight, "", "", 0, "L", false, 0, "")
		w.pdf.CellFormat(keyW, lineHeight, f.Key, "", 0, "R", false, 0, "")
		w.pdf.CellFormat(valueW, lineHeight, f.Value, "", 1, "R", false, 0, "")
	}
}

func (w *writer) table(t document.Table) {
	widths := make([]float64, len(t.Columns))
	aligns := make([]string, len(t.Columns))
	titles := make([]string, len(t.Columns))
	hasHeader := false
	for i, c := range t.Columns {
		widths[i] = w.width * c.Width
		aligns[i] = align(c.Align)
		titles[i] = c.Title
		if c.Title != "" {
			hasHeader = true
		}
	}

	if hasHeader {
		w.font(true, textSize)
		w.pdf.SetFillColor(224, 224, 224)
		w.row(titles, widths, aligns, t.Bordered, true)
	}

	w.font(false, textSize)
	for _, cells := range t.Rows {
		w.row(cells, widths, aligns, t.Bordered, false)
	}
}

// row печатает строку таблицы, высота берётся по самой длинной ячейке.
func (w *writer) row(cells []string, widths []float64, aligns []string, bordered, fill bool) {
	lines := 1
	for i, c := range cells {
		if i >= len(widths) {
			break
		}
		if n := w.lineCount(c, widths[i]-2); n > lines {
			lines = n
		}
	}
	h := float64(lines) * lineHeight

	_, pageH := w.pdf.GetPageSize()
	if w.pdf.GetY()+h > pageH-margin {
		w.pdf.AddPage()
	}

	x, y := w.pdf.GetX(), w.pdf.GetY()
	for i, c := range cells {
		if i >= len(widths) {
			break
		}
		if bordered || fill {
			style := "D"
			if fill {
				style = "FD"
			}
			w.pdf.Rect(x, y, widths[i], h, style)
		}
		w.pdf.SetXY(x, y)
		w.pdf.MultiCell(widths[i], lineHeight, c, "", aligns[i], false)
		x += widths[i]
	}
	w.pdf.SetXY(margin, y+h)
}

func (w *writer) signatures(s document.Signatures) {
	half := w.width / 2
	n := len(s.Left)
	if len(s.Right) > n {
		n = len(s.Right)
	}
	for i := 0; i < n; i++ {
		bold := i == 0
		w.font(bold, textSize)
		w.pdf.CellFormat(half, lineHeight, at(s.Left, i), "", 0, "L", false, 0, "")
		w.pdf.CellFormat(half, lineHeight, at(s.Right, i), "", 1, "L", false, 0, "")
	}
}

// lineCount: число строк после переноса по словам, по метрикам текущего шрифта.
func (w *writer) lineCount(text string, width float64) int {
	space := w.pdf.GetStringWidth(" ")
	n := 0
	for _, para := range strings.Split(text, "\n") {
		n++
		lineW := 0.0
		for _, word := range strings.Fields(para) {
			ww := w.pdf.GetStringWidth(word)
			switch {
			case lineW == 0:
				lineW = ww
			case lineW+space+ww > width:
				n++
				lineW = ww
			default:
				lineW += space + ww
			}
		}
	}
	return n
}

func at(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func align(a document.Align) string {
	if a == "" {
		return string(document.AlignLeft)
	}
	return string(a)
}
