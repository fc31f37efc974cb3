// Package pdf regenerates chart data as downloadable PDF documents using
// gofpdf. It draws directly from the core's plain data shapes; nothing here
// reaches back into parsing or tabulation.
package pdf

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"

	"ifcdash/domain/chart"
	"ifcdash/domain/compare"
	"ifcdash/internal/errors"
)

// page geometry in millimeters (A4 landscape)
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginTop    = 25.0
	plotWidth    = pageWidth - 2*marginLeft
	plotHeight   = 140.0
	maxBarLabels = 40
)

// sliceColors cycles across pie slices and bars.
var sliceColors = [][3]int{
	{66, 133, 244},
	{219, 68, 55},
	{244, 180, 0},
	{15, 157, 88},
	{171, 71, 188},
	{0, 172, 193},
	{255, 112, 67},
	{158, 157, 36},
}

// Exporter implements ports.ChartExporter with gofpdf.
type Exporter struct{}

// NewExporter creates a PDF chart exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportSeries renders a bar or pie chart from a chart-ready series. An empty
// series produces a placeholder page rather than an error.
func (e *Exporter) ExportSeries(title string, s chart.Series) ([]byte, error) {
	doc := newDoc(title)

	if s.IsEmpty() {
		drawNoData(doc)
		return output(doc)
	}

	if s.Kind == chart.KindPie {
		drawPie(doc, s)
	} else {
		drawBars(doc, s)
	}

	return output(doc)
}

// ExportComparison renders a comparison table of two frequency tables.
func (e *Exporter) ExportComparison(title string, rows []compare.Row) ([]byte, error) {
	doc := newDoc(title)

	if len(rows) == 0 {
		drawNoData(doc)
		return output(doc)
	}

	widths := []float64{90, 40, 40, 40}
	header := []string{"Label", "Count A", "Count B", "Difference"}
	drawTableHeader(doc, widths, header)

	doc.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		doc.CellFormat(widths[0], 8, row.Label, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[1], 8, fmt.Sprintf("%d", row.CountA), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[2], 8, fmt.Sprintf("%d", row.CountB), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[3], 8, fmt.Sprintf("%+d", row.Diff), "1", 1, "R", false, 0, "")
	}

	return output(doc)
}

// ExportStats renders a statistics comparison table.
func (e *Exporter) ExportStats(title string, rows []compare.StatRow) ([]byte, error) {
	doc := newDoc(title)

	if len(rows) == 0 {
		drawNoData(doc)
		return output(doc)
	}

	widths := []float64{60, 34, 34, 34, 34, 34, 34}
	header := []string{"Column", "Mean A", "Mean B", "Mean diff", "Sum A", "Sum B", "Sum diff"}
	drawTableHeader(doc, widths, header)

	doc.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		doc.CellFormat(widths[0], 8, row.Column, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[1], 8, fmtFloat(row.MeanA), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[2], 8, fmtFloat(row.MeanB), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[3], 8, fmtFloat(row.MeanDiff), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[4], 8, fmtFloat(row.SumA), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[5], 8, fmtFloat(row.SumB), "1", 0, "R", false, 0, "")
		doc.CellFormat(widths[6], 8, fmtFloat(row.SumDiff), "1", 1, "R", false, 0, "")
	}

	return output(doc)
}

func newDoc(title string) *gofpdf.Fpdf {
	doc := gofpdf.New("L", "mm", "A4", "")
	doc.SetTitle(title, false)
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	doc.Ln(4)
	return doc
}

func drawNoData(doc *gofpdf.Fpdf) {
	doc.SetFont("Helvetica", "I", 12)
	doc.CellFormat(0, 20, "No data available", "", 1, "C", false, 0, "")
}

func drawTableHeader(doc *gofpdf.Fpdf, widths []float64, labels []string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for i, label := range labels {
		last := i == len(labels)-1
		ln := 0
		if last {
			ln = 1
		}
		doc.CellFormat(widths[i], 8, label, "1", ln, "C", true, 0, "")
	}
}

func drawBars(doc *gofpdf.Fpdf, s chart.Series) {
	n := len(s.Labels)
	if n > maxBarLabels {
		n = maxBarLabels
	}

	maxVal := 0
	for _, v := range s.Values[:n] {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		drawNoData(doc)
		return
	}

	slot := plotWidth / float64(n)
	barWidth := slot * 0.7
	baseline := marginTop + plotHeight

	for i := 0; i < n; i++ {
		h := plotHeight * float64(s.Values[i]) / float64(maxVal)
		x := marginLeft + float64(i)*slot + (slot-barWidth)/2
		y := baseline - h

		c := sliceColors[i%len(sliceColors)]
		doc.SetFillColor(c[0], c[1], c[2])
		doc.Rect(x, y, barWidth, h, "F")

		doc.SetFont("Helvetica", "", 7)
		doc.Text(x, y-1.5, fmt.Sprintf("%d", s.Values[i]))

		// rotate long labels would need more work; truncate instead
		label := s.Labels[i]
		if len(label) > 14 {
			label = label[:12] + ".."
		}
		doc.Text(x, baseline+4, label)
	}

	doc.SetDrawColor(120, 120, 120)
	doc.Line(marginLeft, baseline, marginLeft+plotWidth, baseline)
}

func drawPie(doc *gofpdf.Fpdf, s chart.Series) {
	total := 0
	for _, v := range s.Values {
		total += v
	}
	if total == 0 {
		drawNoData(doc)
		return
	}

	cx := pageWidth/2 - 40
	cy := marginTop + plotHeight/2
	radius := plotHeight / 2

	angle := -math.Pi / 2 // start at 12 o'clock
	for i, v := range s.Values {
		sweep := 2 * math.Pi * float64(v) / float64(total)
		c := sliceColors[i%len(sliceColors)]
		doc.SetFillColor(c[0], c[1], c[2])
		drawSector(doc, cx, cy, radius, angle, angle+sweep)
		angle += sweep
	}

	// legend
	doc.SetFont("Helvetica", "", 9)
	lx := cx + radius + 20
	ly := marginTop + 10
	for i, label := range s.Labels {
		c := sliceColors[i%len(sliceColors)]
		doc.SetFillColor(c[0], c[1], c[2])
		doc.Rect(lx, ly-3, 4, 4, "F")
		doc.Text(lx+6, ly, fmt.Sprintf("%s (%d)", label, s.Values[i]))
		ly += 6
	}
}

// drawSector approximates a filled pie sector with a polygon fan.
func drawSector(doc *gofpdf.Fpdf, cx, cy, r, from, to float64) {
	const step = math.Pi / 90 // 2 degree resolution

	points := []gofpdf.PointType{{X: cx, Y: cy}}
	for a := from; a < to; a += step {
		points = append(points, gofpdf.PointType{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	points = append(points, gofpdf.PointType{X: cx + r*math.Cos(to), Y: cy + r*math.Sin(to)})

	doc.Polygon(points, "F")
}

func fmtFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func output(doc *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.ExportFailure(err)
	}
	return buf.Bytes(), nil
}
