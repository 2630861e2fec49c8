package placard

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"
)

// Page and placard geometry, in points. Four placards tile one landscape
// letter page (792x612) and get cut apart after printing.
const (
	pageWidth     = 792.0
	pageHeight    = 612.0
	placardWidth  = pageWidth / 2
	placardHeight = pageHeight / 2

	marginWidth = 15.0
	logoWidth   = 54.0
	logoHeight  = 69.0

	infoBoxBottom = 80.0
	infoBoxHeight = 100.0
)

// Layout carries the site-independent strings printed on every placard.
type Layout struct {
	Agency       string
	FedUnit      string
	Campground   string
	CampHostSite string
}

// DefaultLayout returns the layout for the tool's original deployment.
func DefaultLayout() Layout {
	return Layout{
		Agency:       "NPS",
		FedUnit:      "Black Canyon of the Gunnison National Park",
		Campground:   "South Rim Campground",
		CampHostSite: "A33",
	}
}

// Build renders the records four to a landscape letter page and returns the
// PDF bytes. An empty record set returns ErrNoPlacards rather than an empty
// document.
func Build(records []Record, layout Layout) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoPlacards
	}

	pdf := fpdf.New("L", "pt", "Letter", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	printedAt := time.Now().Format("2006-01-02 15:04:05")

	for i, rec := range records {
		if i%4 == 0 {
			pdf.AddPage()
		}
		x0 := float64(i%2) * placardWidth
		y0 := float64(i%4/2) * placardHeight
		drawPlacard(pdf, x0, y0, rec, layout, printedAt)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("placard rendering failed: %w", err)
	}

	log.Debug().
		Int("placards", len(records)).
		Int("pages", (len(records)+3)/4).
		Msg("Rendered placard document")

	return buf.Bytes(), nil
}

// BuildFile renders the records to a PDF file at path, creating the parent
// directory if needed.
func BuildFile(records []Record, layout Layout, path string) error {
	data, err := Build(records, layout)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// drawPlacard draws one placard with its top-left corner at (x0, y0).
func drawPlacard(pdf *fpdf.Fpdf, x0, y0 float64, rec Record, layout Layout, printedAt string) {
	pdf.Rect(x0, y0, placardWidth, placardHeight, "D")

	// Agency mark in the logo slot.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(x0+marginWidth, y0+marginWidth+logoHeight/2+20, layout.Agency)

	title := newTextBlock(pdf, x0+marginWidth+logoWidth+10, y0+60)
	title.setFont("", 12)
	title.line(layout.FedUnit)
	title.line(layout.Campground)
	title.line("")
	title.setFont("B", 18)
	title.line("RESERVED SITE")

	siteText := fmt.Sprintf("Site: %s", rec.SiteNumber)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(x0+placardWidth-pdf.GetStringWidth(siteText)-marginWidth, y0+110, siteText)

	visitor := newTextBlock(pdf, x0+marginWidth, y0+140)
	visitor.setFont("", 10)
	visitor.line("Visitor:")
	visitor.line("")
	visitor.setFont("B", 14)
	visitor.line(rec.PrimaryOccupantName)
	visitor.line("")
	visitor.setFont("", 10)
	visitor.line(fmt.Sprintf("Reservation#: %s", rec.ReservationNumber))
	visitor.line(fmt.Sprintf("Occupants: %d", rec.Occupants))

	arrival := newTextBlock(pdf, x0+placardWidth/2-50, y0+140)
	arrival.setFont("", 10)
	arrival.line("Arrival:")
	arrival.line("")
	arrival.line("")
	arrival.setFont("B", 30)
	arrival.line(rec.ArrivalDisplay)

	// Departure day dominates the placard so hosts can scan sites at a
	// glance; the month rides above it in small type.
	depMonth, depDay := splitDisplayDate(rec.DepartureDisplay)
	departure := newTextBlock(pdf, x0+placardWidth/2+70, y0+140)
	departure.setFont("", 10)
	departure.line("Departure:")
	departure.line("")
	departure.line("")
	departure.setFont("B", 15)
	departure.line(depMonth + "/")
	departure.line("")
	departure.setFont("B", 80)
	departure.line(" " + depDay)

	help := newTextBlock(pdf, x0+marginWidth, y0+placardHeight-55)
	help.setFont("", 8)
	if layout.CampHostSite != "" {
		help.line(fmt.Sprintf("For immediate assistance: contact camp host in site %s", layout.CampHostSite))
	}
	help.line("For reservations: www.recreation.gov or call 1-877-444-6777")
	help.line("Placard printed: " + printedAt)

	// Three blank boxes for stamps and hand-written notes.
	infoBoxWidth := placardWidth / 3
	for j := 0; j < 3; j++ {
		pdf.Rect(x0+float64(j)*infoBoxWidth, y0+placardHeight-infoBoxBottom-infoBoxHeight, infoBoxWidth, infoBoxHeight, "D")
	}
}

func splitDisplayDate(display string) (month, day string) {
	parts := strings.SplitN(display, "/", 2)
	if len(parts) != 2 {
		return display, ""
	}
	return parts[0], parts[1]
}

// textBlock mimics a text object: successive lines flow downward from an
// origin with leading proportional to the current font size.
type textBlock struct {
	pdf  *fpdf.Fpdf
	x, y float64
	size float64
}

func newTextBlock(pdf *fpdf.Fpdf, x, y float64) *textBlock {
	return &textBlock{pdf: pdf, x: x, y: y}
}

func (b *textBlock) setFont(style string, size float64) {
	b.pdf.SetFont("Helvetica", style, size)
	b.size = size
}

func (b *textBlock) line(s string) {
	if s != "" {
		b.pdf.Text(b.x, b.y, s)
	}
	b.y += b.size * 1.2
}
