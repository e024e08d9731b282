package register

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/contentstream"
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/graphics"
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/reader"
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/tables"
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/text"
)

// Config configures the register scraper.
type Config struct {
	// RegisterURL is the development register index page.
	RegisterURL string

	// CommentURL is where the public lodges comments on an application.
	CommentURL string

	// Logger for diagnostics.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// RecordSink receives validated records. Insert reports whether the
// record was new; a duplicate application number is not an error.
type RecordSink interface {
	Insert(model.Record) (bool, error)
}

// Counts summarises a document run.
type Counts struct {
	Inserted int
	Skipped  int
}

// Scraper extracts development application records from register PDFs.
type Scraper struct {
	cfg Config
	log *slog.Logger
}

// New creates a scraper.
func New(cfg Config) *Scraper {
	cfg.defaults()
	return &Scraper{cfg: cfg, log: cfg.Logger}
}

// ProcessPDF extracts every record from the document and inserts each
// into the sink as soon as it validates. Heading bindings discovered on
// one page carry over to the rest of the document. A decode failure
// aborts this PDF only; shape-of-data problems degrade to skipped pages
// or rows.
func (s *Scraper) ProcessPDF(data []byte, pdfURL string, sink RecordSink) (Counts, error) {
	var counts Counts

	doc, err := reader.Open(bytes.NewReader(data))
	if err != nil {
		return counts, fmt.Errorf("decode %s: %w", pdfURL, err)
	}

	var headings Headings
	for n := 1; n <= doc.NumPages(); n++ {
		page, err := doc.Page(n)
		if err != nil {
			return counts, fmt.Errorf("decode %s page %d: %w", pdfURL, n, err)
		}

		for _, record := range s.processPage(page, &headings, pdfURL) {
			inserted, err := sink.Insert(record)
			if err != nil {
				return counts, fmt.Errorf("insert %s: %w", record.ApplicationNumber, err)
			}
			if inserted {
				counts.Inserted++
			} else {
				counts.Skipped++
			}
		}
	}

	return counts, nil
}

// processPage runs the full reconstruction pipeline for one page and
// returns its validated records in row order.
func (s *Scraper) processPage(page *reader.Page, headings *Headings, pdfURL string) []model.Record {
	if page.Rotate != 0 && page.Rotate != 90 {
		s.log.Warn("unsupported page rotation", "page", page.Number, "rotate", page.Rotate)
	}

	ops := contentstream.NewParser(page.Content).Parse()

	rects := graphics.NewExtractor().Extract(ops)
	elements := text.ToElements(text.ExtractItems(ops))

	cells := tables.NewReconstructor().Reconstruct(rects)
	tables.Normalize(cells, elements, page.Rotate)

	if len(cells) == 0 {
		s.log.Warn("no table grid on page", "page", page.Number, "text", summarize(elements))
		return nil
	}

	tables.Bind(cells, elements, model.Tolerance)

	if !headings.Complete() {
		headings.Discover(cells)
	}
	if !headings.Complete() {
		s.log.Warn("column headings not found on page",
			"page", page.Number, "text", summarize(elements))
		return nil
	}

	rows := tables.Rows(cells, model.Tolerance)
	return s.extractRecords(rows, headings, pdfURL, page.Number)
}

// summarize renders the page's text elements for a diagnostic, capped so
// a dense page does not flood the log.
func summarize(elements []model.Element) string {
	const maxElements = 40

	parts := make([]string, 0, maxElements)
	for _, el := range elements {
		t := strings.TrimSpace(el.Text)
		if t == "" {
			continue
		}
		parts = append(parts, t)
		if len(parts) == maxElements {
			parts = append(parts, "...")
			break
		}
	}
	return strings.Join(parts, " | ")
}
