package register

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/tables"
)

// Application numbers look like 690/006/15.
var applicationNumberFormat = regexp.MustCompile(`^[0-9]+/[0-9]+/[0-9]+$`)

// NoDescription is emitted when a row carries no description text.
const NoDescription = "No Description Provided"

// registerDateLayout accepts D/MM/YYYY and nothing looser: a two-digit
// year or single-digit month is treated as unparseable.
const registerDateLayout = "2/01/2006"

// extractRecords walks the rows in order and emits one record per row
// that carries a valid application number. Rows with no cell under the
// application-number column are skipped silently. The header row does
// have one (the heading cell itself); its text fails the number format,
// so it is skipped with a malformed-number warning.
func (s *Scraper) extractRecords(rows [][]model.Cell, h *Headings, pdfURL string, page int) []model.Record {
	var records []model.Record

	for _, row := range rows {
		numberCell := tables.CellForColumn(row, h.ApplicationNumber)
		if numberCell == nil {
			continue
		}

		applicationNumber := strings.TrimSpace(concatText(numberCell))
		if !applicationNumberFormat.MatchString(applicationNumber) {
			s.log.Warn("malformed application number, skipping row",
				"page", page, "value", applicationNumber)
			continue
		}

		address := joinText(tables.CellForColumn(row, h.Address))
		if address == "" {
			s.log.Warn("row has no address, skipping",
				"page", page, "applicationNumber", applicationNumber)
			continue
		}

		description := joinText(tables.CellForColumn(row, h.Description))
		if description == "" {
			description = NoDescription
		}

		records = append(records, model.Record{
			ApplicationNumber: applicationNumber,
			Address:           address,
			Description:       description,
			ReceivedDate:      parseReceivedDate(tables.CellForColumn(row, h.ReceivedDate)),
			InformationURL:    pdfURL,
			CommentURL:        s.cfg.CommentURL,
			ScrapeDate:        time.Now().Format("2006-01-02"),
		})
	}

	return records
}

// concatText concatenates a cell's element texts with no separator.
func concatText(c *model.Cell) string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	for _, el := range c.Elements {
		b.WriteString(el.Text)
	}
	return normalizeText(b.String())
}

// joinText space-joins a cell's element texts and collapses internal
// whitespace runs, so a multi-line address reads as one line.
func joinText(c *model.Cell) string {
	if c == nil {
		return ""
	}
	parts := make([]string, 0, len(c.Elements))
	for _, el := range c.Elements {
		parts = append(parts, el.Text)
	}
	joined := normalizeText(strings.Join(parts, " "))
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(joined, " "))
}

// normalizeText folds compatibility forms so that non-breaking spaces
// and ligatures from PDF fonts compare like their plain equivalents.
func normalizeText(s string) string {
	return norm.NFKC.String(s)
}

// parseReceivedDate parses the cell text strictly as D/MM/YYYY and
// returns the ISO form, or empty when the cell is missing or malformed.
func parseReceivedDate(c *model.Cell) string {
	raw := strings.TrimSpace(concatText(c))
	if raw == "" {
		return ""
	}
	t, err := time.Parse(registerDateLayout, raw)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}
