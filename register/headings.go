package register

import (
	"regexp"
	"strings"

	"github.com/MichaelBone/the-flinders-ranges-council-sa-development-applications/model"
)

// Councils label their register columns inconsistently, so each logical
// column matches a family of headings. Matching is done on the cell text
// with all whitespace stripped and lowercased.
var (
	applicationNumberHeading = regexp.MustCompile(`^(developmentnumber|developmentno\.|appno)`)
	receivedDateHeading      = regexp.MustCompile(`^(dateofapplication|dateofregistration|dateregistered)`)
	addressHeading           = regexp.MustCompile(`^(propertyaddress|locationofdevelopment)`)
	descriptionHeading       = regexp.MustCompile(`^(natureofdevelopment|descriptionofdev)`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Headings maps the register's logical columns to the heading cells
// discovered on a page. Application number and address are mandatory;
// received date and description are optional.
//
// Discovery is sticky across pages: registers mix header-bearing pages
// with header-less continuation pages, so bindings found on one page are
// reused for the rest of the document and never reset on a page
// boundary.
type Headings struct {
	ApplicationNumber *model.Cell
	ReceivedDate      *model.Cell
	Address           *model.Cell
	Description       *model.Cell
}

// Complete reports whether the mandatory columns are bound.
func (h *Headings) Complete() bool {
	return h.ApplicationNumber != nil && h.Address != nil
}

// Discover scans the cells for heading text and fills in any unbound
// columns. The first matching cell per column wins.
func (h *Headings) Discover(cells []model.Cell) {
	for i := range cells {
		key := strings.ToLower(whitespaceRun.ReplaceAllString(concatText(&cells[i]), ""))
		if key == "" {
			continue
		}

		switch {
		case h.ApplicationNumber == nil && applicationNumberHeading.MatchString(key):
			h.ApplicationNumber = copyCell(cells[i])
		case h.ReceivedDate == nil && receivedDateHeading.MatchString(key):
			h.ReceivedDate = copyCell(cells[i])
		case h.Address == nil && addressHeading.MatchString(key):
			h.Address = copyCell(cells[i])
		case h.Description == nil && descriptionHeading.MatchString(key):
			h.Description = copyCell(cells[i])
		}
	}
}

// copyCell detaches a heading cell from the per-page cell slice so the
// binding can outlive the page.
func copyCell(c model.Cell) *model.Cell {
	cell := model.Cell{Rect: c.Rect}
	return &cell
}
