package reader

import (
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Document wraps a parsed PDF and exposes per-page decoded content.
type Document struct {
	ctx *pdfmodel.Context
}

// Page is one page's declared rotation and its decoded, concatenated
// content streams.
type Page struct {
	Number  int
	Rotate  int
	Content []byte
}

// Open parses a PDF from the given reader.
func Open(rs io.ReadSeeker) (*Document, error) {
	ctx, err := api.ReadContext(rs, pdfmodel.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}
	return &Document{ctx: ctx}, nil
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return d.ctx.PageCount
}

// Page returns the 1-based page n with its content streams dereferenced
// and decoded.
func (d *Document) Page(n int) (*Page, error) {
	if n < 1 || n > d.ctx.PageCount {
		return nil, fmt.Errorf("page %d out of range [1, %d]", n, d.ctx.PageCount)
	}

	pageDict, _, attrs, err := d.ctx.PageDict(n, false)
	if err != nil {
		return nil, fmt.Errorf("page %d dict: %w", n, err)
	}

	page := &Page{Number: n}
	if attrs != nil {
		page.Rotate = attrs.Rotate
	} else if rot, ok := pageDict["Rotate"].(types.Integer); ok {
		page.Rotate = int(rot)
	}

	content, err := d.pageContent(pageDict)
	if err != nil {
		return nil, fmt.Errorf("page %d content: %w", n, err)
	}
	page.Content = content

	return page, nil
}

// pageContent collects the page's content streams. A page may carry a
// single stream or an array of partial streams that concatenate into one
// logical stream.
func (d *Document) pageContent(pageDict types.Dict) ([]byte, error) {
	contents, found := pageDict.Find("Contents")
	if !found {
		return nil, nil
	}

	var combined []byte
	appendStream := func(ref types.IndirectRef) error {
		sd, _, err := d.ctx.DereferenceStreamDict(ref)
		if err != nil {
			return err
		}
		if sd == nil {
			return nil
		}
		if err := sd.Decode(); err != nil {
			return err
		}
		combined = append(combined, sd.Content...)
		combined = append(combined, '\n')
		return nil
	}

	switch v := contents.(type) {
	case types.IndirectRef:
		if err := appendStream(v); err != nil {
			return nil, err
		}
	case *types.IndirectRef:
		if err := appendStream(*v); err != nil {
			return nil, err
		}
	case types.Array:
		for _, item := range v {
			switch ref := item.(type) {
			case types.IndirectRef:
				if err := appendStream(ref); err != nil {
					return nil, err
				}
			case *types.IndirectRef:
				if err := appendStream(*ref); err != nil {
					return nil, err
				}
			}
		}
	}

	return combined, nil
}
