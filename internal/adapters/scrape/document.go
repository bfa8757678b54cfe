// Package scrape fetches pages and exposes them as queryable documents.
package scrape

import (
	"io"

	"github.com/PuerkitoBio/goquery"

	"yt2reader/internal/ports"
)

// document adapts a parsed goquery document to ports.Document.
type document struct {
	doc *goquery.Document
}

// NewDocumentFromReader parses HTML into a ports.Document. Also used for
// locally saved pages.
func NewDocumentFromReader(r io.Reader) (ports.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &document{doc: doc}, nil
}

func (d *document) Select(selector string) []ports.Element {
	var out []ports.Element
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, &element{sel: s})
	})
	return out
}

// Title returns the page <title> text, or empty when absent.
func (d *document) Title() string {
	return d.doc.Find("title").First().Text()
}

type element struct {
	sel *goquery.Selection
}

func (e *element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e *element) Text() string {
	return e.sel.Text()
}

// PageTitle returns the <title> of a document when the underlying
// implementation exposes one.
func PageTitle(doc ports.Document) string {
	if titled, ok := doc.(interface{ Title() string }); ok {
		return titled.Title()
	}
	if els := doc.Select("title"); len(els) > 0 {
		return els[0].Text()
	}
	return ""
}
