// Package layout holds the page shell shared by every HTML page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Flash message types
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string
	Message string
}

// PageData is embedded in every page's data
type PageData struct {
	Title string
	Flash *FlashMessage
}

const styles = `body { font-family: Arial, sans-serif; margin: 20px; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; }
th, td { padding: 12px; border: 1px solid #ddd; text-align: left; }
th { background-color: #f2f2f2; }
tr:nth-child(even) { background-color: #f9f9f9; }
h1, h2 { color: #333; }
.total { background: #e0f7fa; font-size: 1.1em; font-weight: bold; }
.flash { padding: 10px; margin-bottom: 15px; border-radius: 4px; }
.flash-success { background: #e8f5e9; color: #1b5e20; }
.flash-error { background: #ffebee; color: #b71c1c; }
.flash-info { background: #e3f2fd; color: #0d47a1; }
form.inline { display: flex; }
form.inline input[type=number] { width: 60px; margin-right: 5px; }`

// Page wraps body in the document shell
func Page(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(w)
		h.Raw(`<!DOCTYPE html><html lang="es"><head><meta charset="UTF-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw(`<title>`)
		h.Text(data.Title)
		h.Raw(`</title><style>`)
		h.Raw(styles)
		h.Raw(`</style></head><body>`)
		if data.Flash != nil {
			h.Raw(`<div class="flash flash-`)
			h.Text(data.Flash.Type)
			h.Raw(`" role="status">`)
			h.Text(data.Flash.Message)
			h.Raw(`</div>`)
		}
		if err := h.Err(); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.Raw(`</body></html>`)
		return h.Err()
	})
}

// HTML writes markup, escaping text values. The first write error sticks
// and later writes are skipped.
type HTML struct {
	w   io.Writer
	err error
}

// NewHTML creates an HTML writer over w
func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

// Raw writes trusted markup as is
func (h *HTML) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes an escaped value
func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Err returns the first write error
func (h *HTML) Err() error {
	return h.err
}
