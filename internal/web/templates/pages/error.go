package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/torneokills/torneo/internal/web/templates/layout"
)

// ErrorData describes an inline error page
type ErrorData struct {
	layout.PageData
	Heading   string
	Detail    string
	BackHref  string
	BackLabel string
}

// Error renders a failure as a minimal page with a link back
func Error(data ErrorData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)
		h.Raw(`<h1 class="error">`)
		h.Text(data.Heading)
		h.Raw(`</h1>`)
		if data.Detail != "" {
			h.Raw(`<p class="detail">`)
			h.Text(data.Detail)
			h.Raw(`</p>`)
		}
		if data.BackHref != "" {
			backLink(h, data.BackHref, data.BackLabel)
		}
		return h.Err()
	})
	return layout.Page(data.PageData, body)
}

func backLink(h *layout.HTML, href, label string) {
	h.Raw(`<p><a class="back" href="`)
	h.Text(href)
	h.Raw(`">`)
	h.Text(label)
	h.Raw(`</a></p>`)
}
