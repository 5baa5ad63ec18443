package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/torneokills/torneo/internal/web/templates/layout"
)

// TournamentCreatedData shows the row written by the debug insert
type TournamentCreatedData struct {
	layout.PageData
	// RowJSON is the created row, indented
	RowJSON string
}

// TournamentCreated renders the created tournament row
func TournamentCreated(data TournamentCreatedData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)
		h.Raw(`<h1>¡Torneo Creado Exitosamente en la BD!</h1>`)
		h.Raw(`<pre id="torneo">`)
		h.Text(data.RowJSON)
		h.Raw(`</pre>`)
		backLink(h, "/", "Volver al inicio")
		return h.Err()
	})
	return layout.Page(data.PageData, body)
}
