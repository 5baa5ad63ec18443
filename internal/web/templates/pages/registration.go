package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/torneokills/torneo/internal/web/templates/layout"
)

// RegisteredData is shown after a successful registration
type RegisteredData struct {
	layout.PageData
	PlayerName  string
	EntryFeeUSD string
	// EntryFeeBs is the amount submitted with the form, possibly empty
	EntryFeeBs string
}

// Registered confirms the registration and tells the player what to pay
func Registered(data RegisteredData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)
		h.Raw(`<h1>¡Registro e Inscripción Exitosos, `)
		h.Text(data.PlayerName)
		h.Raw(`!</h1>`)
		h.Raw(`<p>Has sido registrado en la base de datos y tu inscripción al torneo ha sido procesada.</p>`)
		h.Raw(`<p class="fee">Tu próximo paso es pagar la entrada de $`)
		h.Text(data.EntryFeeUSD)
		h.Raw(` (o `)
		if data.EntryFeeBs != "" {
			h.Text(data.EntryFeeBs)
		} else {
			h.Raw(`calcula el monto`)
		}
		h.Raw(`) a los datos de Pago Móvil del organizador.</p>`)
		backLink(h, "/", "Volver al inicio")
		return h.Err()
	})
	return layout.Page(data.PageData, body)
}
