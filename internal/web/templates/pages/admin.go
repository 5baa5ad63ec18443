package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/web/templates/layout"
)

// AdminData is the admin dashboard content
type AdminData struct {
	layout.PageData
	EntryFeeUSD string
	Pending     []model.EnrollmentDetail
	Verified    []model.EnrollmentDetail
}

// Admin renders the pending payments table and the verified players table
func Admin(data AdminData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)
		h.Raw(`<h1>Panel de Administración</h1>`)

		h.Raw(`<h2>Pagos Pendientes</h2>`)
		h.Raw(`<p>Jugadores que aún no han pagado la entrada de $`)
		h.Text(data.EntryFeeUSD)
		h.Raw(`.</p>`)
		h.Raw(`<table id="pendientes"><thead><tr>`)
		h.Raw(`<th>Nombre del Jugador</th><th>Teléfono</th><th>Cédula</th><th>Torneo</th><th>Acción</th>`)
		h.Raw(`</tr></thead><tbody>`)
		if len(data.Pending) == 0 {
			h.Raw(`<tr class="empty"><td colspan="5">¡No hay pagos pendientes!</td></tr>`)
		}
		for _, e := range data.Pending {
			id := strconv.FormatInt(e.ID, 10)
			h.Raw(`<tr data-inscripcion="` + id + `"><td>`)
			h.Text(e.Player.FullName)
			h.Raw(`</td><td>`)
			h.Text(e.Player.Phone)
			h.Raw(`</td><td>`)
			h.Text(e.Player.NationalID)
			h.Raw(`</td><td>`)
			h.Text(e.Tournament.Name)
			h.Raw(`</td><td><form action="/verificar-pago" method="POST">`)
			h.Raw(`<input type="hidden" name="inscripcion_id" value="` + id + `">`)
			h.Raw(`<button type="submit">Verificar Pago</button></form></td></tr>`)
		}
		h.Raw(`</tbody></table>`)

		h.Raw(`<h2>Jugadores Verificados (Registro de Kills)</h2>`)
		h.Raw(`<p>Jugadores que ya pagaron. Registra sus kills aquí al terminar la partida.</p>`)
		h.Raw(`<table id="verificados"><thead><tr>`)
		h.Raw(`<th>Nombre del Jugador</th><th>Torneo</th><th>Kills (Registrar)</th>`)
		h.Raw(`</tr></thead><tbody>`)
		if len(data.Verified) == 0 {
			h.Raw(`<tr class="empty"><td colspan="3">No hay jugadores verificados.</td></tr>`)
		}
		for _, e := range data.Verified {
			id := strconv.FormatInt(e.ID, 10)
			h.Raw(`<tr data-inscripcion="` + id + `"><td>`)
			h.Text(e.Player.FullName)
			h.Raw(`</td><td>`)
			h.Text(e.Tournament.Name)
			h.Raw(`</td><td><form class="inline" action="/guardar-kills" method="POST">`)
			h.Raw(`<input type="hidden" name="inscripcion_id" value="` + id + `">`)
			h.Raw(`<input type="number" name="kills" min="0" value="` + strconv.Itoa(e.Kills) + `">`)
			h.Raw(`<button type="submit">Guardar</button></form></td></tr>`)
		}
		h.Raw(`</tbody></table>`)

		backLink(h, "/reporte", "Ver Reporte de Pagos")
		return h.Err()
	})
	return layout.Page(data.PageData, body)
}
