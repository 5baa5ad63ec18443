package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/torneokills/torneo/internal/services/payout"
	"github.com/torneokills/torneo/internal/web/templates/layout"
)

// ReportData is the payout report content
type ReportData struct {
	layout.PageData
	Report *payout.Report
}

// Report renders what each verified player with kills is owed
func Report(data ReportData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r := data.Report
		h := layout.NewHTML(w)
		h.Raw(`<h1>Reporte de Pagos (Kills)</h1>`)
		h.Raw(`<p>Lista de pagos a realizar a los jugadores. (Tasa BCV usada: <span id="tasa">`)
		h.Text(strconv.FormatFloat(r.Rate, 'f', -1, 64))
		h.Raw(`</span> Bs.)</p>`)

		h.Raw(`<table id="reporte"><thead><tr>`)
		h.Raw(`<th>Nombre del Jugador</th><th>Kills</th><th>Teléfono (Pago Móvil)</th><th>Cédula</th>`)
		h.Raw(`<th>Banco</th><th>Monto ($)</th><th>Monto a Pagar (Bs.)</th>`)
		h.Raw(`</tr></thead><tbody>`)
		if len(r.Rows) == 0 {
			h.Raw(`<tr class="empty"><td colspan="7">Ningún jugador verificado tiene kills registradas.</td></tr>`)
		}
		for _, row := range r.Rows {
			h.Raw(`<tr><td>`)
			h.Text(row.Player.FullName)
			h.Raw(`</td><td>`)
			h.Raw(strconv.Itoa(row.Kills))
			h.Raw(`</td><td>`)
			h.Text(row.Player.Phone)
			h.Raw(`</td><td>`)
			h.Text(row.Player.NationalID)
			h.Raw(`</td><td>`)
			h.Text(row.Player.Bank)
			h.Raw(`</td><td class="usd">$`)
			h.Raw(payout.FormatAmount(row.AmountUSD))
			h.Raw(`</td><td class="bs"><strong>`)
			h.Raw(payout.FormatAmount(row.AmountLocal))
			h.Raw(` Bs.</strong></td></tr>`)
		}
		h.Raw(`</tbody><tfoot><tr class="total">`)
		h.Raw(`<td colspan="5">TOTALES A PAGAR:</td>`)
		h.Raw(`<td class="total-usd">$` + payout.FormatAmount(r.TotalUSD) + `</td>`)
		h.Raw(`<td class="total-bs">` + payout.FormatAmount(r.TotalLocal) + ` Bs.</td>`)
		h.Raw(`</tr></tfoot></table>`)

		backLink(h, "/admin", "Volver al Panel de Admin")
		return h.Err()
	})
	return layout.Page(data.PageData, body)
}
