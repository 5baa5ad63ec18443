package response

import (
	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/services/payout"
)

// Tournament is one entry of the form's tournament select
type Tournament struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// TournamentFromModel converts a model.Tournament
func TournamentFromModel(t model.Tournament) Tournament {
	return Tournament{ID: t.ID, Name: t.Name}
}

// FormData is the payload the entry form script loads on start
type FormData struct {
	Rate        float64      `json:"tasa"`
	EntryFeeBs  string       `json:"montoBs"`
	Tournaments []Tournament `json:"listaTorneos"`
}

// FormDataFromService converts payout.FormData
func FormDataFromService(d *payout.FormData) FormData {
	tournaments := make([]Tournament, len(d.Tournaments))
	for i, t := range d.Tournaments {
		tournaments[i] = TournamentFromModel(t)
	}
	return FormData{
		Rate:        d.Rate,
		EntryFeeBs:  d.EntryFeeBs,
		Tournaments: tournaments,
	}
}

// Health is the health check payload
type Health struct {
	Status string `json:"status"`
}

// ReportRow is one payout line
type ReportRow struct {
	EnrollmentID int64  `json:"inscripcion_id"`
	Name         string `json:"nombre_completo"`
	Kills        int    `json:"kills"`
	Phone        string `json:"telefono"`
	NationalID   string `json:"cedula"`
	Bank         string `json:"banco"`
	AmountUSD    string `json:"monto_usd"`
	AmountBs     string `json:"monto_bs"`
}

// Report is the payout report. Amounts are two-decimal strings.
type Report struct {
	Rate     float64     `json:"tasa"`
	Rows     []ReportRow `json:"jugadores"`
	TotalUSD string      `json:"total_usd"`
	TotalBs  string      `json:"total_bs"`
}

// ReportFromService converts payout.Report
func ReportFromService(r *payout.Report) Report {
	rows := make([]ReportRow, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = ReportRow{
			EnrollmentID: row.ID,
			Name:         row.Player.FullName,
			Kills:        row.Kills,
			Phone:        row.Player.Phone,
			NationalID:   row.Player.NationalID,
			Bank:         row.Player.Bank,
			AmountUSD:    payout.FormatAmount(row.AmountUSD),
			AmountBs:     payout.FormatAmount(row.AmountLocal),
		}
	}
	return Report{
		Rate:     r.Rate,
		Rows:     rows,
		TotalUSD: payout.FormatAmount(r.TotalUSD),
		TotalBs:  payout.FormatAmount(r.TotalLocal),
	}
}
