package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/torneokills/torneo/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Tournament:
		o.printTournament(v)
	case response.FormData:
		o.printFormData(v)
	case response.Report:
		o.printReport(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printTournament(t response.Tournament) {
	fmt.Fprintf(o.out, "Tournament: %s (%d)\n", t.Name, t.ID)
}

func (o *Output) printFormData(d response.FormData) {
	fmt.Fprintf(o.out, "Tasa BCV: %v Bs.\n", d.Rate)
	fmt.Fprintf(o.out, "Inscripción: %s Bs.\n", d.EntryFeeBs)
	if len(d.Tournaments) == 0 {
		fmt.Fprintln(o.out, "No hay torneos disponibles")
		return
	}
	fmt.Fprintf(o.out, "Torneos (%d):\n", len(d.Tournaments))
	for _, t := range d.Tournaments {
		fmt.Fprintf(o.out, "  - %s (%d)\n", t.Name, t.ID)
	}
}

func (o *Output) printReport(r response.Report) {
	fmt.Fprintf(o.out, "Tasa BCV: %v Bs.\n", r.Rate)
	if len(r.Rows) == 0 {
		fmt.Fprintln(o.out, "Ningún jugador verificado tiene kills registradas.")
	} else {
		tw := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "JUGADOR\tKILLS\tTELÉFONO\tCÉDULA\tBANCO\tUSD\tBS")
		for _, row := range r.Rows {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t$%s\t%s Bs.\n",
				row.Name, row.Kills, row.Phone, row.NationalID, row.Bank, row.AmountUSD, row.AmountBs)
		}
		_ = tw.Flush()
	}
	fmt.Fprintf(o.out, "TOTALES A PAGAR: $%s = %s Bs.\n", r.TotalUSD, r.TotalBs)
}
