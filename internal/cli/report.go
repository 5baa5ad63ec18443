package cli

import (
	"github.com/spf13/cobra"

	"github.com/torneokills/torneo/internal/api/response"
	"github.com/torneokills/torneo/internal/factory"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print what each verified player is owed for their kills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(appConfig, logger)
			if err != nil {
				return err
			}
			defer closeLogged(app, "storage")

			report, err := app.PayoutService.Report(cmd.Context())
			if err != nil {
				return err
			}

			newOutput(cmd).Print(response.ReportFromService(report))
			return nil
		},
	}
}
