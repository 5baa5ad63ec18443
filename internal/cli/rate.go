package cli

import (
	"github.com/spf13/cobra"

	"github.com/torneokills/torneo/internal/api/response"
	"github.com/torneokills/torneo/internal/factory"
)

func newRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate",
		Short: "Print today's exchange rate, the entry fee in Bs. and the open tournaments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(appConfig, logger)
			if err != nil {
				return err
			}
			defer closeLogged(app, "storage")

			data, err := app.PayoutService.FormData(cmd.Context())
			if err != nil {
				return err
			}

			newOutput(cmd).Print(response.FormDataFromService(data))
			return nil
		},
	}
}
