package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/torneokills/torneo/internal/api/response"
	"github.com/torneokills/torneo/internal/factory"
	"github.com/torneokills/torneo/internal/model"
)

func newSeedTournamentCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "seed-tournament",
		Short: "Create a tournament",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := factory.OpenStorage(appConfig)
			if err != nil {
				return err
			}
			defer closeLogged(store, "storage")

			tournament := &model.Tournament{Name: strings.TrimSpace(name)}
			if tournament.Name == "" {
				tournament.Name = model.DefaultTournamentName
			}
			if err := store.CreateTournament(cmd.Context(), tournament); err != nil {
				return err
			}

			newOutput(cmd).Print(response.TournamentFromModel(*tournament))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", model.DefaultTournamentName, "Tournament name")

	return cmd
}
