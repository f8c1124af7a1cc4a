package commands

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"fre-insights/internal/dto"
)

func newSummaryCommand() *cobra.Command {
	var p periodFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a user's monthly income, expense and trend as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(p.user)
			if err != nil {
				return err
			}
			month, year := p.resolve()

			a, err := openApp(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			summary, err := a.container.Summary.GetMonthlySummary(cmd.Context(), userID, month, year)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.NewSummaryResponse(summary))
		},
	}

	p.register(cmd)
	return cmd
}
