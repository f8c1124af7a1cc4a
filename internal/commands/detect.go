package commands

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"fre-insights/internal/dto"
)

type periodFlags struct {
	user  string
	month int
	year  int
}

func (p *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.user, "user", "", "user id (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().IntVar(&p.month, "month", 0, "month 1-12, defaults to the current month")
	cmd.Flags().IntVar(&p.year, "year", 0, "year, defaults to the current year")
}

func (p *periodFlags) resolve() (int, int) {
	return dto.PeriodQuery{Month: p.month, Year: p.year}.Resolve(time.Now().UTC())
}

func newDetectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Run the insight detectors for a user and print the findings as JSON",
	}

	cmd.AddCommand(
		newDetectSubscriptionsCommand(),
		newDetectAnomaliesCommand(),
		newDetectLeaksCommand(),
		newDetectAllCommand(),
	)
	return cmd
}

func newDetectSubscriptionsCommand() *cobra.Command {
	var (
		user     string
		lookback int
		asOf     string
	)

	cmd := &cobra.Command{
		Use:   "subscriptions",
		Short: "Find recurring charges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(user)
			if err != nil {
				return err
			}
			now := time.Now().UTC()
			if asOf != "" {
				if now, err = time.Parse(dto.DateLayout, asOf); err != nil {
					return fmt.Errorf("--as-of must be YYYY-MM-DD: %w", err)
				}
			}

			a, err := openApp(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			defer a.Close()

			if lookback == 0 {
				lookback = a.cfg.Insights.DefaultLookbackMonths
			}
			findings, err := a.container.Subscriptions.DetectSubscriptions(cmd.Context(), userID, lookback, now)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.SubscriptionsResponse{
				Subscriptions: dto.NewSubscriptionResponses(findings),
			})
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user id (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().IntVar(&lookback, "lookback", 0, "months of history to scan, defaults to INSIGHTS_LOOKBACK_MONTHS")
	cmd.Flags().StringVar(&asOf, "as-of", "", "evaluation date YYYY-MM-DD, defaults to today")
	return cmd
}

func newDetectAnomaliesCommand() *cobra.Command {
	var p periodFlags

	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "Find transactions far above their usual amount",
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

			findings, err := a.container.Anomalies.DetectAnomalies(cmd.Context(), userID, month, year)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.AnomaliesResponse{
				Month:     month,
				Year:      year,
				Anomalies: dto.NewAnomalyResponses(findings),
			})
		},
	}

	p.register(cmd)
	return cmd
}

func newDetectLeaksCommand() *cobra.Command {
	var p periodFlags

	cmd := &cobra.Command{
		Use:   "leaks",
		Short: "Rank categories by month-over-month spending growth",
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

			findings, err := a.container.Leaks.FindTopLeaks(cmd.Context(), userID, month, year)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.LeaksResponse{
				Month: month,
				Year:  year,
				Leaks: dto.NewLeakResponses(findings),
			})
		},
	}

	p.register(cmd)
	return cmd
}

func newDetectAllCommand() *cobra.Command {
	var (
		p        periodFlags
		lookback int
	)

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every detector for one month",
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

			if lookback == 0 {
				lookback = a.cfg.Insights.DefaultLookbackMonths
			}
			report, err := a.container.Insights.GetInsights(cmd.Context(), userID, month, year, lookback)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.NewInsightsResponse(report))
		},
	}

	p.register(cmd)
	cmd.Flags().IntVar(&lookback, "lookback", 0, "subscription lookback in months")
	return cmd
}
