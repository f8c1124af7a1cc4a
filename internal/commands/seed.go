package commands

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"fre-insights/internal/models"
	"fre-insights/internal/services"
)

type seedOptions struct {
	user     string
	months   int
	currency string
	seed     uint64
	out      string
}

func newSeedCommand() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a realistic transaction history and import it, or write it as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.user, "user", "", "user id (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().IntVar(&opts.months, "months", 12, "months of history ending today")
	cmd.Flags().StringVar(&opts.currency, "currency", models.CurrencyTRY, "currency of the generated rows")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 42, "random seed; the same seed produces the same history")
	cmd.Flags().StringVar(&opts.out, "out", "", "write the CSV to this path instead of importing it")

	return cmd
}

// generateCSV renders opts.months of history ending at end
func generateCSV(opts seedOptions, userID uuid.UUID, end time.Time) ([]byte, error) {
	generator := services.NewHistoryGenerator(opts.seed)
	start := end.AddDate(0, -opts.months, 0)
	transactions := generator.Generate(userID, start, end, opts.currency)

	var buf bytes.Buffer
	if err := generator.WriteCSV(&buf, transactions); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func runSeed(cmd *cobra.Command, opts seedOptions) error {
	userID, err := parseUserID(opts.user)
	if err != nil {
		return err
	}
	if opts.months < 1 {
		return fmt.Errorf("--months must be at least 1")
	}

	file, err := generateCSV(opts, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("generating history: %w", err)
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, file, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(file), opts.out)
		return nil
	}

	a, err := openApp(prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.container.Importer.ImportTransactions(cmd.Context(), userID, file, models.ImportRequest{
		FileName:       "generated.csv",
		Mapping:        services.GeneratedCSVMapping(),
		Currency:       opts.currency,
		DateFormat:     models.DateFormatISO,
		AutoCategorize: true,
	})
	if err != nil {
		return fmt.Errorf("importing generated history: %w", err)
	}

	printImportResult(cmd.OutOrStdout(), result)
	return nil
}
