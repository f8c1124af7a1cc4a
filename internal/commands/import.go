package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"fre-insights/internal/models"
)

type importOptions struct {
	user           string
	dateCol        int
	descCol        int
	amountCol      int
	typeCol        int
	refCol         int
	currency       string
	dateFormat     string
	hasHeader      bool
	autoCategorize bool
}

// mapping turns the column flags into a column mapping; negative optional columns are unset
func (o importOptions) mapping() models.ColumnMapping {
	m := models.ColumnMapping{
		Date:        o.dateCol,
		Description: o.descCol,
		Amount:      o.amountCol,
		HasHeader:   o.hasHeader,
	}
	if o.typeCol >= 0 {
		idx := o.typeCol
		m.Type = &idx
	}
	if o.refCol >= 0 {
		idx := o.refCol
		m.Reference = &idx
	}
	return m
}

func newImportCommand() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a bank CSV export for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.user, "user", "", "user id (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().IntVar(&opts.dateCol, "date-col", 0, "zero-based date column")
	cmd.Flags().IntVar(&opts.descCol, "desc-col", 1, "zero-based description column")
	cmd.Flags().IntVar(&opts.amountCol, "amount-col", 2, "zero-based amount column")
	cmd.Flags().IntVar(&opts.typeCol, "type-col", -1, "zero-based debit/credit column, -1 for none")
	cmd.Flags().IntVar(&opts.refCol, "ref-col", -1, "zero-based bank reference column, -1 for none")
	cmd.Flags().StringVar(&opts.currency, "currency", models.CurrencyTRY, "ISO currency code of the export")
	cmd.Flags().StringVar(&opts.dateFormat, "date-format", models.DateFormatISO, "iso, dd.mm.yyyy or mm/dd/yyyy")
	cmd.Flags().BoolVar(&opts.hasHeader, "header", true, "first row is a header")
	cmd.Flags().BoolVar(&opts.autoCategorize, "auto-categorize", true, "assign categories to imported rows")

	return cmd
}

func runImport(cmd *cobra.Command, path string, opts importOptions) error {
	userID, err := parseUserID(opts.user)
	if err != nil {
		return err
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	a, err := openApp(prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.container.Importer.ImportTransactions(cmd.Context(), userID, file, models.ImportRequest{
		FileName:       filepath.Base(path),
		Mapping:        opts.mapping(),
		Currency:       opts.currency,
		DateFormat:     opts.dateFormat,
		AutoCategorize: opts.autoCategorize,
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	printImportResult(cmd.OutOrStdout(), result)
	return nil
}

func printImportResult(w io.Writer, result *models.ImportResult) {
	fmt.Fprintf(w, "imported %d, skipped %d, malformed %d of %d rows in %s\n",
		result.Imported, result.Skipped, result.Malformed, result.Total, result.Duration.Round(time.Millisecond))
	for _, rowErr := range result.Errors {
		fmt.Fprintf(w, "  %s\n", rowErr)
	}
}
