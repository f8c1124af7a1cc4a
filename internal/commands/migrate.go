package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fre-insights/internal/config"
	"fre-insights/internal/database"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate up|down [steps]|status",
		Short: "Manage the database schema",
		Long: "Applies the SQL migrations in MIGRATIONS_PATH to postgres. " +
			"With DB_DRIVER=sqlite, up runs the gorm AutoMigrate instead.",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args)
		},
	}
	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()

	if cfg.Database.Driver == config.DriverSQLite {
		if args[0] != "up" {
			return fmt.Errorf("sqlite databases only support migrate up")
		}
		if err := db.AutoMigrate(); err != nil {
			return err
		}
		fmt.Fprintln(out, "schema migrated")
		return nil
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	runner := database.NewMigrationRunner(sqlDB, cfg.Database.MigrationsPath)

	switch args[0] {
	case "up":
		if err := runner.RunMigrations(); err != nil {
			return err
		}
	case "down":
		steps := 1
		if len(args) == 2 {
			if steps, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("steps must be a number: %w", err)
			}
		}
		if err := runner.Rollback(steps); err != nil {
			return err
		}
	case "status":
	default:
		return fmt.Errorf("unknown migrate action %q", args[0])
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "version %d, dirty %v\n", version, dirty)
	return nil
}
