package cli

import (
	"fmt"
	"time"

	"github.com/rustyeddy/carloan/journal"
	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Query journaled scenarios",
		Long: `Query scenarios recorded in the SQLite journal.

Subcommands:
  show  - Show one scenario by ID
  list  - List the latest scenarios of one kind
  today - List scenarios computed today
  day   - List scenarios computed on a specific day

Examples:
  carloan journal show <id> --db carloan.sqlite
  carloan journal list --kind prepay
  carloan journal day 2026-01-15`,
	}

	open := func() (*journal.SQLite, error) {
		path := app.cfg.Journal.DBPath
		if path == "" {
			path = "./carloan.sqlite"
		}
		j, err := journal.NewSQLite(path)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
		return j, nil
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := open()
			if err != nil {
				return err
			}
			defer j.Close()

			rec, err := j.GetScenario(args[0])
			if err != nil {
				return fmt.Errorf("get scenario: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), journal.FormatScenarioOrg(rec))
			return nil
		},
	}

	var (
		kind  string
		limit int
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the latest scenarios of one kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := open()
			if err != nil {
				return err
			}
			defer j.Close()

			recs, err := j.ListScenariosByKind(journal.Kind(kind), limit)
			if err != nil {
				return fmt.Errorf("query scenarios: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), journal.FormatScenariosOrg(recs))
			return nil
		},
	}
	listCmd.Flags().StringVarP(&kind, "kind", "k", string(journal.KindEMI), "emi|prepay|reduce-emi|stepup|shorten|schedule|afford")
	listCmd.Flags().IntVarP(&limit, "limit", "n", 20, "most recent scenarios to show (0 for all)")

	listDay := func(cmd *cobra.Command, day string) error {
		start, end, err := dayBounds(time.Local, day)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}

		j, err := open()
		if err != nil {
			return err
		}
		defer j.Close()

		recs, err := j.ListScenariosBetween(start, end)
		if err != nil {
			return fmt.Errorf("query scenarios: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), journal.FormatScenariosOrg(recs))
		return nil
	}

	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "List scenarios computed today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listDay(cmd, time.Now().Format("2006-01-02"))
		},
	}

	dayCmd := &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "List scenarios computed on a specific day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listDay(cmd, args[0])
		},
	}

	cmd.AddCommand(showCmd, listCmd, todayCmd, dayCmd)
	return cmd
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
