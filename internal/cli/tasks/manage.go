package tasks

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"

	"dbmanager/internal/repository"
	"dbmanager/internal/seed"
)

func createTablesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "create_tables",
		Short: "Create the users, status and tasks tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := s.conn(cmd.Context())
			if err != nil {
				return err
			}
			if err := repository.CreateTables(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tables created successfully.")
			return nil
		},
	}
}

func seedDataCmd(s *session) *cobra.Command {
	defaults := seed.DefaultOptions()
	var (
		opts     seed.Options
		fakeSeed int64
	)

	cmd := &cobra.Command{
		Use:   "seed_data",
		Short: "Fill the tables with fake users and tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := s.conn(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := seed.New(db, gofakeit.New(fakeSeed)).Run(cmd.Context(), opts); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Data seeded successfully.")
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Users, "users", defaults.Users, "Number of users to create")
	cmd.Flags().IntVar(&opts.Tasks, "tasks", defaults.Tasks, "Number of tasks to create")
	cmd.Flags().Int64Var(&fakeSeed, "seed", 0, "Fake data seed (0 picks a random one)")
	return cmd
}
