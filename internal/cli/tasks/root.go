// Package tasks implements the tasksdb command line.
package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"dbmanager/internal/repository"
	"dbmanager/internal/service"
)

// Opener opens the relational database.
type Opener func(ctx context.Context) (*gorm.DB, error)

// session opens the database on first use so usage output needs no connection.
type session struct {
	open  Opener
	db    *gorm.DB
	tasks *service.TaskService
	users *service.UserService
}

func (s *session) conn(ctx context.Context) (*gorm.DB, error) {
	if s.db != nil {
		return s.db, nil
	}
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	s.db = db
	s.tasks = service.NewTaskService(repository.NewTaskRepository(db), repository.NewStatusRepository(db))
	s.users = service.NewUserService(repository.NewUserRepository(db))
	return db, nil
}

func (s *session) close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	return sqlDB.Close()
}

// NewRootCmd returns the tasksdb command with every subcommand attached.
func NewRootCmd(open Opener) *cobra.Command {
	s := &session{open: open}
	subcommands := []*cobra.Command{
		createTablesCmd(s),
		seedDataCmd(s),
		tasksByUserCmd(s),
		tasksByStatusCmd(s),
		usersWithNoTasksCmd(s),
		incompleteTasksCmd(s),
		tasksCountByStatusCmd(s),
		addTaskCmd(s),
		updateTaskStatusCmd(s),
		deleteTaskCmd(s),
		findUsersByEmailCmd(s),
		updateUserNameCmd(s),
		addUserCmd(s),
		deleteUserCmd(s),
	}
	names := make([]string, 0, len(subcommands))
	for _, sub := range subcommands {
		names = append(names, sub.Name())
	}

	cmd := &cobra.Command{
		Use:           "tasksdb [command]",
		Short:         "Manage users, statuses and tasks",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: tasksdb [command]")
				fmt.Fprintln(out, "Commands:")
				for _, name := range names {
					fmt.Fprintf(out, "  - %s\n", name)
				}
				return nil
			}
			fmt.Fprintf(out, "Invalid command. Available commands are: [%s]\n", strings.Join(names, ", "))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.close()
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(subcommands...)
	return cmd
}
