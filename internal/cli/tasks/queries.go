package tasks

import (
	"fmt"

	"github.com/spf13/cobra"

	"dbmanager/internal/service"
)

func tasksByUserCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks_by_user [USER_ID]",
		Short: "List the tasks of a user (prompts for the id when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := argOrPrompt(cmd, args, "Enter user ID: ")
			if err != nil {
				return err
			}
			userID, err := parseID(raw, "user id")
			if err != nil {
				return err
			}
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			tasks, err := s.tasks.ByUser(cmd.Context(), userID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), service.FormatTasks(tasks))
			return nil
		},
	}
}

func tasksByStatusCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks_by_status [STATUS]",
		Short: "List tasks in a status (prompts for the name when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := argOrPrompt(cmd, args, "Enter status name: ")
			if err != nil {
				return err
			}
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			tasks, err := s.tasks.ByStatus(cmd.Context(), status)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), service.FormatTasks(tasks))
			return nil
		},
	}
}

func usersWithNoTasksCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "users_with_no_tasks",
		Short: "List users that own no tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			users, err := s.users.WithoutTasks(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), service.FormatUsers(users))
			return nil
		},
	}
}

func incompleteTasksCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "incomplete_tasks",
		Short: "List tasks that are not completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			tasks, err := s.tasks.Incomplete(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), service.FormatTasks(tasks))
			return nil
		},
	}
}

func tasksCountByStatusCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks_count_by_status",
		Short: "Count tasks per status, including empty statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			counts, err := s.tasks.CountByStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), service.FormatStatusCounts(counts))
			return nil
		},
	}
}
