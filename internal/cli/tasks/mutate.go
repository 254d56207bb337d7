package tasks

import (
	"fmt"

	"github.com/spf13/cobra"

	"dbmanager/internal/service"
)

func addTaskCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "add_task TITLE DESCRIPTION STATUS USER_ID",
		Short: "Add a task for a user",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[3], "user id")
			if err != nil {
				return err
			}
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			id, err := s.tasks.Add(cmd.Context(), service.TaskInput{
				Title:       args[0],
				Description: args[1],
				Status:      args[2],
				UserID:      userID,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task created: ID %d\n", id)
			return nil
		},
	}
}

func updateTaskStatusCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "update_task_status TASK_ID STATUS",
		Short: "Move a task to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0], "task id")
			if err != nil {
				return err
			}
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			if err := s.tasks.UpdateStatus(cmd.Context(), taskID, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d updated to %q.\n", taskID, args[1])
			return nil
		},
	}
}

func deleteTaskCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete_task TASK_ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0], "task id")
			if err != nil {
				return err
			}
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			if err := s.tasks.Delete(cmd.Context(), taskID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d deleted.\n", taskID)
			return nil
		},
	}
}

func findUsersByEmailCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "find_users_by_email PATTERN",
		Short: "Find users whose email matches a LIKE pattern, e.g. %@example.com",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			users, err := s.users.FindByEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), service.FormatUsers(users))
			return nil
		},
	}
}

func updateUserNameCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "update_user_name USER_ID NAME",
		Short: "Rename a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], "user id")
			if err != nil {
				return err
			}
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			if err := s.users.Rename(cmd.Context(), userID, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %d renamed.\n", userID)
			return nil
		},
	}
}

func addUserCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "add_user FULLNAME EMAIL",
		Short: "Add a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			id, err := s.users.Add(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User created: ID %d\n", id)
			return nil
		},
	}
}

func deleteUserCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete_user USER_ID",
		Short: "Delete a user and all of the user's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], "user id")
			if err != nil {
				return err
			}
			if _, err := s.conn(cmd.Context()); err != nil {
				return err
			}
			if err := s.users.Delete(cmd.Context(), userID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %d deleted.\n", userID)
			return nil
		},
	}
}
