package service

import (
	"fmt"
	"strings"

	"dbmanager/internal/model"
)

// FormatTasks renders one line per task.
func FormatTasks(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}
	var sb strings.Builder
	for _, task := range tasks {
		sb.WriteString(fmt.Sprintf("Task ID: %d, Title: %s, Description: %s\n",
			task.ID, task.Title, oneLine(task.Description)))
	}
	return sb.String()
}

// FormatUsers renders one line per user.
func FormatUsers(users []model.User) string {
	if len(users) == 0 {
		return "No users found.\n"
	}
	var sb strings.Builder
	for _, user := range users {
		sb.WriteString(fmt.Sprintf("User ID: %d, Name: %s, Email: %s\n", user.ID, user.Fullname, user.Email))
	}
	return sb.String()
}

// FormatStatusCounts renders "<status>: <count>" lines followed by the total.
func FormatStatusCounts(counts []model.StatusCount) string {
	var sb strings.Builder
	var total int64
	for _, c := range counts {
		sb.WriteString(fmt.Sprintf("%s: %d\n", c.Name, c.TaskCount))
		total += c.TaskCount
	}
	sb.WriteString(fmt.Sprintf("total: %d\n", total))
	return sb.String()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
