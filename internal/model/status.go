package model

// Canonical status names seeded at table creation.
const (
	StatusNew        = "new"
	StatusInProgress = "in progress"
	StatusCompleted  = "completed"
)

// DefaultStatuses lists the canonical statuses in seed order.
var DefaultStatuses = []string{StatusNew, StatusInProgress, StatusCompleted}

// Status is a row of the status table.
type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

// TableName keeps the singular table name used by the schema.
func (Status) TableName() string {
	return "status"
}

// StatusCount is one row of the tasks-per-status report.
type StatusCount struct {
	Name      string `json:"name"`
	TaskCount int64  `json:"task_count"`
}
