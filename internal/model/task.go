package model

// Task represents a single tracked item owned by a user.
type Task struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(100);not null" json:"title"`
	Description string `json:"description"`
	StatusID    uint   `gorm:"not null" json:"status_id"`
	UserID      uint   `gorm:"not null" json:"user_id"`
}
