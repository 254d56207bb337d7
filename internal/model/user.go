package model

// User is a row of the users table.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Fullname string `gorm:"type:varchar(100);not null" json:"fullname"`
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
}
