package levels

import "time"

// CustomLevel is a user-defined level code.
type CustomLevel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(191);uniqueIndex;not null"`
	Code      string    `gorm:"column:code;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName returns the table backing custom levels.
func (CustomLevel) TableName() string {
	return "custom_levels"
}

// Level is a named level code as served to clients.
type Level struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Custom bool   `json:"custom"`
}
