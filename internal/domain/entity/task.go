package entity

// Task is a piece of pantry work assigned to a staff member.
// StaffID is a loose reference and is never checked against the staff table.
type Task struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Description string `gorm:"type:text"`
	StaffID     *int   `gorm:"index"`
	Completed   bool   `gorm:"not null;default:false"`
}

func (Task) TableName() string {
	return "tasks"
}
