package entity

type Staff struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255)"`
	Role        string `gorm:"type:varchar(100)"`
	ContactInfo string `gorm:"type:varchar(255)"`
}

func (Staff) TableName() string {
	return "staff"
}
