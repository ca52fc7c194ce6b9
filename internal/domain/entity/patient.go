package entity

// Patient is a hospital in-patient whose meals are planned through diet charts.
type Patient struct {
	ID               int    `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"type:varchar(255);not null"`
	Age              int    `gorm:"not null"`
	Gender           string `gorm:"type:varchar(50);not null"`
	RoomNumber       string `gorm:"type:varchar(50);not null"`
	BedNumber        string `gorm:"type:varchar(50);not null"`
	FloorNumber      string `gorm:"type:varchar(50);not null"`
	ContactInfo      string `gorm:"type:varchar(255);not null"`
	EmergencyContact string `gorm:"type:varchar(255);not null"`
	Allergies        string `gorm:"type:text;not null"`
	Diseases         string `gorm:"type:text;not null"`
}

func (Patient) TableName() string {
	return "patients"
}
