package entity

// DietChart is a meal plan entry for a patient.
// PatientID is not constrained at the database level; deleting a patient
// removes its charts explicitly.
type DietChart struct {
	ID           int     `gorm:"primaryKey;autoIncrement"`
	PatientID    *int    `gorm:"index"`
	MealType     *string `gorm:"type:varchar(100)"`
	Instructions *string `gorm:"type:text"`
	Ingredients  RawJSON
}

func (DietChart) TableName() string {
	return "diet_charts"
}
