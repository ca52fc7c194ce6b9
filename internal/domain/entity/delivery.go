package entity

type Delivery struct {
	ID             int    `gorm:"primaryKey;autoIncrement"`
	DeliveryStatus string `gorm:"type:varchar(100)"`
	MealBoxDetails RawJSON
}

func (Delivery) TableName() string {
	return "deliveries"
}
