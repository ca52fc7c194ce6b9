package entity

// All returns every model owned by the service, in migration order.
func All() []interface{} {
	return []interface{}{
		&Patient{},
		&DietChart{},
		&Staff{},
		&Task{},
		&Delivery{},
	}
}
