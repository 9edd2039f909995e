package models

import "time"

// Product represents a catalog entry. The order flow reads it to
// resolve prices and names at placement time; catalog management
// itself happens elsewhere.
type Product struct {
	ID          string    `json:"id" bson:"_id" validate:"omitempty,uuid"`
	Name        string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Description string    `json:"description" bson:"description" validate:"omitempty,max=500"`
	Price       float64   `json:"price" bson:"price" validate:"required,gt=0"`
	Sizes       []string  `json:"sizes" bson:"sizes"`
	Images      []string  `json:"images" bson:"images"`
	Category    string    `json:"category" bson:"category"`
	Date        time.Time `json:"date" bson:"date"`
}
