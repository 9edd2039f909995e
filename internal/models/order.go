package models

import "time"

// OrderItem is a line item snapshot captured at placement time. Name
// and price are copied from the catalog so later catalog edits never
// change what an order says was bought.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"productId" validate:"required"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"required,gt=0"`
	Size      string  `json:"size" bson:"size" validate:"required"`
}

// Address is the shipping destination for an order.
type Address struct {
	FirstName string `json:"firstName" bson:"firstName" validate:"required"`
	LastName  string `json:"lastName" bson:"lastName" validate:"required"`
	Email     string `json:"email" bson:"email" validate:"required,email"`
	Street    string `json:"street" bson:"street" validate:"required"`
	City      string `json:"city" bson:"city" validate:"required"`
	State     string `json:"state" bson:"state" validate:"required"`
	Zip       string `json:"zip" bson:"zip" validate:"required"`
	Country   string `json:"country" bson:"country" validate:"required"`
	Phone     string `json:"phone" bson:"phone" validate:"required,min=10,numeric"`
}

// Order is an immutable checkout snapshot. Only Status and Payment may
// change after creation.
type Order struct {
	ID      string      `json:"id" bson:"_id"`
	UserID  string      `json:"userId" bson:"userId"`
	Items   []OrderItem `json:"items" bson:"items"`
	Amount  float64     `json:"amount" bson:"amount"`
	Address Address     `json:"address" bson:"address"`
	Status  OrderStatus `json:"status" bson:"status"`
	Date    time.Time   `json:"date" bson:"date"`
	Payment bool        `json:"payment" bson:"payment"`
}
