package models

// User represents a customer of the store. The cart lives embedded in
// the user document so cart reads and writes touch a single record.
type User struct {
	ID       string `json:"id" bson:"_id" validate:"omitempty,uuid"`
	Name     string `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Password string `json:"-" bson:"password" validate:"required,min=8"` // bcrypt hash, never serialized
	CartData Cart   `json:"cartData" bson:"cartData"`
}
