package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered shopper or admin. The password is a bcrypt hash and
// never serialised.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`

	// CartData maps item id → size → quantity.
	CartData map[string]map[string]int `bson:"cartData" json:"cartData,omitempty"`
}
