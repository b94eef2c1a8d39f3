package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// StatusOrderPlaced is the initial status of every order.
const StatusOrderPlaced = "Order Placed"

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Size      string  `bson:"size,omitempty" json:"size,omitempty"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

// Address is the structured delivery address of an order.
type Address struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Street    string `bson:"street" json:"street"`
	City      string `bson:"city" json:"city"`
	State     string `bson:"state" json:"state"`
	Zipcode   string `bson:"zipcode" json:"zipcode"`
	Country   string `bson:"country" json:"country"`
	Phone     string `bson:"phone" json:"phone"`
}

// SpecialPackaging is an optional gift-wrap add-on on an order.
type SpecialPackaging struct {
	Image string  `bson:"image,omitempty" json:"image,omitempty"`
	Price float64 `bson:"price" json:"price"`
}

// Order references its user by id only; no cross-collection transaction
// coordinates the two documents.
type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID           string             `bson:"userId" json:"userId"`
	Items            []OrderItem        `bson:"items" json:"items"`
	Amount           float64            `bson:"amount" json:"amount"`
	Address          Address            `bson:"address" json:"address"`
	Status           string             `bson:"status" json:"status"`
	PaymentMethod    string             `bson:"paymentMethod" json:"paymentMethod"`
	Payment          bool               `bson:"payment" json:"payment"`
	Date             int64              `bson:"date" json:"date"` // unix ms
	SpecialPackaging *SpecialPackaging  `bson:"specialPackaging,omitempty" json:"specialPackaging,omitempty"`
}
