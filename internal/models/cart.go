package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a pending, unsettled selection awaiting checkout. Items are
// removed in bulk when the payment referencing them is recorded.
type CartItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	MedicineID   string             `bson:"medicineId,omitempty" json:"medicineId,omitempty"`
	MedicineName string             `bson:"medicineName,omitempty" json:"medicineName,omitempty"`
	SellerEmail  string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	ImageURL     string             `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
