package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Payment records a settled checkout. Status is the only field mutated
// after insertion.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	SellerEmail   string             `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds"`
	MedicineNames []string           `bson:"medicineNames,omitempty" json:"medicineNames,omitempty"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
