package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Medicine struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	GenericName string             `bson:"genericName,omitempty" json:"genericName,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	Unit        string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Discount    float64            `bson:"discount,omitempty" json:"discount,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	ImageURL    string             `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
