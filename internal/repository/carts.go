package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
)

type CartStore interface {
	Insert(ctx context.Context, item models.CartItem) (string, error)
	// List returns every cart item, or only the given buyer's when email is
	// non-empty.
	List(ctx context.Context, email string) ([]models.CartItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type mongoCartStore struct {
	col *mongo.Collection
}

func NewCartStore(database *mongo.Database) CartStore {
	return &mongoCartStore{col: database.Collection("carts")}
}

func (s *mongoCartStore) Insert(ctx context.Context, item models.CartItem) (string, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	res, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *mongoCartStore) List(ctx context.Context, email string) ([]models.CartItem, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoCartStore) UpdateQuantity(ctx context.Context, id string, quantity int) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid cart id %q", apperr.ErrInvalidArgument, id)
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *mongoCartStore) Delete(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid cart id %q", apperr.ErrInvalidArgument, id)
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
