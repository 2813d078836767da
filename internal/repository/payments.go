package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
)

type PaymentStore interface {
	List(ctx context.Context) ([]models.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
	MarkPaid(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
	// SumByStatus totals the price field of payment documents with the given
	// status, optionally scoped to a seller email. Documents whose price is
	// missing or non-numeric contribute 0.
	SumByStatus(ctx context.Context, status, sellerEmail string) (float64, error)
}

type mongoPaymentStore struct {
	col *mongo.Collection
}

func NewPaymentStore(database *mongo.Database) PaymentStore {
	return &mongoPaymentStore{col: database.Collection("payments")}
}

func (s *mongoPaymentStore) List(ctx context.Context) ([]models.Payment, error) {
	return s.find(ctx, bson.M{})
}

func (s *mongoPaymentStore) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return s.find(ctx, bson.M{"email": email})
}

func (s *mongoPaymentStore) find(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *mongoPaymentStore) MarkPaid(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid payment id %q", apperr.ErrInvalidArgument, id)
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"status": models.StatusPaid}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *mongoPaymentStore) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

func (s *mongoPaymentStore) SumByStatus(ctx context.Context, status, sellerEmail string) (float64, error) {
	filter := bson.M{"status": status}
	if sellerEmail != "" {
		filter["sellerEmail"] = sellerEmail
	}
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var total float64
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return 0, err
		}
		total += coercePrice(doc["price"])
	}
	return total, cursor.Err()
}

// coercePrice interprets the loosely typed price field written by older
// clients. Anything that is not a number or numeric string counts as 0.
func coercePrice(v any) float64 {
	switch p := v.(type) {
	case float64:
		return p
	case float32:
		return float64(p)
	case int:
		return float64(p)
	case int32:
		return float64(p)
	case int64:
		return float64(p)
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(p.String(), 64)
		if err != nil {
			return 0
		}
		return f
	case json.Number:
		f, err := p.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
