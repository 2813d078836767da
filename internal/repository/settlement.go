package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
)

type SettlementResult struct {
	PaymentID    string `json:"insertedId"`
	DeletedCarts int64  `json:"deletedCount"`
}

// Settler records a payment and removes the cart items it settles.
type Settler interface {
	Settle(ctx context.Context, p models.Payment) (SettlementResult, error)
}

type mongoSettler struct {
	client   *mongo.Client
	payments *mongo.Collection
	carts    *mongo.Collection
}

func NewSettler(client *mongo.Client, database *mongo.Database) Settler {
	return &mongoSettler{
		client:   client,
		payments: database.Collection("payments"),
		carts:    database.Collection("carts"),
	}
}

// Settle inserts the payment record and deletes the referenced cart items.
// The pair runs inside a session transaction when the deployment supports
// one; on a standalone mongod it falls back to the sequential pair, in which
// case the payment insert is durable before cart cleanup is attempted and a
// cleanup failure leaves the record in place with stale cart items behind.
func (s *mongoSettler) Settle(ctx context.Context, p models.Payment) (SettlementResult, error) {
	cartIDs := make([]primitive.ObjectID, 0, len(p.CartIDs))
	for _, id := range p.CartIDs {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return SettlementResult{}, fmt.Errorf("%w: invalid cart id %q", apperr.ErrInvalidArgument, id)
		}
		cartIDs = append(cartIDs, objID)
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}

	session, err := s.client.StartSession()
	if err == nil {
		defer session.EndSession(ctx)
		res, txnErr := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			return s.settleOnce(sc, p, cartIDs)
		})
		if txnErr == nil {
			return res.(SettlementResult), nil
		}
		if !transactionsUnsupported(txnErr) {
			return SettlementResult{}, txnErr
		}
	}

	result, err := s.settleOnce(ctx, p, cartIDs)
	if err != nil {
		return SettlementResult{}, err
	}
	return result, nil
}

func (s *mongoSettler) settleOnce(ctx context.Context, p models.Payment, cartIDs []primitive.ObjectID) (SettlementResult, error) {
	insertRes, err := s.payments.InsertOne(ctx, p)
	if err != nil {
		return SettlementResult{}, err
	}
	deleteRes, err := s.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
	if err != nil {
		return SettlementResult{}, err
	}
	return SettlementResult{
		PaymentID:    insertRes.InsertedID.(primitive.ObjectID).Hex(),
		DeletedCarts: deleteRes.DeletedCount,
	}, nil
}

// transactionsUnsupported detects the standalone-deployment rejection so the
// caller can retry without a transaction.
func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == 20 {
		return true
	}
	return strings.Contains(err.Error(), "Transaction numbers are only allowed")
}
