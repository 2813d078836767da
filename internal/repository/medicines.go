package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
)

type MedicineStore interface {
	FindByID(ctx context.Context, id string) (*models.Medicine, error)
	List(ctx context.Context) ([]models.Medicine, error)
	ListBySeller(ctx context.Context, email string) ([]models.Medicine, error)
	Insert(ctx context.Context, m models.Medicine) (string, error)
	Update(ctx context.Context, id string, set bson.M) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type mongoMedicineStore struct {
	col *mongo.Collection
}

// NewMedicineStore uses the legacy "myMedicine" collection name the catalog
// data lives in.
func NewMedicineStore(database *mongo.Database) MedicineStore {
	return &mongoMedicineStore{col: database.Collection("myMedicine")}
}

func (s *mongoMedicineStore) FindByID(ctx context.Context, id string) (*models.Medicine, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid medicine id %q", apperr.ErrInvalidArgument, id)
	}
	var medicine models.Medicine
	err = s.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&medicine)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (s *mongoMedicineStore) List(ctx context.Context) ([]models.Medicine, error) {
	return s.find(ctx, bson.M{})
}

func (s *mongoMedicineStore) ListBySeller(ctx context.Context, email string) ([]models.Medicine, error) {
	return s.find(ctx, bson.M{"sellerEmail": email})
}

func (s *mongoMedicineStore) find(ctx context.Context, filter bson.M) ([]models.Medicine, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var medicines []models.Medicine
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

func (s *mongoMedicineStore) Insert(ctx context.Context, m models.Medicine) (string, error) {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	res, err := s.col.InsertOne(ctx, m)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *mongoMedicineStore) Update(ctx context.Context, id string, set bson.M) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid medicine id %q", apperr.ErrInvalidArgument, id)
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *mongoMedicineStore) Delete(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid medicine id %q", apperr.ErrInvalidArgument, id)
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *mongoMedicineStore) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}
