package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/repository"
)

// ImageStore uploads a catalog image and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error)
}

// MedicineService manages the catalog. Sellers operate on their own entries,
// admins on anyone's.
type MedicineService struct {
	medicines repository.MedicineStore
	users     repository.UserStore
	images    ImageStore
	log       *zap.SugaredLogger
}

func NewMedicineService(medicines repository.MedicineStore, users repository.UserStore, images ImageStore, log *zap.SugaredLogger) *MedicineService {
	return &MedicineService{medicines: medicines, users: users, images: images, log: log}
}

func (s *MedicineService) List(ctx context.Context) ([]models.Medicine, error) {
	return s.medicines.List(ctx)
}

func (s *MedicineService) ListBySeller(ctx context.Context, requester, sellerEmail string) ([]models.Medicine, error) {
	if err := s.canManage(ctx, requester, sellerEmail); err != nil {
		return nil, err
	}
	return s.medicines.ListBySeller(ctx, sellerEmail)
}

func (s *MedicineService) Create(ctx context.Context, requester string, m models.Medicine) (string, error) {
	if m.Name == "" {
		return "", fmt.Errorf("%w: name is required", apperr.ErrInvalidArgument)
	}
	m.SellerEmail = requester
	m.ImageURL = ""
	return s.medicines.Insert(ctx, m)
}

// MedicineUpdate carries the mutable catalog fields; nil means untouched.
type MedicineUpdate struct {
	Name        *string  `json:"name"`
	GenericName *string  `json:"genericName"`
	Category    *string  `json:"category"`
	Company     *string  `json:"company"`
	Unit        *string  `json:"unit"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Discount    *float64 `json:"discount"`
	Quantity    *int     `json:"quantity"`
}

func (u MedicineUpdate) set() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.GenericName != nil {
		set["genericName"] = *u.GenericName
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Company != nil {
		set["company"] = *u.Company
	}
	if u.Unit != nil {
		set["unit"] = *u.Unit
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Discount != nil {
		set["discount"] = *u.Discount
	}
	if u.Quantity != nil {
		set["quantity"] = *u.Quantity
	}
	return set
}

func (s *MedicineService) Update(ctx context.Context, requester, id string, update MedicineUpdate) (int64, error) {
	set := update.set()
	if len(set) == 0 {
		return 0, fmt.Errorf("%w: nothing to update", apperr.ErrInvalidArgument)
	}
	medicine, err := s.medicines.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.canManage(ctx, requester, medicine.SellerEmail); err != nil {
		return 0, err
	}
	return s.medicines.Update(ctx, id, set)
}

func (s *MedicineService) Delete(ctx context.Context, requester, id string) (int64, error) {
	medicine, err := s.medicines.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.canManage(ctx, requester, medicine.SellerEmail); err != nil {
		return 0, err
	}
	return s.medicines.Delete(ctx, id)
}

// AttachImage uploads the catalog photo and records its URL on the entry.
func (s *MedicineService) AttachImage(ctx context.Context, requester, id, filename, contentType string, r io.Reader, size int64) (string, error) {
	medicine, err := s.medicines.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.canManage(ctx, requester, medicine.SellerEmail); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("%s_%s", id, filename)
	url, err := s.images.Upload(ctx, objectName, contentType, r, size)
	if err != nil {
		return "", err
	}
	if _, err := s.medicines.Update(ctx, id, bson.M{"imageURL": url}); err != nil {
		return "", err
	}
	s.log.Infow("catalog image attached", "medicine_id", id, "url", url)
	return url, nil
}

// canManage allows the owning seller and any admin.
func (s *MedicineService) canManage(ctx context.Context, requester, sellerEmail string) error {
	if requester == sellerEmail {
		return nil
	}
	user, err := s.users.FindByEmail(ctx, requester)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.ErrForbidden
	}
	if err != nil {
		return err
	}
	if user.Role != models.RoleAdmin {
		return apperr.ErrForbidden
	}
	return nil
}
