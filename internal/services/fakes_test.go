package services

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/repository"
)

type fakeUserStore struct {
	byEmail     map[string]models.User
	insertCalls int
	roleCalls   int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]models.User{}}
}

func (f *fakeUserStore) add(email string, role models.Role) models.User {
	u := models.User{ID: primitive.NewObjectID(), Email: email, Role: role}
	f.byEmail[email] = u
	return u
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) Insert(_ context.Context, u models.User) (string, error) {
	f.insertCalls++
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.byEmail[u.Email] = u
	return u.ID.Hex(), nil
}

func (f *fakeUserStore) UpdateRole(_ context.Context, id string, role models.Role) (int64, error) {
	f.roleCalls++
	for email, u := range f.byEmail {
		if u.ID.Hex() == id {
			u.Role = role
			f.byEmail[email] = u
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	var users []models.User
	for _, u := range f.byEmail {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.byEmail)), nil
}

type fakePaymentStore struct {
	count     int64
	sums      map[string]float64 // keyed status|sellerEmail
	markCalls []string
	err       error
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{sums: map[string]float64{}}
}

func (f *fakePaymentStore) setSum(status, seller string, sum float64) {
	f.sums[status+"|"+seller] = sum
}

func (f *fakePaymentStore) List(context.Context) ([]models.Payment, error) {
	return nil, f.err
}

func (f *fakePaymentStore) ListByEmail(context.Context, string) ([]models.Payment, error) {
	return nil, f.err
}

func (f *fakePaymentStore) MarkPaid(_ context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.markCalls = append(f.markCalls, id)
	return 1, nil
}

func (f *fakePaymentStore) Count(context.Context) (int64, error) {
	return f.count, f.err
}

func (f *fakePaymentStore) SumByStatus(_ context.Context, status, sellerEmail string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.sums[status+"|"+sellerEmail], nil
}

type fakeMedicineStore struct {
	byID    map[string]models.Medicine
	updates map[string]bson.M
	count   int64
}

func newFakeMedicineStore() *fakeMedicineStore {
	return &fakeMedicineStore{byID: map[string]models.Medicine{}, updates: map[string]bson.M{}}
}

func (f *fakeMedicineStore) add(name, seller string) string {
	id := primitive.NewObjectID()
	f.byID[id.Hex()] = models.Medicine{ID: id, Name: name, SellerEmail: seller}
	return id.Hex()
}

func (f *fakeMedicineStore) FindByID(_ context.Context, id string) (*models.Medicine, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &m, nil
}

func (f *fakeMedicineStore) List(context.Context) ([]models.Medicine, error) {
	var medicines []models.Medicine
	for _, m := range f.byID {
		medicines = append(medicines, m)
	}
	return medicines, nil
}

func (f *fakeMedicineStore) ListBySeller(_ context.Context, email string) ([]models.Medicine, error) {
	var medicines []models.Medicine
	for _, m := range f.byID {
		if m.SellerEmail == email {
			medicines = append(medicines, m)
		}
	}
	return medicines, nil
}

func (f *fakeMedicineStore) Insert(_ context.Context, m models.Medicine) (string, error) {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	f.byID[m.ID.Hex()] = m
	return m.ID.Hex(), nil
}

func (f *fakeMedicineStore) Update(_ context.Context, id string, set bson.M) (int64, error) {
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	f.updates[id] = set
	return 1, nil
}

func (f *fakeMedicineStore) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	return 1, nil
}

func (f *fakeMedicineStore) Count(context.Context) (int64, error) {
	if f.count != 0 {
		return f.count, nil
	}
	return int64(len(f.byID)), nil
}

type fakeImageStore struct {
	calls      int
	objectName string
}

func (f *fakeImageStore) Upload(_ context.Context, objectName, _ string, _ io.Reader, _ int64) (string, error) {
	f.calls++
	f.objectName = objectName
	return "http://localhost:9000/medicine-images/" + objectName, nil
}

// fakeSettler tracks which cart ids still exist and every payment recorded.
type fakeSettler struct {
	carts   map[string]bool
	settled []models.Payment
}

func newFakeSettler(cartIDs ...string) *fakeSettler {
	carts := map[string]bool{}
	for _, id := range cartIDs {
		carts[id] = true
	}
	return &fakeSettler{carts: carts}
}

func (f *fakeSettler) Settle(_ context.Context, p models.Payment) (repository.SettlementResult, error) {
	var deleted int64
	for _, id := range p.CartIDs {
		if f.carts[id] {
			delete(f.carts, id)
			deleted++
		}
	}
	f.settled = append(f.settled, p)
	return repository.SettlementResult{
		PaymentID:    fmt.Sprintf("payment-%d", len(f.settled)),
		DeletedCarts: deleted,
	}, nil
}

type fakeProvider struct {
	calls  int
	amount int64
	secret string
	err    error
}

func (f *fakeProvider) CreateIntent(_ context.Context, amount int64, _ string) (string, error) {
	f.calls++
	f.amount = amount
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}
