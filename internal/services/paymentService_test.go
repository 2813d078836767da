package services

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		want    int64
		wantErr bool
	}{
		{"whole", 10, 1000, false},
		{"cents", 5.99, 599, false},
		{"rounds up", 10.555, 1056, false},
		{"rounds sub-cent", 0.005, 1, false},
		{"zero", 0, 0, true},
		{"negative", -5, 0, true},
		{"nan", math.NaN(), 0, true},
		{"inf", math.Inf(1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinorUnits(tt.price)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newPaymentService(store *fakePaymentStore, settler *fakeSettler, provider *fakeProvider) *PaymentService {
	return NewPaymentService(store, settler, provider, zap.NewNop().Sugar())
}

func TestCreateIntent(t *testing.T) {
	provider := &fakeProvider{secret: "pi_secret_123"}
	svc := newPaymentService(newFakePaymentStore(), newFakeSettler(), provider)

	secret, err := svc.CreateIntent(context.Background(), 19.99)
	require.NoError(t, err)
	assert.Equal(t, "pi_secret_123", secret)
	assert.Equal(t, int64(1999), provider.amount)
}

func TestCreateIntentInvalidPriceSkipsProvider(t *testing.T) {
	provider := &fakeProvider{secret: "pi_secret_123"}
	svc := newPaymentService(newFakePaymentStore(), newFakeSettler(), provider)

	for _, price := range []float64{0, -3, math.NaN()} {
		_, err := svc.CreateIntent(context.Background(), price)
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	}
	assert.Equal(t, 0, provider.calls)
}

func TestCreateIntentProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: apperr.ErrUpstream}
	svc := newPaymentService(newFakePaymentStore(), newFakeSettler(), provider)

	_, err := svc.CreateIntent(context.Background(), 10)
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestSettleFillsDefaults(t *testing.T) {
	settler := newFakeSettler("c1", "c2")
	svc := newPaymentService(newFakePaymentStore(), settler, &fakeProvider{})

	result, err := svc.Settle(context.Background(), models.Payment{
		Email:   "buyer@example.com",
		Price:   15,
		CartIDs: []string{"c1", "c2"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.DeletedCarts)

	require.Len(t, settler.settled, 1)
	recorded := settler.settled[0]
	assert.Equal(t, models.StatusPending, recorded.Status)
	assert.NotEmpty(t, recorded.TransactionID)
	assert.False(t, recorded.CreatedAt.IsZero())
}

func TestSettleHasNoIdempotenceGuard(t *testing.T) {
	settler := newFakeSettler("c1", "c2")
	svc := newPaymentService(newFakePaymentStore(), settler, &fakeProvider{})
	payment := models.Payment{Email: "buyer@example.com", Price: 15, CartIDs: []string{"c1", "c2"}}

	first, err := svc.Settle(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.DeletedCarts)

	// Re-running the same settlement records a second payment but finds no
	// cart items left to delete.
	second, err := svc.Settle(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.DeletedCarts)
	assert.Len(t, settler.settled, 2)
}

func TestSettleKeepsProvidedStatus(t *testing.T) {
	settler := newFakeSettler()
	svc := newPaymentService(newFakePaymentStore(), settler, &fakeProvider{})

	_, err := svc.Settle(context.Background(), models.Payment{
		Email:  "buyer@example.com",
		Status: models.StatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, settler.settled[0].Status)
}

func TestSettleRequiresPayerEmail(t *testing.T) {
	svc := newPaymentService(newFakePaymentStore(), newFakeSettler(), &fakeProvider{})
	_, err := svc.Settle(context.Background(), models.Payment{Price: 10})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestMarkPaid(t *testing.T) {
	store := newFakePaymentStore()
	svc := newPaymentService(store, newFakeSettler(), &fakeProvider{})

	modified, err := svc.MarkPaid(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)
	assert.Equal(t, []string{"abc123"}, store.markCalls)
}
