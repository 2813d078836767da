package services

import (
	"context"
	"fmt"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/repository"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/utils"
)

type AdminStats struct {
	Users         int64   `json:"users"`
	MedicineItems int64   `json:"medicineItems"`
	Orders        int64   `json:"orders"`
	Revenue       float64 `json:"revenue"`
	TotalPaid     float64 `json:"totalPaid"`
	TotalPending  float64 `json:"totalPending"`
}

type SellerStats struct {
	TotalPaidRevenue    float64 `json:"totalPaidRevenue"`
	TotalPendingRevenue float64 `json:"totalPendingRevenue"`
}

// StatsService derives dashboard aggregates from the payment records the
// settlement flow writes. Read-only.
type StatsService struct {
	users     repository.UserStore
	medicines repository.MedicineStore
	payments  repository.PaymentStore
}

func NewStatsService(users repository.UserStore, medicines repository.MedicineStore, payments repository.PaymentStore) *StatsService {
	return &StatsService{users: users, medicines: medicines, payments: payments}
}

// AdminStats fans the independent count and sum queries out in parallel.
// Revenue is the paid total.
func (s *StatsService) AdminStats(ctx context.Context) (*AdminStats, error) {
	tasks := []utils.ParallelTask{
		func() (any, error) { return s.users.Count(ctx) },
		func() (any, error) { return s.medicines.Count(ctx) },
		func() (any, error) { return s.payments.Count(ctx) },
		func() (any, error) { return s.payments.SumByStatus(ctx, models.StatusPaid, "") },
		func() (any, error) { return s.payments.SumByStatus(ctx, models.StatusPending, "") },
	}
	results, errs := utils.RunParallelTasks(tasks)
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: stats query failed: %v", apperr.ErrUpstream, err)
		}
	}

	paid := results[3].(float64)
	pending := results[4].(float64)
	return &AdminStats{
		Users:         results[0].(int64),
		MedicineItems: results[1].(int64),
		Orders:        results[2].(int64),
		Revenue:       paid,
		TotalPaid:     paid,
		TotalPending:  pending,
	}, nil
}

func (s *StatsService) SellerStats(ctx context.Context, sellerEmail string) (*SellerStats, error) {
	if sellerEmail == "" {
		return nil, fmt.Errorf("%w: email is required", apperr.ErrInvalidArgument)
	}
	tasks := []utils.ParallelTask{
		func() (any, error) { return s.payments.SumByStatus(ctx, models.StatusPaid, sellerEmail) },
		func() (any, error) { return s.payments.SumByStatus(ctx, models.StatusPending, sellerEmail) },
	}
	results, errs := utils.RunParallelTasks(tasks)
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: stats query failed: %v", apperr.ErrUpstream, err)
		}
	}
	return &SellerStats{
		TotalPaidRevenue:    results[0].(float64),
		TotalPendingRevenue: results[1].(float64),
	}, nil
}
