package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/dtos"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/models"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/repositories"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

type DonationService interface {
	// Record writes one donation submission: one row per selected item
	// plus a single donor-count increment, atomically.
	Record(ctx context.Context, req dtos.DonateRequest) error
	TotalDonors(ctx context.Context) (int64, error)
}

type donationService struct {
	userRepo     repositories.UserRepository
	ngoRepo      repositories.NGORepository
	donationRepo repositories.DonationRepository
	countRepo    repositories.DonorCountRepository

	now func() time.Time
}

func NewDonationService(
	userRepo repositories.UserRepository,
	ngoRepo repositories.NGORepository,
	donationRepo repositories.DonationRepository,
	countRepo repositories.DonorCountRepository,
) DonationService {
	return &donationService{
		userRepo:     userRepo,
		ngoRepo:      ngoRepo,
		donationRepo: donationRepo,
		countRepo:    countRepo,
		now:          time.Now,
	}
}

func (s *donationService) Record(ctx context.Context, req dtos.DonateRequest) error {
	user, err := s.userRepo.GetByEmail(ctx, req.UserEmail)
	if err != nil {
		if err == pgx.ErrNoRows {
			return utils.ErrUserNotFound
		}
		return err
	}

	if _, err := s.ngoRepo.GetByID(ctx, req.NGOID); err != nil {
		if err == pgx.ErrNoRows {
			return utils.ErrNGONotFound
		}
		return err
	}

	var resaleAmount *float64
	if req.ActionType == models.ActionResale {
		if req.OriginalCost == nil || req.PurchaseYear == nil {
			return utils.ErrResaleFieldsMissing
		}
		if *req.OriginalCost <= 0 {
			return utils.ErrResaleFieldsInvalid
		}
		amount := ResaleAmount(*req.OriginalCost, *req.PurchaseYear, s.now().Year())
		resaleAmount = &amount
	}

	donations := make([]*models.Donation, 0, len(req.SelectedItems))
	for _, item := range req.SelectedItems {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		donations = append(donations, &models.Donation{
			UserID:       user.ID,
			NGOID:        req.NGOID,
			ActionType:   req.ActionType,
			ItemCategory: item.Category,
			ItemName:     item.Item,
			Quantity:     quantity,
			OriginalCost: req.OriginalCost,
			PurchaseYear: req.PurchaseYear,
			ResaleAmount: resaleAmount,
			Status:       models.DonationStatusCompleted,
		})
	}

	return s.donationRepo.RecordSubmissionAtomic(ctx, donations)
}

func (s *donationService) TotalDonors(ctx context.Context) (int64, error) {
	return s.countRepo.GetTotal(ctx)
}
