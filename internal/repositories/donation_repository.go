package repositories

import (
	"context"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/models"
)

type DonationRepository interface {
	// RecordSubmissionAtomic writes every item row of one submission and
	// bumps the donor counter, all in a single transaction. There is no
	// partial-commit path: the whole batch lands or none of it does.
	RecordSubmissionAtomic(ctx context.Context, donations []*models.Donation) error
}

type donationRepo struct {
	db DB
}

func NewDonationRepository(db DB) DonationRepository {
	return &donationRepo{db: db}
}

func (r *donationRepo) RecordSubmissionAtomic(
	ctx context.Context,
	donations []*models.Donation,
) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	for _, d := range donations {
		_, err = tx.Exec(ctx, `
            INSERT INTO donations
                (user_id, ngo_id, action_type, item_category, item_name,
                 quantity, original_cost, purchase_year, resale_amount, status, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
        `,
			d.UserID, d.NGOID, d.ActionType, d.ItemCategory, d.ItemName,
			d.Quantity, d.OriginalCost, d.PurchaseYear, d.ResaleAmount, d.Status,
		)
		if err != nil {
			return err
		}
	}

	// One increment per submission, regardless of item count.
	_, err = tx.Exec(ctx, `
        INSERT INTO donor_counts (id, total_donors) VALUES (1, 1)
        ON CONFLICT (id) DO UPDATE SET total_donors = donor_counts.total_donors + 1
    `)
	return err
}
