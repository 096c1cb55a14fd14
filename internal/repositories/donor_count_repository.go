package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"
)

type DonorCountRepository interface {
	// GetTotal reads the singleton counter row. A missing row reads as 0.
	GetTotal(ctx context.Context) (int64, error)
}

type donorCountRepo struct {
	db DB
}

func NewDonorCountRepository(db DB) DonorCountRepository {
	return &donorCountRepo{db: db}
}

func (r *donorCountRepo) GetTotal(ctx context.Context) (int64, error) {
	row := r.db.QueryRow(ctx, `SELECT total_donors FROM donor_counts WHERE id = 1`)
	var total int64
	if err := row.Scan(&total); err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return total, nil
}
