package repositories

import (
	"context"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/models"
)

type NGORepository interface {
	ListAll(ctx context.Context) ([]*models.NGO, error)
	GetByID(ctx context.Context, id int64) (*models.NGO, error)

	// ListRequirements returns the flat requirement rows for the NGO,
	// ordered by category then item name. Grouping happens in the service.
	ListRequirements(ctx context.Context, ngoID int64) ([]*models.NGORequirement, error)
}

type ngoRepo struct {
	db DB
}

func NewNGORepository(db DB) NGORepository {
	return &ngoRepo{db: db}
}

func (r *ngoRepo) ListAll(ctx context.Context) ([]*models.NGO, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, logo_url FROM ngos ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ngos []*models.NGO
	for rows.Next() {
		var n models.NGO
		if err := rows.Scan(&n.ID, &n.Name, &n.LogoURL); err != nil {
			return nil, err
		}
		ngos = append(ngos, &n)
	}
	return ngos, rows.Err()
}

func (r *ngoRepo) GetByID(ctx context.Context, id int64) (*models.NGO, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, logo_url FROM ngos WHERE id = $1`, id)
	var n models.NGO
	if err := row.Scan(&n.ID, &n.Name, &n.LogoURL); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *ngoRepo) ListRequirements(ctx context.Context, ngoID int64) ([]*models.NGORequirement, error) {
	q := `
        SELECT ngo_id, category, item_name
        FROM ngo_requirements
        WHERE ngo_id = $1
        ORDER BY category, item_name
    `
	rows, err := r.db.Query(ctx, q, ngoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*models.NGORequirement
	for rows.Next() {
		var req models.NGORequirement
		if err := rows.Scan(&req.NGOID, &req.Category, &req.ItemName); err != nil {
			return nil, err
		}
		reqs = append(reqs, &req)
	}
	return reqs, rows.Err()
}
