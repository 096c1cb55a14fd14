package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/models"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// EnsureByEmail returns the user for the email, creating the row on
	// first sight. Lookup-then-insert on purpose: user creation is not
	// part of the code issuance transaction.
	EnsureByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email FROM users WHERE email = $1`, email)
	var u models.User
	if err := row.Scan(&u.ID, &u.Email); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) EnsureByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := r.GetByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `INSERT INTO users (email) VALUES ($1) RETURNING id, email`, email)
	var created models.User
	if err := row.Scan(&created.ID, &created.Email); err != nil {
		return nil, err
	}
	utils.Logger.Infof("New user registered: %s", email)
	return &created, nil
}
