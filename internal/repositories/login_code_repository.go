package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/models"
)

type LoginCodeRepository interface {
	// ReplaceForEmail supersedes any previously issued code for the email
	// and stores the new one. Delete and insert commit as one unit.
	ReplaceForEmail(ctx context.Context, email, code string, expiresAt time.Time) error

	// GetLatest returns the most recently created code row for the email,
	// or pgx.ErrNoRows when none exists.
	GetLatest(ctx context.Context, email string) (*models.LoginCode, error)

	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteForEmail(ctx context.Context, email string) error
	CleanupExpired(ctx context.Context) error
}

type loginCodeRepo struct {
	db DB
}

func NewLoginCodeRepository(db DB) LoginCodeRepository {
	return &loginCodeRepo{db: db}
}

// ReplaceForEmail runs the supersede-then-insert sequence inside one
// transaction. The advisory lock serializes concurrent issuance for the
// same email, so two racing requests cannot both leave a live row behind.
func (r *loginCodeRepo) ReplaceForEmail(
	ctx context.Context,
	email, code string,
	expiresAt time.Time,
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

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, email); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM login_codes WHERE email = $1`, email); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO login_codes (id, email, code, created_at, expires_at)
        VALUES ($1, $2, $3, NOW(), $4)
    `, uuid.New(), email, code, expiresAt)
	return err
}

func (r *loginCodeRepo) GetLatest(ctx context.Context, email string) (*models.LoginCode, error) {
	q := `
        SELECT id, email, code, created_at, expires_at
        FROM login_codes
        WHERE email = $1
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, q, email)
	var rec models.LoginCode
	err := row.Scan(
		&rec.ID,
		&rec.Email,
		&rec.Code,
		&rec.CreatedAt,
		&rec.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *loginCodeRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM login_codes WHERE id = $1`, id)
	return err
}

func (r *loginCodeRepo) DeleteForEmail(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM login_codes WHERE email = $1`, email)
	return err
}

func (r *loginCodeRepo) CleanupExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM login_codes WHERE expires_at < NOW()`)
	return err
}
