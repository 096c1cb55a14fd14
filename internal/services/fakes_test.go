package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/models"
)

// In-memory repository fakes. They honor the same contracts as the pgx
// implementations, including pgx.ErrNoRows on missing rows and the
// ordering guarantees the services rely on.

// ---------------------------------------------------------------------
// users
// ---------------------------------------------------------------------

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) EnsureByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, err := f.GetByEmail(ctx, email); err == nil {
		return u, nil
	}
	u := &models.User{ID: f.nextID, Email: email}
	f.nextID++
	f.users[email] = u
	return u, nil
}

// ---------------------------------------------------------------------
// login codes
// ---------------------------------------------------------------------

type fakeLoginCodeRepo struct {
	rows []*models.LoginCode
	now  func() time.Time
}

func newFakeLoginCodeRepo() *fakeLoginCodeRepo {
	return &fakeLoginCodeRepo{now: time.Now}
}

func (f *fakeLoginCodeRepo) ReplaceForEmail(_ context.Context, email, code string, expiresAt time.Time) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.Email != email {
			kept = append(kept, r)
		}
	}
	f.rows = append(kept, &models.LoginCode{
		ID:        uuid.New(),
		Email:     email,
		Code:      code,
		CreatedAt: f.now(),
		ExpiresAt: expiresAt,
	})
	return nil
}

func (f *fakeLoginCodeRepo) GetLatest(_ context.Context, email string) (*models.LoginCode, error) {
	var latest *models.LoginCode
	for _, r := range f.rows {
		if r.Email != email {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	if latest == nil {
		return nil, pgx.ErrNoRows
	}
	return latest, nil
}

func (f *fakeLoginCodeRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeLoginCodeRepo) DeleteForEmail(_ context.Context, email string) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.Email != email {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeLoginCodeRepo) CleanupExpired(_ context.Context) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.ExpiresAt.After(f.now()) {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeLoginCodeRepo) countFor(email string) int {
	n := 0
	for _, r := range f.rows {
		if r.Email == email {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------
// mailer
// ---------------------------------------------------------------------

type fakeMailer struct {
	sentTo    []string
	sentCodes []string
	sendErr   error
}

func (f *fakeMailer) SendLoginCode(_ context.Context, email, code string, _ time.Time) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sentTo = append(f.sentTo, email)
	f.sentCodes = append(f.sentCodes, code)
	return nil
}

func (f *fakeMailer) lastCode() string {
	if len(f.sentCodes) == 0 {
		return ""
	}
	return f.sentCodes[len(f.sentCodes)-1]
}

// ---------------------------------------------------------------------
// ngos
// ---------------------------------------------------------------------

type fakeNGORepo struct {
	ngos         map[int64]*models.NGO
	requirements map[int64][]*models.NGORequirement
}

func newFakeNGORepo() *fakeNGORepo {
	return &fakeNGORepo{
		ngos:         make(map[int64]*models.NGO),
		requirements: make(map[int64][]*models.NGORequirement),
	}
}

func (f *fakeNGORepo) ListAll(_ context.Context) ([]*models.NGO, error) {
	var out []*models.NGO
	for _, n := range f.ngos {
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNGORepo) GetByID(_ context.Context, id int64) (*models.NGO, error) {
	n, ok := f.ngos[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return n, nil
}

func (f *fakeNGORepo) ListRequirements(_ context.Context, ngoID int64) ([]*models.NGORequirement, error) {
	return f.requirements[ngoID], nil
}

// ---------------------------------------------------------------------
// donations + donor counter
// ---------------------------------------------------------------------

type fakeDonationLedger struct {
	donations   []*models.Donation
	submissions int64
}

func (f *fakeDonationLedger) RecordSubmissionAtomic(_ context.Context, donations []*models.Donation) error {
	f.donations = append(f.donations, donations...)
	f.submissions++
	return nil
}

func (f *fakeDonationLedger) GetTotal(_ context.Context) (int64, error) {
	return f.submissions, nil
}
