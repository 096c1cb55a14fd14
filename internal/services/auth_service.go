package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/config"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/repositories"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

// ---------------------------------------------------------------------
// AuthService interface
// ---------------------------------------------------------------------
//
// Per-email code lineage: NoCode -> Active -> {Consumed | Expired |
// Superseded}. Every terminal state deletes the row, so a later IssueCode
// call starts a fresh lineage rather than reviving the old one.
type AuthService interface {
	IssueCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, submittedCode string) error
}

type authService struct {
	userRepo repositories.UserRepository
	codeRepo repositories.LoginCodeRepository
	mailer   Mailer
	cfg      *config.Config

	now func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	codeRepo repositories.LoginCodeRepository,
	mailer Mailer,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo: userRepo,
		codeRepo: codeRepo,
		mailer:   mailer,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *authService) IssueCode(ctx context.Context, email string) error {
	if email == "" {
		return utils.ErrEmailRequired
	}
	if !strings.HasSuffix(email, s.cfg.AllowedEmailDomain) {
		return utils.ErrDomainForbidden
	}

	// User creation is deliberately outside the code-replacement
	// transaction; a user row without a live code is harmless.
	if _, err := s.userRepo.EnsureByEmail(ctx, email); err != nil {
		return err
	}

	code, err := utils.GenerateLoginCode()
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(s.cfg.LoginCodeExpiry)

	if err := s.codeRepo.ReplaceForEmail(ctx, email, code, expiresAt); err != nil {
		return err
	}

	// The code is already stored at this point; a failed delivery is
	// reported as a server error and a retry simply supersedes it.
	if err := s.mailer.SendLoginCode(ctx, email, code, expiresAt); err != nil {
		return &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "Failed to send OTP",
			Err:        err,
		}
	}
	return nil
}

func (s *authService) VerifyCode(ctx context.Context, email, submittedCode string) error {
	rec, err := s.codeRepo.GetLatest(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return utils.ErrOTPNotFound
		}
		return err
	}

	if s.now().After(rec.ExpiresAt) {
		// Terminal: an expired code cannot be revived, so drop it now
		// rather than waiting for the cleanup job.
		if delErr := s.codeRepo.DeleteForEmail(ctx, email); delErr != nil {
			return delErr
		}
		return utils.ErrOTPExpired
	}

	if rec.Code != submittedCode {
		// Row stays; the user may retry with the still-valid code.
		return utils.ErrOTPMismatch
	}

	// One-shot consumption: a replay of the same code must see NotFound.
	if err := s.codeRepo.DeleteByID(ctx, rec.ID); err != nil {
		return err
	}
	return nil
}
