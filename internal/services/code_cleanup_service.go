package services

import (
	"context"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/repositories"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

// CodeCleanupService purges login codes that expired without being
// consumed. Verification already deletes expired rows it touches; this
// sweep catches the codes nobody ever tried to redeem.
type CodeCleanupService interface {
	CleanupDaily(ctx context.Context) error
}

type codeCleanupService struct {
	codeRepo repositories.LoginCodeRepository
}

func NewCodeCleanupService(codeRepo repositories.LoginCodeRepository) CodeCleanupService {
	return &codeCleanupService{codeRepo: codeRepo}
}

func (s *codeCleanupService) CleanupDaily(ctx context.Context) error {
	if err := s.codeRepo.CleanupExpired(ctx); err != nil {
		utils.Logger.WithError(err).Error("Failed to cleanup login_codes")
		return err
	}
	utils.Logger.Info("Daily login-codes cleanup completed successfully.")
	return nil
}
