package services

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/dtos"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/repositories"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

type NGOService interface {
	ListNGOs(ctx context.Context) ([]dtos.NGOResponse, error)
	GetRequirements(ctx context.Context, ngoID int64) (*dtos.NGORequirementsResponse, error)
}

type ngoService struct {
	ngoRepo repositories.NGORepository
}

func NewNGOService(ngoRepo repositories.NGORepository) NGOService {
	return &ngoService{ngoRepo: ngoRepo}
}

func (s *ngoService) ListNGOs(ctx context.Context) ([]dtos.NGOResponse, error) {
	ngos, err := s.ngoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dtos.NGOResponse, 0, len(ngos))
	for _, n := range ngos {
		resp = append(resp, dtos.NGOResponse{
			ID:      n.ID,
			Name:    n.Name,
			LogoURL: n.LogoURL,
		})
	}
	return resp, nil
}

func (s *ngoService) GetRequirements(ctx context.Context, ngoID int64) (*dtos.NGORequirementsResponse, error) {
	ngo, err := s.ngoRepo.GetByID(ctx, ngoID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, utils.ErrNGONotFound
		}
		return nil, err
	}

	reqs, err := s.ngoRepo.ListRequirements(ctx, ngoID)
	if err != nil {
		return nil, err
	}

	// Rows arrive ordered by category then item name; appending in row
	// order keeps each category's item list alphabetical.
	grouped := make(map[string][]string)
	for _, r := range reqs {
		grouped[r.Category] = append(grouped[r.Category], r.ItemName)
	}

	return &dtos.NGORequirementsResponse{
		NGOID:        ngo.ID,
		NGOName:      ngo.Name,
		Requirements: grouped,
	}, nil
}
