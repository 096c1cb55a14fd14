package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/models"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

func TestGetRequirementsGroupsByCategory(t *testing.T) {
	ngos := newFakeNGORepo()
	ngos.ngos[7] = &models.NGO{ID: 7, Name: "Hope Shelter", LogoURL: "/logos/hope.png"}
	// Rows seeded in the store's order: category, then item name.
	ngos.requirements[7] = []*models.NGORequirement{
		{NGOID: 7, Category: "Clothing", ItemName: "Pants"},
		{NGOID: 7, Category: "Clothing", ItemName: "Shirt"},
		{NGOID: 7, Category: "Food", ItemName: "Rice"},
	}

	svc := NewNGOService(ngos)
	resp, err := svc.GetRequirements(context.Background(), 7)
	require.NoError(t, err)

	require.Equal(t, int64(7), resp.NGOID)
	require.Equal(t, "Hope Shelter", resp.NGOName)
	require.Equal(t, map[string][]string{
		"Clothing": {"Pants", "Shirt"},
		"Food":     {"Rice"},
	}, resp.Requirements)
}

func TestGetRequirementsUnknownNGO(t *testing.T) {
	svc := NewNGOService(newFakeNGORepo())
	_, err := svc.GetRequirements(context.Background(), 42)
	require.ErrorIs(t, err, utils.ErrNGONotFound)
}

func TestGetRequirementsEmptyListing(t *testing.T) {
	ngos := newFakeNGORepo()
	ngos.ngos[3] = &models.NGO{ID: 3, Name: "Open Pantry"}

	svc := NewNGOService(ngos)
	resp, err := svc.GetRequirements(context.Background(), 3)
	require.NoError(t, err)
	require.Empty(t, resp.Requirements)
}

func TestListNGOsMapsFields(t *testing.T) {
	ngos := newFakeNGORepo()
	ngos.ngos[1] = &models.NGO{ID: 1, Name: "Hope Shelter", LogoURL: "/logos/hope.png"}

	svc := NewNGOService(ngos)
	out, err := svc.ListNGOs(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, int64(1), out[0].ID)
	require.Equal(t, "Hope Shelter", out[0].Name)
	require.Equal(t, "/logos/hope.png", out[0].LogoURL)
}
