package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/dtos"
	"github.com/Sawan-k-yadav/NGO-Helping-hand/internal/utils"
)

type stubDonationService struct {
	recordErr error
	total     int64
	totalErr  error
	lastReq   *dtos.DonateRequest
}

func (s *stubDonationService) Record(_ context.Context, req dtos.DonateRequest) error {
	s.lastReq = &req
	return s.recordErr
}

func (s *stubDonationService) TotalDonors(_ context.Context) (int64, error) {
	return s.total, s.totalErr
}

const validDonateBody = `{
  "user_email": "a@realpage.com",
  "ngo_id": 1,
  "action_type": "donate",
  "selected_items": [{"category": "Food", "item": "Rice", "quantity": 1}]
}`

func TestDonateStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		recordErr  error
		wantStatus int
	}{
		{"success", validDonateBody, nil, http.StatusOK},
		{"malformed json", `{`, nil, http.StatusBadRequest},
		{"missing fields", `{"user_email":"a@realpage.com"}`, nil, http.StatusBadRequest},
		{"empty items", `{"user_email":"a@realpage.com","ngo_id":1,"action_type":"donate","selected_items":[]}`, nil, http.StatusBadRequest},
		{"bad action type", `{"user_email":"a@realpage.com","ngo_id":1,"action_type":"sell","selected_items":[{"category":"Food","item":"Rice"}]}`, nil, http.StatusBadRequest},
		{"unknown user", validDonateBody, utils.ErrUserNotFound, http.StatusNotFound},
		{"unknown ngo", validDonateBody, utils.ErrNGONotFound, http.StatusNotFound},
		{"resale fields missing", validDonateBody, utils.ErrResaleFieldsMissing, http.StatusBadRequest},
		{"storage failure", validDonateBody, context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewDonationController(&stubDonationService{recordErr: tt.recordErr})
			rec := postJSON(t, ctrl.Donate, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			decodeMessage(t, rec)
		})
	}
}

func TestDonateSuccessMessageEchoesAction(t *testing.T) {
	ctrl := NewDonationController(&stubDonationService{})
	rec := postJSON(t, ctrl.Donate, validDonateBody)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Thank you for your donate! Your contribution has been recorded.", decodeMessage(t, rec))
}
