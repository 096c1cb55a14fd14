package models

import "time"

const (
	ActionDonate   = "donate"
	ActionGiveaway = "giveaway"
	ActionResale   = "resale"

	DonationStatusCompleted = "completed"
)

// Donation for the donations table. One row per selected item per
// submission; rows are immutable once written.
type Donation struct {
	ID           int64
	UserID       int64
	NGOID        int64
	ActionType   string
	ItemCategory string
	ItemName     string
	Quantity     int
	OriginalCost *float64
	PurchaseYear *int
	ResaleAmount *float64
	Status       string
	CreatedAt    time.Time
}

// DonorCount for the donor_counts singleton row (id=1). The counter moves
// by one per donation submission, not per distinct donor or per item row.
type DonorCount struct {
	ID          int
	TotalDonors int64
}
