package dtos

type SelectedItem struct {
	Category string `json:"category" validate:"required"`
	Item     string `json:"item" validate:"required"`
	Quantity int    `json:"quantity"`
}

// DonateRequest records one submission. OriginalCost and PurchaseYear are
// only consulted (and then mandatory) when ActionType is "resale".
type DonateRequest struct {
	UserEmail     string         `json:"user_email" validate:"required"`
	NGOID         int64          `json:"ngo_id" validate:"required"`
	ActionType    string         `json:"action_type" validate:"required,oneof=donate giveaway resale"`
	SelectedItems []SelectedItem `json:"selected_items" validate:"required,min=1,dive"`
	OriginalCost  *float64       `json:"original_cost"`
	PurchaseYear  *int           `json:"purchase_year"`
}

type DonateResponse struct {
	Message string `json:"message"`
}
