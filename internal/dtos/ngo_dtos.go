package dtos

type NGOResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// NGORequirementsResponse groups a flat requirement listing by category.
// Item names within a category keep the store's alphabetical ordering.
type NGORequirementsResponse struct {
	NGOID        int64               `json:"ngo_id"`
	NGOName      string              `json:"ngo_name"`
	Requirements map[string][]string `json:"requirements"`
}

type TotalDonorsResponse struct {
	TotalDonors int64 `json:"total_donors"`
}
