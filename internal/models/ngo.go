package models

// NGO for the ngos table. Managed externally; this service only reads.
type NGO struct {
	ID      int64
	Name    string
	LogoURL string
}

// NGORequirement for the ngo_requirements table.
type NGORequirement struct {
	NGOID    int64
	Category string
	ItemName string
}
