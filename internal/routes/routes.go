package routes

const (
	// Health
	Health = "/health"

	// Login endpoints
	LoginSendOTP   = "/api/login/send_otp"
	LoginVerifyOTP = "/api/login/verify_otp"

	// NGO endpoints
	NGOs            = "/api/ngos"
	NGORequirements = "/api/ngo_requirements/{ngo_id}"

	// Donation endpoints
	Donate      = "/api/donate"
	DonorsTotal = "/api/donors/total"
)
