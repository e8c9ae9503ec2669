package models

// AccountsResponse identifies the tenant on the marketing side. BrandID is
// required on every authenticated call after registration.
type AccountsResponse struct {
	BrandID string `json:"brandID"`
}

// BatchCreateResponse is the body returned by a successful batch submission.
type BatchCreateResponse struct {
	BatchID string `json:"batchID"`
}

// RegisterAccountRequest announces the integration to the marketing service.
type RegisterAccountRequest struct {
	Website  string `json:"website"`
	Platform string `json:"platform"`
	Version  string `json:"version"`
}
