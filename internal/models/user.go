package models

// Credentials is the admin login payload
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token is returned on successful admin login
type Token struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ReferenceRate is the current default annual rate used for quotes
type ReferenceRate struct {
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Source            string  `json:"source"`
	UpdatedAt         string  `json:"updated_at,omitempty"`
}
