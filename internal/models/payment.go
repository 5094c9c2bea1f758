package models

type PaymentIntentRequest struct {
	Package string `json:"package"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type PremiumRequest struct {
	Package      string `json:"package"`
	ClientSecret string `json:"client_secret"`
}
