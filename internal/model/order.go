package model

import "time"

// Order is an immutable record of a completed checkout.
type Order struct {
	ID    int64      `json:"id"`
	Date  time.Time  `json:"date"`
	Total float64    `json:"total"`
	Items []CartItem `json:"items"`
}

// ScanResponse is returned by a barcode lookup.
type ScanResponse struct {
	Product          Product `json:"product"`
	Weighable        bool    `json:"weighable"`
	PriceWithVAT     float64 `json:"priceWithVat"`
	LineTotal        float64 `json:"lineTotal"`
	LineTotalUntaxed float64 `json:"lineTotalUntaxed"`
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest carries the credentials of a new account.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
