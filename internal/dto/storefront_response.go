package dto

import "github.com/aevohorology/storefront-service/internal/domain"

// MutationResponse reports an optimistic write. Synced is false when the
// local mutation applied but the remote write did not land; the caller
// decides how to surface that.
type MutationResponse struct {
	Synced bool        `json:"synced"`
	Data   interface{} `json:"data,omitempty"`
}

type WishlistResponse struct {
	ProductIDs []string `json:"product_ids"`
}

type CheckoutResponse struct {
	Order     domain.Order `json:"order"`
	Synced    bool         `json:"synced"`
	QRCodeURL string       `json:"qr_code_url,omitempty"`
}

type StatusResponse struct {
	Connectivity string `json:"connectivity"`
	Loaded       bool   `json:"loaded"`
	SignedIn     bool   `json:"signed_in"`
	IsAdmin      bool   `json:"is_admin"`
	Email        string `json:"email,omitempty"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	Email       string `json:"email"`
}
