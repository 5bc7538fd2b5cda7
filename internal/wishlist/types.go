package wishlist

// WishlistDTO is the session wishlist payload returned to clients.
type WishlistDTO struct {
	SessionID  string   `json:"session_id"`
	ProductIDs []string `json:"product_ids"`
	Count      int      `json:"count"`
}
