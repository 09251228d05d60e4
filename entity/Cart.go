package entity

// CartItem is one line of a user's in-memory cart. The product is embedded
// as a snapshot, so the line survives later catalog edits unchanged; orders
// reuse the same shape for their captured lines.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Color    string  `json:"color"`
	Total    float64 `json:"totalPrice"`
}
