package cart

// Line is one selected menu item. Name, price and image are snapshots
// taken when the item was added; later catalog edits do not touch them.
type Line struct {
	MenuID   int64   `json:"menu_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL *string `json:"image_url,omitempty"`
	Quantity int     `json:"quantity"`
}

// ItemSummary is what AddItem needs from the catalog.
type ItemSummary struct {
	MenuID   int64
	Name     string
	Price    float64
	ImageURL *string
}
