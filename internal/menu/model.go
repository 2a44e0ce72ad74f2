package menu

// Categories offered in the admin form. Category stays free text in the
// table; this list only seeds the dropdown.
var Categories = []string{
	"Appetizer",
	"Main Course",
	"Dessert",
	"Beverage",
	"Snack",
	"Traditional",
	"Modern",
	"Other",
}

type Menu struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"image_url"`
	Available   bool    `json:"available"`
}

type MenuInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"image_url"`
	Available   bool    `json:"available"`
}

// ListOptions selects ordering and visibility per call site: the admin
// table lists everything by id, the storefront lists available items
// grouped by category.
type ListOptions struct {
	AvailableOnly bool
	OrderBy       string // "id" or "category"
}
