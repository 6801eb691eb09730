package menu

// MenuItem is one entry of the restaurant's catalog. The catalog is static;
// items are read-only reference data for cart validation and browsing.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Rating      float64
	PrepTime    string
}
