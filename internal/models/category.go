// internal/models/category.go
package models

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image,omitempty"`
	ProductCount int    `json:"product_count"`
}
