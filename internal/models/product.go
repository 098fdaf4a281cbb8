package models

// Product represents a product in the catalog. Every product belongs to
// exactly one category.
type Product struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Name       string  `json:"name" gorm:"uniqueIndex;type:varchar(250);not null"`
	Price      float64 `json:"price" gorm:"type:decimal(18,2);not null"`
	Stock      int     `json:"stock" gorm:"not null"`
	CategoryID uint    `json:"categoryId" gorm:"not null"`
}
