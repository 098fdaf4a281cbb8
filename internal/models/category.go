package models

// Category groups products. Deleting a category with products still
// attached is rejected by the foreign key at commit time.
type Category struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"uniqueIndex;type:varchar(150);not null"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}
