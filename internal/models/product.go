package models

// Product represents an item in the catalog. Code is the merchant-facing
// identifier and must be unique across all rows.
type Product struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(100);not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Code        string `json:"code" gorm:"uniqueIndex;type:varchar(20);not null"`
}
