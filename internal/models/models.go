package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID          string          `gorm:"primaryKey"            json:"id"`
	Name        string          `gorm:"not null"              json:"name"`
	Description string          `                             json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Category    string          `gorm:"index"                 json:"category"`
	Special     bool            `gorm:"default:false"         json:"special"`
	ImageURL    string          `                             json:"image_url"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
