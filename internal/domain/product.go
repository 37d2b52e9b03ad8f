package domain

import (
	"strconv"
	"time"
)

// Weight units accepted for product quantities.
const (
	UnitGram   = "g"
	UnitKg     = "kg"
	UnitMl     = "ml"
	UnitLiter  = "l"
	UnitPacket = "packet"
)

// WeightUnits lists the valid units in display order.
var WeightUnits = []string{UnitGram, UnitKg, UnitMl, UnitLiter, UnitPacket}

// ValidWeightUnit reports whether u is one of the accepted units.
func ValidWeightUnit(u string) bool {
	for _, v := range WeightUnits {
		if v == u {
			return true
		}
	}
	return false
}

// Product represents a single inventory record owned by one user
type Product struct {
	ID         int64     `json:"id,string" form:"id"`
	Name       string    `gorm:"size:200;index" json:"name" form:"name"`
	Quantity   float64   `json:"quantity" form:"quantity"`
	WeightUnit string    `gorm:"size:10" json:"weight_unit" form:"weight_unit"`
	Amount     float64   `json:"amount" form:"amount"`
	UserID     int64     `gorm:"index" json:"user_id,string"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}

// WeightDisplay renders quantity and unit as one token, e.g. "2kg" or "1.5l".
func (p Product) WeightDisplay() string {
	return strconv.FormatFloat(p.Quantity, 'f', -1, 64) + p.WeightUnit
}

// AmountDisplay renders the price with two decimals.
func (p Product) AmountDisplay() string {
	return strconv.FormatFloat(p.Amount, 'f', 2, 64)
}

// DateDisplay renders the creation date as "Jan 02, 2006".
func (p Product) DateDisplay() string {
	return p.CreatedAt.Format("Jan 02, 2006")
}
