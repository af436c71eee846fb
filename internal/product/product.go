package product

import "github.com/shopspring/decimal"

// Product maps to the `products` table. Prices are numeric(18,2).
type Product struct {
	ProductID     int             `json:"productId"`
	ProductName   string          `json:"productName"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	UnitOfMeasure string          `json:"unitOfMeasure"`
}
