package models

import "github.com/shopspring/decimal"

func init() {
	// Los importes se serializan como números JSON, no como cadenas
	decimal.MarshalJSONWithoutQuotes = true
}
