package entities

import "time"

// Material is a raw material with a live unit price.
//
// Domain notes:
//   - Price is mutable; changing it never rewrites project items that
//     already carry a MaterialPriceSnapshot.
//   - Unit is a display string ("m²", "kg"), never used in calculations.
type Material struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"createdAt"`
}
