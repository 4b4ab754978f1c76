package request

// MaterialRequest carries a material create/update payload. Price has no
// `required` binding on purpose: 0 is a legal unit price and gin's
// required check would reject it.
type MaterialRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit" binding:"required"`
}
