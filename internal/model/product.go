package model

// Product is a row of the produto table.
type Product struct {
	ID     int64   `db:"id" json:"id"`
	Name   string  `db:"nome" json:"nome"`
	Brand  string  `db:"marca" json:"marca"`
	Price  float64 `db:"preco" json:"preco"`
	Weight float64 `db:"peso" json:"peso"`
}

// ProductInput is the body accepted by create and update.
//
// Price and Weight are pointers so that an explicit 0 is told apart from a
// missing value: required on a pointer only rejects nil, while required on
// a string rejects "".
type ProductInput struct {
	Name   string   `json:"nome" validate:"required"`
	Brand  string   `json:"marca" validate:"required"`
	Price  *float64 `json:"preco" validate:"required"`
	Weight *float64 `json:"peso" validate:"required"`
}

func (in *ProductInput) Validate() error {
	return validate.Struct(in)
}

// ToProduct must only be called after Validate succeeded.
func (in *ProductInput) ToProduct(id int64) *Product {
	return &Product{
		ID:     id,
		Name:   in.Name,
		Brand:  in.Brand,
		Price:  *in.Price,
		Weight: *in.Weight,
	}
}
