package model

// Customer is a row of the cliente table.
type Customer struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"nome" json:"nome"`
	Email   string `db:"email" json:"email"`
	Phone   string `db:"telefone" json:"telefone"`
	Address string `db:"endereco" json:"endereco"`
	City    string `db:"cidade" json:"cidade"`
	State   string `db:"uf" json:"uf"`
}

// CustomerInput is the body accepted by create and update.
// Every field is a required, non-empty string.
type CustomerInput struct {
	Name    string `json:"nome" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"telefone" validate:"required"`
	Address string `json:"endereco" validate:"required"`
	City    string `json:"cidade" validate:"required"`
	State   string `json:"uf" validate:"required"`
}

func (in *CustomerInput) Validate() error {
	return validate.Struct(in)
}

// ToCustomer builds the row to be written. The id is assigned by the database
// on insert and taken from the path on update.
func (in *CustomerInput) ToCustomer(id int64) *Customer {
	return &Customer{
		ID:      id,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		City:    in.City,
		State:   in.State,
	}
}
