package address

import "time"

type Address struct {
	ID        uint
	UserID    uint
	Street    string
	City      string
	State     string
	ZipCode   string
	Country   string
	CreatedAt time.Time
}

// SaveAddressInput carries partial updates; nil fields keep the stored value.
type SaveAddressInput struct {
	Street  *string
	City    *string
	State   *string
	ZipCode *string
	Country *string
}
