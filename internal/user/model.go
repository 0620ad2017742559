package user

import "time"

type User struct {
	ID        uint
	Name      string
	Email     string
	Phone     string
	Password  string
	Role      string
	CreatedAt time.Time
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}
