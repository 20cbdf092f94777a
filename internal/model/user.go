package model

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Age          *int      `db:"age" json:"age"`
	Phone        *string   `db:"phone" json:"phone"`
	Address      *string   `db:"address" json:"address"`
	PasswordHash *string   `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// NewUser carries the columns a client may set on insert. Nil pointers are
// written as NULL so the NOT NULL constraints decide what is required.
type NewUser struct {
	Name         *string
	Email        *string
	Age          *int
	Phone        *string
	Address      *string
	PasswordHash *string
}

type UserUpdate struct {
	Name  *string
	Email *string
}
