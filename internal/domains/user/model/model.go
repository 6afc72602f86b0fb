package model

import "time"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldUsername  = "username"
	FieldPassword  = "password_hash"
	FieldLastLogin = "last_login"
)

// User is a front-desk operator. Password holds either an opaque token or a bcrypt hash.
type User struct {
	ID        string     `db:"id"`
	Username  string     `db:"username"`
	Password  string     `db:"password_hash"`
	LastLogin *time.Time `db:"last_login"`
}
