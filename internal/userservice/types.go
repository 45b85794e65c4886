package userservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/blogway/internal/common"
)

const (
	// AccessTokenTime is how long an issued access token stays valid.
	AccessTokenTime time.Duration = 1 * time.Hour
)

type UserService struct {
	m      *DBModel
	mb     common.MessageProducer
	secret []byte
}

type DBModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Password holds the plaintext only transiently; neither field is ever
// serialized.
type Password struct {
	plain string
	hash  []byte
}

// UserCreatedEvent is the payload published on the user exchange after a
// successful registration.
type UserCreatedEvent struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
}
