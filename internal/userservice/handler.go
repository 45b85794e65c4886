package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/sushihentaime/blogway/internal/common"
)

func NewUserService(db *sql.DB, mb common.MessageProducer, secret []byte) *UserService {
	return &UserService{
		m:      newUserModel(db),
		mb:     mb,
		secret: secret,
	}
}

// CreateUser registers a new user account and publishes a user.created event.
// The returned user never carries the password.
func (s *UserService) CreateUser(ctx context.Context, firstName, lastName, email, password string) (*User, error) {
	v := common.NewValidator()
	validateName(v, firstName, "first_name")
	validateName(v, lastName, "last_name")
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}

	if err := u.Password.set(password); err != nil {
		return nil, err
	}

	err := s.m.insertUser(ctx, &u)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			return nil, common.NewConflict("User already exists")
		default:
			return nil, err
		}
	}

	event, err := json.Marshal(UserCreatedEvent{Email: u.Email, FirstName: u.FirstName})
	if err != nil {
		return nil, err
	}

	if err := s.mb.Publish(ctx, event, common.UserCreatedKey, common.UserExchange); err != nil {
		return nil, err
	}

	return &u, nil
}

// Login checks the credentials and issues a signed access token. An unknown
// email and a wrong password produce the exact same failure so account
// existence is not revealed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *User, error) {
	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return "", nil, v.ValidationError()
	}

	user, err := s.m.getUserByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return "", nil, common.NewUnauthorized("Invalid login credentials")
		default:
			return "", nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, common.NewUnauthorized("Invalid login credentials")
	}

	token, err := newAccessToken(s.secret, user, AccessTokenTime)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// VerifyAccessToken validates a bearer token and returns the user identifier
// embedded in it. It trusts the token claims and performs no database lookup.
func (s *UserService) VerifyAccessToken(token string) (int, error) {
	id, err := parseAccessToken(s.secret, token)
	if err != nil {
		return 0, common.NewForbidden("Invalid or expired token")
	}

	return id, nil
}
