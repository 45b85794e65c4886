package userservice

import (
	"regexp"

	"github.com/sushihentaime/blogway/internal/common"
)

var (
	EmailRX = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func validateName(v *common.Validator, name, field string) {
	v.Check(name != "", field, "must be provided")
	v.Check(v.CheckStringLength(name, 3, 50), field, "must be between 3 and 50 characters long")
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(EmailRX.MatchString(email), "email", "must be a valid email address")
}

// bcrypt rejects inputs longer than 72 bytes, hence the upper bound.
func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(v.CheckStringLength(password, 6, 72), "password", "must be between 6 and 72 characters long")
}
