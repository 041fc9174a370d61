package registration

import (
	"io"

	"github.com/google/uuid"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/vrop/pkg/rop"
	"github.com/ib-77/vrop/pkg/rop/merge"
	"github.com/ib-77/vrop/pkg/rop/solo"
)

var registrationErr = errs.Class("registration")

// UnregisteredUser is raw, unchecked input.
type UnregisteredUser struct {
	ID    int    `yaml:"id"`
	Email string `yaml:"email"`
	Age   int    `yaml:"age"`
}

// RegisteredUser can only be obtained through Validate or Create, so every
// instance has passed all checks.
type RegisteredUser struct {
	Ref   uuid.UUID `yaml:"ref"`
	ID    int       `yaml:"id"`
	Email string    `yaml:"email"`
	Age   int       `yaml:"age"`
}

func newRegisteredUser(id int) func(string) func(int) RegisteredUser {
	return func(email string) func(int) RegisteredUser {
		return func(age int) RegisteredUser {
			return RegisteredUser{Ref: uuid.New(), ID: id, Email: email, Age: age}
		}
	}
}

// Validate checks every field independently and reports every failure:
// the id, the email (any address and then gmail), and the age (millennial or
// gen x).
func Validate(user UnregisteredUser) rop.Result[RegisteredUser, merge.FieldErrors] {
	ctor := rop.Success[func(int) func(string) func(int) RegisteredUser, merge.FieldErrors](newRegisteredUser)

	return solo.Apply(
		solo.Apply(
			solo.Apply(ctor, ValidID(user.ID)),
			solo.And(ValidEmail(user.Email), ValidGmailEmail(user.Email))),
		solo.Or(ValidMillennial(user.Age), ValidGenX(user.Age)))
}

// Create is Validate with failures reduced to their messages.
func Create(user UnregisteredUser) rop.Result[RegisteredUser, merge.Messages] {
	return solo.MapErr(Validate(user), merge.FieldErrors.Messages)
}

// DecodeUser reads a single YAML document describing an UnregisteredUser.
func DecodeUser(r io.Reader) (UnregisteredUser, error) {
	var user UnregisteredUser

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&user); err != nil {
		if err == io.EOF {
			return UnregisteredUser{}, registrationErr.New("empty input")
		}
		return UnregisteredUser{}, registrationErr.Wrap(err)
	}

	return user, nil
}
