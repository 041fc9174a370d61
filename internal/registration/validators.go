package registration

import (
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/ib-77/vrop/pkg/rop"
	"github.com/ib-77/vrop/pkg/rop/merge"
	"github.com/ib-77/vrop/pkg/rop/solo"
)

const (
	FieldID    = "id"
	FieldEmail = "email"
	FieldAge   = "age"
)

const (
	MsgInvalidID         = "invalid id"
	MsgInvalidEmail      = "invalid email"
	MsgInvalidGmail      = "invalid gmail address"
	MsgInvalidMillennial = "invalid millennial"
	MsgInvalidGenX       = "invalid gen x"
)

func ValidID(id int) rop.Result[int, merge.FieldErrors] {
	return solo.Validate(id, func(v int) bool { return v > 0 },
		merge.Field(FieldID, MsgInvalidID, "validation.id"))
}

func ValidEmail(email string) rop.Result[string, merge.FieldErrors] {
	return solo.Validate(email, func(v string) bool { return strings.Contains(v, "@") },
		merge.Field(FieldEmail, MsgInvalidEmail, "validation.email"))
}

func ValidGmailEmail(email string) rop.Result[string, merge.FieldErrors] {
	return solo.Validate(email, func(v string) bool { return strings.Contains(v, "gmail") },
		merge.Field(FieldEmail, MsgInvalidGmail, "validation.gmail"))
}

// ValidMillennial accepts ages 18 to 34 inclusive.
func ValidMillennial(age int) rop.Result[int, merge.FieldErrors] {
	return between(age, 18, 34, merge.Field(FieldAge, MsgInvalidMillennial, "validation.millennial"))
}

// ValidGenX accepts ages 35 to 50 inclusive.
func ValidGenX(age int) rop.Result[int, merge.FieldErrors] {
	return between(age, 35, 50, merge.Field(FieldAge, MsgInvalidGenX, "validation.gen_x"))
}

func between[N constraints.Ordered](v, lo, hi N, err merge.FieldErrors) rop.Result[N, merge.FieldErrors] {
	err[0].TranslationValues["min"] = lo
	err[0].TranslationValues["max"] = hi
	return solo.Validate(v, func(n N) bool { return n >= lo && n <= hi }, err)
}
