// Package validation gates what raw order records may enter the analytics
// layer. Checks are structural and pass/fail only: callers filtering a
// batch never learn which field was rejected.
package validation

import (
	"regexp"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	// one or more uppercase-letter tokens separated by single spaces
	upperTokensRe = regexp.MustCompile(`^[A-Z]+( ?[A-Z]+)*$`)
	// word/dot/hyphen local part, word/hyphen domain labels, 2-4 letter TLD
	emailRe = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)
	// YYYY-MM-DDTHH:MM:SS with a mandatory numeric offset, no "Z", no fractions
	offsetDatetimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}$`)
	// unsigned decimal: digits, optional dot, optional digits
	unsignedDecimalRe = regexp.MustCompile(`^\d+\.?\d*$`)
)

// New returns a configured validator with the record-level field rules
// registered as custom tags.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	_ = v.RegisterValidation("uppertokens", matchRule(upperTokensRe))
	_ = v.RegisterValidation("emailfmt", matchRule(emailRe))
	_ = v.RegisterValidation("offsetdatetime", matchRule(offsetDatetimeRe))
	_ = v.RegisterValidation("udecimalstr", nonNegativeDecimalString)
	return v
}

func matchRule(re *regexp.Regexp) validatorv10.Func {
	return func(fl validatorv10.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && re.MatchString(s)
	}
}

// nonNegativeDecimalString accepts strictly formatted unsigned decimal
// strings whose value is >= 0. A string the decimal parser rejects is a
// plain validation failure; the parse error never leaves this rule.
func nonNegativeDecimalString(fl validatorv10.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok || !unsignedDecimalRe.MatchString(s) {
		return false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(decimal.Zero)
}
