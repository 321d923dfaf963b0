package profile

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("link", validateLink); err != nil {
		panic(fmt.Sprintf("register link validation: %v", err))
	}
	return v
}

var validateLink validator.Func = func(fl validator.FieldLevel) bool {
	return IsLink(fl.Field().String())
}

// Validate checks that p is renderable: a name is set, the email parses and
// every href is either a placeholder or a real URI.
func Validate(p Profile) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("validate profile: %w", err)
	}
	return nil
}

// IsLink reports whether s is a placeholder anchor ("#", "#about"), a
// root-relative path, or an absolute http, https or mailto URI.
func IsLink(s string) bool {
	switch {
	case s == "":
		return false
	case strings.HasPrefix(s, "#"):
		return !strings.ContainsAny(s, " \t\r\n")
	case strings.HasPrefix(s, "//"):
		return false
	case strings.HasPrefix(s, "/"):
		return true
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	}
	return false
}
