package api

import (
	"strings"

	"github.com/MrEthical07/goEdu/transport"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type arg struct {
	name  string
	value any
}

func id(name string, v int64) arg {
	return arg{name: name, value: v}
}

func str(name, v string) arg {
	return arg{name: name, value: strings.TrimSpace(v)}
}

// require fails when any identifier is zero or blank. Request bodies are not
// inspected; the backend owns every rule about their content.
func (c *caller) require(op string, args ...arg) error {
	var fields []transport.FieldError
	for _, a := range args {
		if err := validate.Var(a.value, "required"); err != nil {
			fields = append(fields, transport.FieldError{Field: a.name, Tag: "required"})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return c.reject(op, &transport.ValidationError{Op: op, Fields: fields})
}
