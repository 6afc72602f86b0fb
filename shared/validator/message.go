package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// messages maps a validation tag to the text shown to the front desk.
var messages = map[string]string{
	"required":    "{field} is required",
	"oneof":       "{field} must be one of {param}",
	"dmydate":     "{field} must be a date in dd/mm/yyyy form",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
}

// message reports the first failed rule, falling back to the validator's own text
// for tags without a template.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(template)
	}

	return valErrors.Error()
}
