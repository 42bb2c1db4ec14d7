package validation

import (
	"attendance-lab/errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateName trims raw and rejects what is left when it is empty.
// The trimmed value is returned so callers never store surrounding blanks.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if err := validate.Var(name, "required"); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrEmptyName, err)
	}
	return name, nil
}
