package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// structValidate is shared; validator.Validate caches struct metadata and is
// safe for concurrent use.
var structValidate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the `validate` tags of v and folds every field error
// into one ErrInvalidParams.
func validateStruct(v any) error {
	err := structValidate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%v: %w", err, ErrInvalidParams)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s(%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
	}

	return fmt.Errorf("%s: %w", strings.Join(fields, ", "), ErrInvalidParams)
}

// checkSlots rejects module loadouts that do not fit the machine.
func checkSlots(used, slots int) error {
	if used > slots {
		return fmt.Errorf("%d modules in %d slots: %w", used, slots, ErrModuleSlots)
	}

	return nil
}
