// api/util/validation_util.go

package util

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	shop_errors "github.com/dev-mohitbeniwal/shop/api/errors"
	"github.com/dev-mohitbeniwal/shop/api/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// ValidateClient checks the struct tags on client. requirePassword is set on create.
func (v *ValidationUtil) ValidateClient(client model.Client, requirePassword bool) error {
	if requirePassword && client.Password == "" {
		return fmt.Errorf("%w: password is required", shop_errors.ErrInvalidClientData)
	}
	if err := v.validate.Struct(client); err != nil {
		return fmt.Errorf("%w: %s", shop_errors.ErrInvalidClientData, describe(err))
	}
	return nil
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
