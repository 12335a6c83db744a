package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/openblogger/blog-backend/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeAndValidate parses the JSON body into dst and runs struct
// validation. Any failure is reported before handler logic touches the
// database.
func decodeAndValidate(r *http.Request, dst any) *errs.ApiErr {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewMalformedPayloadError("JSON", err)
	}
	return validateStruct(dst)
}

// validateStruct translates the first validator failure into a field-level
// bad-request error.
func validateStruct(s any) *errs.ApiErr {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			return errs.NewMissingRequiredFieldError(field)
		}
		return errs.NewInvalidFieldError(field, "failed on the '"+fe.Tag()+"' rule")
	}

	return errs.NewBadRequestError("invalid request body")
}
