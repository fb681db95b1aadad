package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"playerone/internal/domain"
)

// clockRegex matches a 24-hour HH:MM time of day.
var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockRegex.MatchString(fl.Field().String())
	})
	v.RegisterCustomTypeFunc(optionalValue,
		domain.Optional[string]{},
		domain.Optional[int]{},
		domain.Optional[float64]{},
		domain.Optional[bool]{},
		domain.Optional[time.Time]{},
		domain.Optional[domain.ParticipationType]{},
		domain.Optional[domain.Visibility]{},
	)
	return v
}

// optionalValue validates a set Optional as its value; an unset one is nil so
// omitempty skips it.
func optionalValue(field reflect.Value) any {
	if !field.FieldByName("IsSet").Bool() {
		return nil
	}
	return field.FieldByName("Val").Interface()
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and runs the struct's validate tags. On decode or validation failure it writes
// a 400 JSON error and returns false; otherwise returns true.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if fields := ValidateStruct(dest); len(fields) > 0 {
		WriteValidationError(w, fields)
		return false
	}
	return true
}

// ValidateStruct runs the validate tags on v and returns a JSON field name to
// message map, or nil when v is valid.
func ValidateStruct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fieldMessage(fe)
	}
	return fields
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "clock":
		return "must be a time in HH:MM format"
	case "url":
		return "must be a valid URL"
	case "datetime":
		return "must match the format " + fe.Param()
	}
	return "failed on " + fe.Tag()
}
