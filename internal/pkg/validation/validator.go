package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/manafood/internal/domain/errors"
)

const bodyField = "body"

// Validator checks request payloads against their `validate` struct tags and
// reports violations using JSON field names.
type Validator struct {
	validate *validator.Validate
}

// New creates Validator with JSON-aware field naming.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{validate: v}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

// Struct validates s and returns *errors.ValidationError listing every violation
// in field declaration order.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate request: %w", err)
	}

	violations := make([]domainErrors.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainErrors.Violation{
			Field:   fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}
	return domainErrors.NewValidationError(violations...)
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// DecodeJSON unmarshals a complete request body into v. Anything after the
// first JSON value makes the body malformed.
func DecodeJSON(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return DecodeError(io.EOF)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return DecodeError(err)
	}
	return nil
}

// DecodeError turns a JSON body decoding failure into a validation error that
// names the offending field when the decoder knows it.
func DecodeError(err error) error {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = bodyField
		}
		return domainErrors.NewValidationError(domainErrors.Violation{
			Field:   field,
			Message: "must be " + describeType(typeErr.Type),
		})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domainErrors.NewValidationError(domainErrors.Violation{Field: bodyField, Message: "malformed JSON"})
	case errors.Is(err, io.EOF):
		return domainErrors.NewValidationError(domainErrors.Violation{Field: bodyField, Message: "field required"})
	default:
		return domainErrors.NewValidationError(domainErrors.Violation{Field: bodyField, Message: err.Error()})
	}
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return "a valid " + t.Kind().String()
	}
}
