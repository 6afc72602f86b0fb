package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"frontdesk/shared/base64"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// ErrEmptyBody is returned by Decode when the request has no body at all.
var ErrEmptyBody = errors.New("request body is empty")

func registerMimetypeValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	contentType := base64.GetContentType(str)
	if contentType == "" {
		return false
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

// registerFileSizeValidation bounds the encoded size of a data URL in megabytes.
func registerFileSizeValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return len(str) <= maxSizeBytes
}

func registerDayMonthYearValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseDayMonthYear(str)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	err := validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("dmydate", registerDayMonthYearValidation)
	if err != nil {
		panic(err)
	}
}

// Decode reads a JSON body into data without validating it, for handlers whose
// presence checks carry their own messages.
func Decode[T any](r io.Reader, data *T) error {
	err := json.NewDecoder(r).Decode(data)
	if errors.Is(err, io.EOF) {
		return failure.BadRequest(ErrEmptyBody) //nolint:wrapcheck
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// DecodeOrZero is Decode for handlers whose service reports missing fields itself:
// an empty body leaves data at its zero value.
func DecodeOrZero[T any](r io.Reader, data *T) error {
	err := Decode(r, data)

	var fail *failure.Failure
	if errors.As(err, &fail) && fail.Message == ErrEmptyBody.Error() {
		return nil
	}

	return err
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
