package models

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// CloudinaryScheme prefixes image fields that hold a Cloudinary public ID.
const CloudinaryScheme = "cloudinary:"

// RegisterValidations adds the custom tags and reports fields by their JSON
// name. gin's default validator and the console's NewValidator both go
// through here.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v.RegisterValidation("imageref", func(fl validator.FieldLevel) bool {
		return IsImageRef(fl.Field().String())
	})
}

var ginOnce sync.Once

// RegisterGinValidations installs RegisterValidations on gin's default
// validator. Calls after the first are no-ops.
func RegisterGinValidations() error {
	var err error
	ginOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		err = RegisterValidations(v)
	})
	return err
}

// NewValidator reads the same binding tags gin does.
func NewValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	if err := RegisterValidations(v); err != nil {
		return nil, err
	}
	return v, nil
}

// IsImageRef accepts what the image resolver can render: http(s) URLs,
// protocol-relative URLs, cloudinary:<public-id> and upload paths.
func IsImageRef(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	if id, ok := strings.CutPrefix(s, CloudinaryScheme); ok {
		return id != ""
	}
	if rest, ok := strings.CutPrefix(s, "//"); ok {
		s = "https://" + rest
	}
	if strings.Contains(s, "://") {
		u, err := url.ParseRequestURI(s)
		if err != nil {
			return false
		}
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	}
	return !strings.Contains(s, ":")
}

// FieldErrors flattens validator errors into one message per JSON field.
// ok is false when err is not a validation error (a malformed body, say).
func FieldErrors(err error) (fields map[string]string, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields = make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields, true
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "imageref":
		return "must be an http(s) URL, an upload path or cloudinary:<public-id>"
	}
	return fmt.Sprintf("failed the %q check", fe.Tag())
}
