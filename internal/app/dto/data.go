package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/booking"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/exception"
)

var (
	Validate = validator.New()
	trans    ut.Translator
)

type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

type Response struct {
	Message string `json:"message"`
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// passenger type codes come from the closed enumeration table
	err = Validate.RegisterValidation("paxcode", func(fl validator.FieldLevel) bool {
		return booking.IsValidPaxTypeCode(fl.Field().String())
	})
	if err != nil {
		return err
	}

	err = Validate.RegisterTranslation("paxcode", trans,
		func(ut ut.Translator) error {
			return ut.Add("paxcode", "Only 'ADT' (Adult) and 'CHD' (Child) are allowed.", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("paxcode")
			return t
		})
	if err != nil {
		return err
	}

	return nil
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}

// ValidateFields validates the whole struct and collects every failure
// into a field -> messages map.
func ValidateFields(req interface{}) error {
	err := Validate.Struct(req)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string][]string, len(ve))
	for _, fieldErr := range ve {
		name := fieldErr.Namespace()
		// strip the root struct name from the namespace
		if idx := strings.Index(name, "."); idx >= 0 {
			name = name[idx+1:]
		}

		fields[name] = append(fields[name], fieldErr.Translate(trans))
	}

	return exception.ValidationError{Fields: fields}
}
