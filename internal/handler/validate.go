package handler

import (
	"strings"

	enlocale "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// validationError carries a reader-friendly 400 message.
type validationError struct {
	message string
}

func (e validationError) Error() string {
	return e.message
}

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	locale := enlocale.New()
	uni := ut.New(locale, locale)
	translator, _ = uni.GetTranslator("en")

	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = entrans.RegisterDefaultTranslations(validate, translator)
}

// validateStruct runs tag validation on a payload and folds the failures into
// a single translated message.
func validateStruct(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	ok := false
	if verrs, ok = err.(validator.ValidationErrors); !ok {
		return validationError{message: "invalid request body"}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fe.Translate(translator))
	}

	return validationError{message: strings.Join(messages, "; ")}
}
