package helper

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"homework_backend/internals/constants"
)

var (
	notBlankTag  = "notblank"
	notBlankText = "{0} must not be empty"

	classCodeTag   = "classcode"
	classCodeText  = "{0} must be exactly 5 uppercase letters"
	classCodeRegex = regexp.MustCompile(`^[A-Z]{5}$`)

	homeworkTypeTag  = "hwtype"
	homeworkTypeText = "{0} must be one of diary, book-report, free-task"

	requiredText = "{0} is required"

	validatorOnce sync.Once
	validate      *validator.Validate
	translator    ut.Translator
)

// ValidationError carries per-field messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return firstFieldMessage(e.Fields, "validation failed")
}

func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

func Validator() *validator.Validate {
	validatorOnce.Do(initValidator)
	return validate
}

// ValidateStruct runs the struct tags and returns a *ValidationError or nil.
func ValidateStruct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Fields: map[string][]string{"_": {"invalid input"}}}
	}
	fields := make(map[string][]string, len(ves))
	for _, fe := range ves {
		fields[fe.Field()] = append(fields[fe.Field()], fe.Translate(translator))
	}
	return &ValidationError{Fields: fields}
}

func IsClassCode(s string) bool {
	return classCodeRegex.MatchString(s)
}

func initValidator() {
	validate = validator.New()
	uni := ut.New(en.New())
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	registerTranslation(notBlankTag, notBlankText, false)

	_ = validate.RegisterValidation(classCodeTag, func(fl validator.FieldLevel) bool {
		return IsClassCode(fl.Field().String())
	})
	registerTranslation(classCodeTag, classCodeText, false)

	_ = validate.RegisterValidation(homeworkTypeTag, func(fl validator.FieldLevel) bool {
		_, ok := constants.LookupHomeworkType(fl.Field().String())
		return ok
	})
	registerTranslation(homeworkTypeTag, homeworkTypeText, false)

	registerTranslation("required", requiredText, true)
}

func registerTranslation(tag, text string, override bool) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}
