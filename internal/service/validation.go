package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"maua-esports-backend/internal/database/models"
	apperrors "maua-esports-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// ClubEmail is the shared club account, accepted besides student emails
const ClubEmail = "esports@maua.br"

var (
	studentEmailPattern = regexp.MustCompile(`^\d{2}\.\d{5}-\d@maua\.br$`)
	discordIDPattern    = regexp.MustCompile(`^\d{17,20}$`)
)

// fieldMessages maps "<json field>.<tag>" to the message shown to clients
var fieldMessages = map[string]string{
	"email.required":      "O email é obrigatório",
	"email.mauaemail":     "Email inválido. Use o formato XX.XXXXX-X@maua.br",
	"discordID.discordid": "O discordID deve conter apenas números (17 a 20 dígitos)",
	"nome.required":       "O nome é obrigatório",
	"time.required":       "O time é obrigatório",
	"time.min":            "O time informado é inválido",
	"id.required":         "O ID do time é obrigatório",
	"id.min":              "O ID do time deve ser um número positivo",
	"name.required":       "Nome do campeonato é obrigatório",
	"titulo.required":     "O título é obrigatório",
	"descricao.required":  "A descrição é obrigatória",
	"status.required":     "O status é obrigatório",
}

// NewValidator returns a validator with the club rules registered.
// Field names in errors follow the json tags.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("mauaemail", func(fl validator.FieldLevel) bool {
		return IsInstitutionalEmail(fl.Field().String())
	})
	// empty unlinks the account
	_ = v.RegisterValidation("discordid", func(fl validator.FieldLevel) bool {
		id := fl.Field().String()
		return id == "" || discordIDPattern.MatchString(id)
	})
	_ = v.RegisterValidation("usertype", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("tournamentstatus", func(fl validator.FieldLevel) bool {
		return models.TournamentStatus(fl.Field().String()).IsValid()
	})

	return v
}

// IsInstitutionalEmail reports whether email is a student address or the club account
func IsInstitutionalEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	return email == ClubEmail || studentEmailPattern.MatchString(email)
}

// validationError converts validator output into an apperrors.ValidationError
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("", err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, messageFor(fe))
	}
	return apperrors.NewValidationErrors(msgs...)
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório", fe.Field())
	case "usertype", "tournamentstatus", "oneof":
		return fmt.Sprintf("`%v` is not a valid enum value for path `%s`.", fe.Value(), fe.Field())
	case "max":
		return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("O campo %s deve ter no mínimo %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("O campo %s é inválido", fe.Field())
}

// requireText rejects an explicitly provided blank value on partial updates
func requireText(value *string, message string) error {
	if value != nil && strings.TrimSpace(*value) == "" {
		return apperrors.NewValidationErrors(message)
	}
	return nil
}
