package validation

import (
	"errors"
	"strings"

	"github.com/fadilmartias/cover-letter-assistant/internal/apperr"
	"github.com/fadilmartias/cover-letter-assistant/internal/model"
	"github.com/go-playground/validator/v10"
)

const (
	MsgMissingFields = "Alle Textfelder müssen ausgefüllt sein."
	MsgNotMeaningful = "Stärken und Schwächen müssen sinnvolle Eingaben sein."
)

// ProfileValidator checks an ApplicantProfile before any expensive work runs.
type ProfileValidator struct {
	validate *validator.Validate
}

func NewProfileValidator() *ProfileValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("meaningful", func(fl validator.FieldLevel) bool {
		return IsValidInput(fl.Field().String())
	})
	return &ProfileValidator{validate: v}
}

// Validate returns an invalid_input failure naming every offending field.
// Missing fields take precedence over meaningless ones in the message.
func (v *ProfileValidator) Validate(p model.ApplicantProfile) error {
	err := v.validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(apperr.KindInvalidInput, MsgMissingFields, err)
	}

	fields := make(map[string]string, len(verrs))
	message := MsgNotMeaningful
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fe.Tag()
		if fe.Tag() == "required" {
			message = MsgMissingFields
		}
	}
	return apperr.NewFormError(message, fields)
}
