package form

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/communiteer/welcomehub/internal/app/models"
	"github.com/communiteer/welcomehub/internal/pkg/validation"
)

// Endpoint paths the forms post to
const (
	CheckinPath = "/api/checkin"
	EoiPath     = "/api/eoi"
)

var validate = validator.New()

// isEmail is the client-side syntax check on email fields.
func isEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

var isRating = validation.OneOf(models.RatingScale...)

// checkinRules is the shared check-in table with the client-only format checks.
var checkinRules = []validation.Rule{
	models.RuleName,
	models.RulePhoneCountryCode,
	models.RulePrimaryEmail.WithCheck(isEmail),
	models.RuleOriginCountry,
	models.RuleOriginCountryOther,
	models.RuleEducationInstitution,
	models.RuleEducationInstitutionOther,
	models.RuleNewToAustralia,
	models.RuleAustraliaDuration,
	models.RuleAssistanceNeeded,
	models.RuleAssistanceOther,
	models.RuleConnectImportance.WithCheck(isRating),
	models.RuleHelpfulRating.WithCheck(isRating),
}

// CheckinForm is the controller of the check-in modal.
type CheckinForm = Controller[models.CheckinSubmission]

// CheckinSnapshot is a copy of the check-in form state.
type CheckinSnapshot = Snapshot[models.CheckinSubmission]

// CheckinSpec describes the check-in form.
func CheckinSpec() Spec[models.CheckinSubmission] {
	return Spec[models.CheckinSubmission]{
		Path:  CheckinPath,
		Rules: checkinRules,
		New:   models.NewCheckinSubmission,
		Field: func(values models.CheckinSubmission, key string) string {
			return values.Field(key)
		},
		Set:        setCheckinField,
		Payload:    checkinPayload,
		Lang:       func(values *models.CheckinSubmission, lang string) { values.Lang = lang },
		SuccessKey: "checkin.success",
	}
}

// NewCheckinForm creates a check-in controller.
func NewCheckinForm(endpoint Endpoint, opts Options) *CheckinForm {
	return New(CheckinSpec(), endpoint, opts)
}

func setCheckinField(values *models.CheckinSubmission, key, value string) error {
	if err := values.Set(key, value); err != nil {
		return err
	}

	switch key {
	case models.FieldOriginCountry:
		if value != models.OtherOption {
			values.OriginCountryOther = ""
		}
		if code, ok := models.DialCode(value); ok {
			values.PhoneCountryCode = code
		}
	case models.FieldEducationInstitution:
		if value != models.OtherOption {
			values.EducationInstitutionOther = ""
		}
	case models.FieldNewToAustralia:
		if value != models.NoOption {
			values.AustraliaDuration = ""
		}
	case models.FieldAssistanceNeeded:
		if !strings.EqualFold(value, models.AssistanceOtherID) {
			values.AssistanceOther = ""
		}
	}
	return nil
}

// checkinPayload trims every field, swaps the assistance id for its English
// label and derives the computed fields.
func checkinPayload(values models.CheckinSubmission, lang string) any {
	values.FullName = ""
	values.AssistanceNeeded = models.AssistanceLabel(strings.TrimSpace(values.AssistanceNeeded))
	values.Lang = lang
	values.SubmittedAt = ""
	return values.Normalize()
}
