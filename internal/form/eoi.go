package form

import (
	"github.com/communiteer/welcomehub/internal/app/models"
	"github.com/communiteer/welcomehub/internal/pkg/validation"
)

var eoiRules = []validation.Rule{
	models.RuleEoiName,
	models.RuleEoiEmail.WithCheck(isEmail),
	models.RuleEoiInterest,
}

// EoiForm is the controller of the expression of interest modal.
type EoiForm = Controller[models.EoiSubmission]

// EoiSnapshot is a copy of the EOI form state.
type EoiSnapshot = Snapshot[models.EoiSubmission]

// EoiSpec describes the EOI form.
func EoiSpec() Spec[models.EoiSubmission] {
	return Spec[models.EoiSubmission]{
		Path:  EoiPath,
		Rules: eoiRules,
		New:   models.NewEoiSubmission,
		Field: func(values models.EoiSubmission, key string) string {
			return values.Field(key)
		},
		Set: func(values *models.EoiSubmission, key, value string) error {
			return values.Set(key, value)
		},
		Payload: func(values models.EoiSubmission, lang string) any {
			values.Lang = lang
			values.SubmittedAt = ""
			return values.Normalize()
		},
		Lang:       func(values *models.EoiSubmission, lang string) { values.Lang = lang },
		SuccessKey: "eoi.success",
	}
}

// NewEoiForm creates an EOI controller.
func NewEoiForm(endpoint Endpoint, opts Options) *EoiForm {
	return New(EoiSpec(), endpoint, opts)
}
