package kiosk

import (
	"strings"

	"github.com/communiteer/welcomehub/internal/app/models"
)

// Field is one row of the kiosk form. Fields with Options cycle through them
// instead of accepting free text.
type Field struct {
	Key     string
	Label   string
	Options []string
	// Display renders an option value, e.g. an assistance id as its label.
	Display func(value string) string
	// Visible hides the row unless it returns true.
	Visible func(value func(key string) string) bool
}

func (f Field) visible(value func(string) string) bool {
	return f.Visible == nil || f.Visible(value)
}

func (f Field) display(value string) string {
	if f.Display != nil && value != "" {
		return f.Display(value)
	}
	return value
}

func when(key, sentinel string) func(func(string) string) bool {
	return func(value func(string) string) bool {
		return strings.EqualFold(value(key), sentinel)
	}
}

// CheckinFields lays out the check-in form.
func CheckinFields() []Field {
	return []Field{
		{Key: models.FieldFirstName, Label: "First name"},
		{Key: models.FieldLastName, Label: "Last name"},
		{Key: models.FieldPrimaryEmail, Label: "Email"},
		{Key: models.FieldSchoolEmail, Label: "School email"},
		{Key: models.FieldPhoneCountryCode, Label: "Phone code", Options: models.DialCodes()},
		{Key: models.FieldMobileNumber, Label: "Mobile"},
		{Key: models.FieldOriginCountry, Label: "Country of origin", Options: models.CountryNames()},
		{Key: models.FieldOriginCountryOther, Label: "Country (other)", Visible: when(models.FieldOriginCountry, models.OtherOption)},
		{Key: models.FieldEducationInstitution, Label: "Institution", Options: models.Institutions},
		{Key: models.FieldEducationInstitutionOther, Label: "Institution (other)", Visible: when(models.FieldEducationInstitution, models.OtherOption)},
		{Key: models.FieldNewToAustralia, Label: "New to Australia?", Options: models.ResidencyAnswers},
		{Key: models.FieldAustraliaDuration, Label: "Time in Australia", Options: models.ResidencyDurations, Visible: when(models.FieldNewToAustralia, models.NoOption)},
		{Key: models.FieldAssistanceNeeded, Label: "Help needed", Options: models.AssistanceIDs(), Display: models.AssistanceLabel},
		{Key: models.FieldAssistanceOther, Label: "Help (other)", Visible: when(models.FieldAssistanceNeeded, models.AssistanceOtherID)},
		{Key: models.FieldConnectImportance, Label: "Connecting matters (1-5)", Options: models.RatingScale},
		{Key: models.FieldHelpfulRating, Label: "Page helpful (1-5)", Options: models.RatingScale},
	}
}

// EoiFields lays out the expression of interest form.
func EoiFields() []Field {
	return []Field{
		{Key: models.FieldFirstName, Label: "First name"},
		{Key: models.FieldLastName, Label: "Last name"},
		{Key: models.FieldEmail, Label: "Email"},
		{Key: models.FieldInterest, Label: "Interest", Options: models.EoiInterests},
		{Key: models.FieldDetails, Label: "Details"},
	}
}
