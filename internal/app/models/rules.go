package models

import "github.com/communiteer/welcomehub/internal/pkg/validation"

// Check-in rules in the order the form reports them. Message holds the
// catalog key used by the client.
var (
	RuleName = validation.Rule{
		Name:    "name",
		Fields:  []string{FieldFirstName, FieldLastName},
		Message: "checkin.error.name",
	}
	RulePhoneCountryCode = validation.Rule{
		Name:    "phoneCountryCode",
		Fields:  []string{FieldPhoneCountryCode},
		Message: "checkin.error.phoneCode",
	}
	RulePrimaryEmail = validation.Rule{
		Name:    "primaryEmail",
		Fields:  []string{FieldPrimaryEmail},
		Message: "checkin.error.primaryEmail",
	}
	RuleOriginCountry = validation.Rule{
		Name:    "originCountry",
		Fields:  []string{FieldOriginCountry},
		Message: "checkin.error.country",
	}
	RuleOriginCountryOther = validation.Rule{
		Name:    "originCountryOther",
		Fields:  []string{FieldOriginCountryOther},
		When:    &validation.Condition{Field: FieldOriginCountry, Equals: OtherOption},
		Message: "checkin.error.countryOther",
	}
	RuleEducationInstitution = validation.Rule{
		Name:    "educationInstitution",
		Fields:  []string{FieldEducationInstitution},
		Message: "checkin.error.institution",
	}
	RuleEducationInstitutionOther = validation.Rule{
		Name:    "educationInstitutionOther",
		Fields:  []string{FieldEducationInstitutionOther},
		When:    &validation.Condition{Field: FieldEducationInstitution, Equals: OtherOption},
		Message: "checkin.error.institutionOther",
	}
	RuleNewToAustralia = validation.Rule{
		Name:    "newToAustralia",
		Fields:  []string{FieldNewToAustralia},
		Message: "checkin.error.residency",
	}
	RuleAustraliaDuration = validation.Rule{
		Name:    "australiaDuration",
		Fields:  []string{FieldAustraliaDuration},
		When:    &validation.Condition{Field: FieldNewToAustralia, Equals: NoOption},
		Message: "checkin.error.residencyDuration",
	}
	RuleAssistanceNeeded = validation.Rule{
		Name:    "assistanceNeeded",
		Fields:  []string{FieldAssistanceNeeded},
		Message: "checkin.error.assistance",
	}
	// The form holds the id "other" while the forwarded value is the label
	// "Other", so the comparison folds case.
	RuleAssistanceOther = validation.Rule{
		Name:    "assistanceOther",
		Fields:  []string{FieldAssistanceOther},
		When:    &validation.Condition{Field: FieldAssistanceNeeded, Equals: AssistanceOtherID, FoldCase: true},
		Message: "checkin.error.assistanceOther",
	}
	RuleConnectImportance = validation.Rule{
		Name:    "connectImportance",
		Fields:  []string{FieldConnectImportance},
		Message: "checkin.error.connectRating",
	}
	RuleHelpfulRating = validation.Rule{
		Name:    "helpfulRating",
		Fields:  []string{FieldHelpfulRating},
		Message: "checkin.error.helpfulRating",
	}
)

// CheckinRules is the full check-in requirement table.
var CheckinRules = []validation.Rule{
	RuleName,
	RulePhoneCountryCode,
	RulePrimaryEmail,
	RuleOriginCountry,
	RuleOriginCountryOther,
	RuleEducationInstitution,
	RuleEducationInstitutionOther,
	RuleNewToAustralia,
	RuleAustraliaDuration,
	RuleAssistanceNeeded,
	RuleAssistanceOther,
	RuleConnectImportance,
	RuleHelpfulRating,
}

// EOI rules, in reporting order
var (
	RuleEoiName = validation.Rule{
		Name:    "name",
		Fields:  []string{FieldFirstName, FieldLastName},
		Message: "eoi.error.name",
	}
	RuleEoiEmail = validation.Rule{
		Name:    "email",
		Fields:  []string{FieldEmail},
		Message: "eoi.error.email",
	}
	RuleEoiInterest = validation.Rule{
		Name:    "interest",
		Fields:  []string{FieldInterest},
		Message: "eoi.error.interest",
	}
)

// EoiRules is the full EOI requirement table.
var EoiRules = []validation.Rule{
	RuleEoiName,
	RuleEoiEmail,
	RuleEoiInterest,
}
