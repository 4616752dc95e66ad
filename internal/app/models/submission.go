package models

import (
	"fmt"
	"strings"
)

// Check-in field names, as they appear on the wire
const (
	FieldFirstName                 = "firstName"
	FieldLastName                  = "lastName"
	FieldFullName                  = "fullName"
	FieldPrimaryEmail              = "primaryEmail"
	FieldSchoolEmail               = "schoolEmail"
	FieldMobileNumber              = "mobileNumber"
	FieldPhoneCountryCode          = "phoneCountryCode"
	FieldOriginCountry             = "originCountry"
	FieldOriginCountryOther        = "originCountryOther"
	FieldEducationInstitution      = "educationInstitution"
	FieldEducationInstitutionOther = "educationInstitutionOther"
	FieldNewToAustralia            = "newToAustralia"
	FieldAustraliaDuration         = "australiaDuration"
	FieldAssistanceNeeded          = "assistanceNeeded"
	FieldAssistanceOther           = "assistanceOther"
	FieldConnectImportance         = "connectImportance"
	FieldHelpfulRating             = "helpfulRating"
	FieldLang                      = "lang"
)

// EOI field names
const (
	FieldEmail    = "email"
	FieldInterest = "interest"
	FieldDetails  = "details"
)

// CheckinSubmission is one student check-in, both as held by the form and as
// forwarded to the webhook.
type CheckinSubmission struct {
	FirstName                 string `json:"firstName" example:"Ana"`
	LastName                  string `json:"lastName" example:"Lopez"`
	FullName                  string `json:"fullName" example:"Ana Lopez"`
	PrimaryEmail              string `json:"primaryEmail" example:"ana@example.com"`
	SchoolEmail               string `json:"schoolEmail" example:"ana.lopez@student.uts.edu.au"`
	MobileNumber              string `json:"mobileNumber" example:"412345678"`
	PhoneCountryCode          string `json:"phoneCountryCode" example:"+61"`
	OriginCountry             string `json:"originCountry" example:"Colombia"`
	OriginCountryOther        string `json:"originCountryOther"`
	EducationInstitution      string `json:"educationInstitution" example:"University of Technology Sydney"`
	EducationInstitutionOther string `json:"educationInstitutionOther"`
	NewToAustralia            string `json:"newToAustralia" example:"Yes" enums:"Yes,No"`
	AustraliaDuration         string `json:"australiaDuration"`
	AssistanceNeeded          string `json:"assistanceNeeded" example:"Accommodation"`
	AssistanceOther           string `json:"assistanceOther"`
	ConnectImportance         string `json:"connectImportance" example:"4" enums:"1,2,3,4,5"`
	HelpfulRating             string `json:"helpfulRating" example:"5" enums:"1,2,3,4,5"`
	Lang                      string `json:"lang" example:"en"`
	SubmittedAt               string `json:"submittedAt,omitempty" example:"2025-02-17T01:02:03.456Z"`
}

// NewCheckinSubmission returns a submission holding the form defaults.
func NewCheckinSubmission() CheckinSubmission {
	return CheckinSubmission{
		PhoneCountryCode: DefaultPhoneCountryCode,
		Lang:             DefaultLang,
	}
}

func (s *CheckinSubmission) fields() map[string]*string {
	return map[string]*string{
		FieldFirstName:                 &s.FirstName,
		FieldLastName:                  &s.LastName,
		FieldFullName:                  &s.FullName,
		FieldPrimaryEmail:              &s.PrimaryEmail,
		FieldSchoolEmail:               &s.SchoolEmail,
		FieldMobileNumber:              &s.MobileNumber,
		FieldPhoneCountryCode:          &s.PhoneCountryCode,
		FieldOriginCountry:             &s.OriginCountry,
		FieldOriginCountryOther:        &s.OriginCountryOther,
		FieldEducationInstitution:      &s.EducationInstitution,
		FieldEducationInstitutionOther: &s.EducationInstitutionOther,
		FieldNewToAustralia:            &s.NewToAustralia,
		FieldAustraliaDuration:         &s.AustraliaDuration,
		FieldAssistanceNeeded:          &s.AssistanceNeeded,
		FieldAssistanceOther:           &s.AssistanceOther,
		FieldConnectImportance:         &s.ConnectImportance,
		FieldHelpfulRating:             &s.HelpfulRating,
		FieldLang:                      &s.Lang,
	}
}

// Field returns the value of a named field, or "" for unknown names.
func (s CheckinSubmission) Field(name string) string {
	if p, ok := s.fields()[name]; ok {
		return *p
	}
	return ""
}

// Set assigns a named field.
func (s *CheckinSubmission) Set(name, value string) error {
	p, ok := s.fields()[name]
	if !ok {
		return fmt.Errorf("unknown check-in field %q", name)
	}
	*p = value
	return nil
}

// Normalize trims every text field, lower-cases the primary email, derives
// the full name when blank and defaults lang. SubmittedAt is left untouched.
func (s CheckinSubmission) Normalize() CheckinSubmission {
	fields := s.fields()
	for _, p := range fields {
		*p = strings.TrimSpace(*p)
	}
	s.PrimaryEmail = strings.ToLower(s.PrimaryEmail)
	if s.FullName == "" {
		s.FullName = JoinFullName(s.FirstName, s.LastName)
	}
	if s.Lang == "" {
		s.Lang = DefaultLang
	}
	return s
}

// EoiSubmission is one expression of interest.
type EoiSubmission struct {
	FirstName   string `json:"firstName" example:"Minh"`
	LastName    string `json:"lastName" example:"Tran"`
	Email       string `json:"email" example:"minh@example.com"`
	Interest    string `json:"interest" example:"Volunteering"`
	Details     string `json:"details"`
	Lang        string `json:"lang" example:"vi"`
	SubmittedAt string `json:"submittedAt,omitempty" example:"2025-02-17T01:02:03.456Z"`
}

// NewEoiSubmission returns an EOI holding the form defaults.
func NewEoiSubmission() EoiSubmission {
	return EoiSubmission{Lang: DefaultLang}
}

func (s *EoiSubmission) fields() map[string]*string {
	return map[string]*string{
		FieldFirstName: &s.FirstName,
		FieldLastName:  &s.LastName,
		FieldEmail:     &s.Email,
		FieldInterest:  &s.Interest,
		FieldDetails:   &s.Details,
		FieldLang:      &s.Lang,
	}
}

// Field returns the value of a named field, or "" for unknown names.
func (s EoiSubmission) Field(name string) string {
	if p, ok := s.fields()[name]; ok {
		return *p
	}
	return ""
}

// Set assigns a named field.
func (s *EoiSubmission) Set(name, value string) error {
	p, ok := s.fields()[name]
	if !ok {
		return fmt.Errorf("unknown EOI field %q", name)
	}
	*p = value
	return nil
}

// Normalize trims every text field, lower-cases the email and defaults lang.
func (s EoiSubmission) Normalize() EoiSubmission {
	for _, p := range s.fields() {
		*p = strings.TrimSpace(*p)
	}
	s.Email = strings.ToLower(s.Email)
	if s.Lang == "" {
		s.Lang = DefaultLang
	}
	return s
}

// JoinFullName joins first and last name with single spaces.
func JoinFullName(firstName, lastName string) string {
	return strings.Join(strings.Fields(firstName+" "+lastName), " ")
}
