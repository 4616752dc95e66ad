package models

import "strings"

// Sentinel and default option values shared by the form and the endpoint
const (
	OtherOption             = "Other"
	AssistanceOtherID       = "other"
	YesOption               = "Yes"
	NoOption                = "No"
	DefaultPhoneCountryCode = "+61"
	DefaultLang             = "en"
)

// Country is a selectable country of origin. An empty DialCode marks the
// country as unmapped for phone code auto-fill.
type Country struct {
	Name     string
	DialCode string
}

// Countries lists the origin countries offered on the check-in form.
var Countries = []Country{
	{Name: "Australia", DialCode: "+61"},
	{Name: "Bangladesh", DialCode: "+880"},
	{Name: "Brazil", DialCode: "+55"},
	{Name: "China", DialCode: "+86"},
	{Name: "Colombia", DialCode: "+57"},
	{Name: "Hong Kong", DialCode: "+852"},
	{Name: "India", DialCode: "+91"},
	{Name: "Indonesia", DialCode: "+62"},
	{Name: "Japan", DialCode: "+81"},
	{Name: "Malaysia", DialCode: "+60"},
	{Name: "Nepal", DialCode: "+977"},
	{Name: "Pakistan", DialCode: "+92"},
	{Name: "Philippines", DialCode: "+63"},
	{Name: "South Korea", DialCode: "+82"},
	{Name: "Sri Lanka", DialCode: "+94"},
	{Name: "Thailand", DialCode: "+66"},
	{Name: "Vietnam", DialCode: "+84"},
	{Name: OtherOption},
}

// DialCode returns the dial code for a listed country.
func DialCode(country string) (string, bool) {
	for _, c := range Countries {
		if c.Name == country && c.DialCode != "" {
			return c.DialCode, true
		}
	}
	return "", false
}

// DialCodes lists the distinct dial codes, in country order.
func DialCodes() []string {
	seen := map[string]bool{}
	var codes []string
	for _, c := range Countries {
		if c.DialCode == "" || seen[c.DialCode] {
			continue
		}
		seen[c.DialCode] = true
		codes = append(codes, c.DialCode)
	}
	return codes
}

// CountryNames lists the selectable country options.
func CountryNames() []string {
	names := make([]string, 0, len(Countries))
	for _, c := range Countries {
		names = append(names, c.Name)
	}
	return names
}

// Institutions lists the education institutions offered on the form.
var Institutions = []string{
	"Australian Catholic University",
	"Macquarie University",
	"TAFE NSW",
	"University of New South Wales",
	"University of Newcastle",
	"University of Sydney",
	"University of Technology Sydney",
	"University of Wollongong",
	"Western Sydney University",
	OtherOption,
}

// ResidencyAnswers are the choices for "new to Australia".
var ResidencyAnswers = []string{YesOption, NoOption}

// ResidencyDurations are the choices offered when a student is not new.
var ResidencyDurations = []string{
	"Less than 6 months",
	"6-12 months",
	"1-2 years",
	"More than 2 years",
}

// AssistanceCategory pairs the id held by the form with the label forwarded
// to the spreadsheet.
type AssistanceCategory struct {
	ID    string
	Label string
}

// AssistanceCategories lists the kinds of help a student can ask for.
var AssistanceCategories = []AssistanceCategory{
	{ID: "accommodation", Label: "Accommodation"},
	{ID: "employment", Label: "Jobs and employment"},
	{ID: "wellbeing", Label: "Health and wellbeing"},
	{ID: "legal", Label: "Legal and visa information"},
	{ID: "study", Label: "Study support"},
	{ID: "community", Label: "Meeting people and community groups"},
	{ID: "transport", Label: "Transport and getting around"},
	{ID: AssistanceOtherID, Label: "Other"},
}

// AssistanceLabel maps a category id to its label. Unknown ids are returned
// unchanged.
func AssistanceLabel(id string) string {
	for _, c := range AssistanceCategories {
		if c.ID == id {
			return c.Label
		}
	}
	return id
}

// AssistanceIDs lists the category ids in display order.
func AssistanceIDs() []string {
	ids := make([]string, 0, len(AssistanceCategories))
	for _, c := range AssistanceCategories {
		ids = append(ids, c.ID)
	}
	return ids
}

// RatingScale is the ordinal scale used by both feedback questions.
var RatingScale = []string{"1", "2", "3", "4", "5"}

// EoiInterests lists the options on the expression of interest form.
var EoiInterests = []string{
	"Volunteering",
	"Events and workshops",
	"Mentoring",
	"Newsletter",
	OtherOption,
}

// IsOther reports whether value is the "Other" sentinel in either spelling.
func IsOther(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), OtherOption)
}
