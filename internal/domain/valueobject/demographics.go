package valueobject

import "fmt"

// unknownLabel is displayed for codes the application form accepts but has no name for.
const unknownLabel = "Unknown"

// Sex is an immutable value object for the applicant's sex code.
type Sex struct {
	code int
}

var (
	SexMale   = Sex{code: 1}
	SexFemale = Sex{code: 2}
)

// SexFromCode validates and wraps a raw sex code.
func SexFromCode(code int) (Sex, error) {
	switch code {
	case 1:
		return SexMale, nil
	case 2:
		return SexFemale, nil
	default:
		return Sex{}, fmt.Errorf("invalid sex code %d: must be 1 (male) or 2 (female)", code)
	}
}

// Code returns the numeric code used by the model.
func (s Sex) Code() int { return s.code }

// Label returns the display name.
func (s Sex) Label() string {
	switch s.code {
	case 1:
		return "Male"
	case 2:
		return "Female"
	default:
		return unknownLabel
	}
}

// IsZero returns true if the Sex has not been set.
func (s Sex) IsZero() bool { return s.code == 0 }

// Education is an immutable value object for the education level code (0-4).
type Education struct {
	code int
}

var (
	EducationUnspecified    = Education{code: 0}
	EducationGraduateSchool = Education{code: 1}
	EducationUniversity     = Education{code: 2}
	EducationHighSchool     = Education{code: 3}
	EducationOthers         = Education{code: 4}
)

// EducationFromCode validates and wraps a raw education code.
func EducationFromCode(code int) (Education, error) {
	if code < 0 || code > 4 {
		return Education{}, fmt.Errorf("invalid education code %d: must be between 0 and 4", code)
	}
	return Education{code: code}, nil
}

// Code returns the numeric code used by the model.
func (e Education) Code() int { return e.code }

// Label returns the display name. Code 0 has no name in the source data.
func (e Education) Label() string {
	switch e.code {
	case 1:
		return "Graduate School"
	case 2:
		return "University"
	case 3:
		return "High School"
	case 4:
		return "Others"
	default:
		return unknownLabel
	}
}

// Marriage is an immutable value object for the marital status code (0-3).
type Marriage struct {
	code int
}

var (
	MarriageUnspecified = Marriage{code: 0}
	MarriageMarried     = Marriage{code: 1}
	MarriageSingle      = Marriage{code: 2}
	MarriageOthers      = Marriage{code: 3}
)

// MarriageFromCode validates and wraps a raw marital status code.
func MarriageFromCode(code int) (Marriage, error) {
	if code < 0 || code > 3 {
		return Marriage{}, fmt.Errorf("invalid marriage code %d: must be between 0 and 3", code)
	}
	return Marriage{code: code}, nil
}

// Code returns the numeric code used by the model.
func (m Marriage) Code() int { return m.code }

// Label returns the display name. Code 0 has no name in the source data.
func (m Marriage) Label() string {
	switch m.code {
	case 1:
		return "Married"
	case 2:
		return "Single"
	case 3:
		return "Others"
	default:
		return unknownLabel
	}
}
