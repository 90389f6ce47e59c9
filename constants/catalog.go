package constants

// SpecSections holds the fixed set of technical specification sections a model
// record may carry. Sections outside this list are left untouched.
var SpecSections = []string{
	"engine", "operational", "measurements", "hydraulics",
	"weights", "dimensions", "electrical", "drivetrain",
	"body", "other",
}

// RequiredGeneralFields holds the fields every general section must contain
// after normalization.
var RequiredGeneralFields = []string{
	"manufacturer", "model", "year", "msrp",
	"category", "subcategory", "description", "countries",
}

// ValidCountries is the closed set of distribution countries.
var ValidCountries = []string{"US", "CA"}

// EmptyExemptFields keep their empty-string values through null stripping.
var EmptyExemptFields = map[string]struct{}{
	"desc":           {},
	"longDesc":       {},
	"attachmentName": {},
}

// DefaultModelName identifies records whose general.model is absent or malformed.
const DefaultModelName = "Unknown Model"

// UnitReplacement is one literal substring substitution.
type UnitReplacement struct {
	Old string
	New string
}

// UnitReplacements is applied in order over spec description text. Compound
// abbreviations come before their single-letter suffixes.
var UnitReplacements = []UnitReplacement{
	{"in.", "in"}, {"ft.", "ft"}, {"FT.", "FT"}, {"Ft.", "Ft"}, {"yd.", "yd"},
	{"mi.", "mi"}, {"cm.", "cm"}, {"mm.", "mm"}, {"m.", "m"},
	{"max.", "max"}, {"Max.", "Max"}, {"min.", "min"}, {"Min.", "Min"},
	{"avg.", "avg"}, {"Avg.", "Avg"}, {"nom.", "nom"}, {"Nom.", "Nom"},
	{"lbs.", "lbs"}, {"lb.", "lb"}, {"oz.", "oz"},
	{"cu.", "cu"}, {"gal.", "gal"}, {"qt.", "qt"}, {"pt.", "pt"},
	{"sec.", "sec"}, {"Sec.", "Sec"}, {"hr.", "hr"}, {"hrs.", "hr"},
	{"°F.", "°F"}, {"°C.", "°C"},
}
