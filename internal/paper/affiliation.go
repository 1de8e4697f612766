package paper

import "strings"

// academicKeywords mark an affiliation as academic. This list is broader
// than authorAcademicKeywords (see paper.go); keep the two separate.
var academicKeywords = []string{
	"university",
	"college",
	"school",
	"institute",
	"academy",
	"research center",
	"medical center",
	"hospital",
	"clinic",
	"laboratory",
	"dept",
	"department",
	"faculty",
	"campus",
	"division",
	"section",
	"unit",
	"center for",
	"centre for",
}

// pharmaKeywords mark an affiliation as pharma/biotech industry.
var pharmaKeywords = []string{
	"pharmaceutical",
	"pharma",
	"biotech",
	"biotechnology",
	"therapeutics",
	"biopharmaceutical",
	"biopharma",
	"medicines",
	"drug",
	"drugs",
	"biologics",
}

// legalEntityKeywords mark an affiliation as a commercial entity when no
// academic keyword is present.
var legalEntityKeywords = []string{
	"inc",
	"inc.",
	"incorporated",
	"ltd",
	"ltd.",
	"limited",
	"corp",
	"corp.",
	"corporation",
	"company",
	"co",
	"co.",
	"ag",
	"gmbh",
	"llc",
	"plc",
	"sa",
	"nv",
	"bv",
	"group",
	"holdings",
	"enterprises",
}

// knownCompanies is a partial list of pharmaceutical/biotech companies.
var knownCompanies = []string{
	"pfizer",
	"novartis",
	"roche",
	"johnson & johnson",
	"merck",
	"glaxosmithkline",
	"gsk",
	"sanofi",
	"abbvie",
	"bristol myers squibb",
	"astrazeneca",
	"eli lilly",
	"boehringer ingelheim",
	"bayer",
	"takeda",
	"gilead",
	"biogen",
	"regeneron",
	"vertex",
	"moderna",
	"biontech",
	"amgen",
	"genentech",
	"celgene",
	"illumina",
	"danaher",
	"thermo fisher",
	"agilent",
	"waters",
	"perkinelmer",
}

// IsAcademic reports whether the affiliation contains any academic keyword.
// Matching is case-insensitive substring containment; an affiliation with no
// academic keyword is not thereby a company, it is merely unknown.
func IsAcademic(affiliation string) bool {
	if affiliation == "" {
		return false
	}
	lower := strings.ToLower(affiliation)
	return containsAny(lower, academicKeywords)
}

// IsCompany reports whether the affiliation looks like a pharmaceutical or
// biotech company. Checks run in priority order: known company names, then
// pharma/biotech keywords, then legal-entity keywords provided no academic
// keyword co-occurs. Substring matching is deliberately not word-boundary
// aware ("co" matches inside "coordinator").
func IsCompany(affiliation string) bool {
	if affiliation == "" {
		return false
	}
	lower := strings.ToLower(affiliation)

	if containsAny(lower, knownCompanies) {
		return true
	}
	if containsAny(lower, pharmaKeywords) {
		return true
	}
	if containsAny(lower, legalEntityKeywords) && !containsAny(lower, academicKeywords) {
		return true
	}
	return false
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
