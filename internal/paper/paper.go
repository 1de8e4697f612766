// Package paper defines the core domain types for PubMed papers and authors.
package paper

import (
	"fmt"
	"sort"
	"strings"
)

// Author represents an author of a research paper.
type Author struct {
	Name            string `json:"name"`
	Affiliation     string `json:"affiliation,omitempty"`
	Email           string `json:"email,omitempty"`
	IsCorresponding bool   `json:"is_corresponding,omitempty"`
}

// NewAuthor creates an Author, rejecting empty or whitespace-only names.
func NewAuthor(name, affiliation, email string) (Author, error) {
	if strings.TrimSpace(name) == "" {
		return Author{}, fmt.Errorf("author name cannot be empty")
	}
	return Author{
		Name:        name,
		Affiliation: affiliation,
		Email:       email,
	}, nil
}

// PublicationDate represents a publication date with optional month and day.
type PublicationDate struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12, defaults to 1 when the source omits it
	Day   int `json:"day"`   // 1-31, defaults to 1 when the source omits it
}

// ISO returns the date in YYYY-MM-DD format.
func (d PublicationDate) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Paper represents a research paper retrieved from PubMed.
type Paper struct {
	PubmedID  string           `json:"pubmed_id"`
	Title     string           `json:"title"`
	Published *PublicationDate `json:"published,omitempty"`
	Authors   []Author         `json:"authors,omitempty"` // document order
	Abstract  string           `json:"abstract,omitempty"`
	Journal   string           `json:"journal,omitempty"`
}

// NewPaper creates a Paper, rejecting empty identifiers and titles.
func NewPaper(pubmedID, title string) (Paper, error) {
	if strings.TrimSpace(pubmedID) == "" {
		return Paper{}, fmt.Errorf("PubMed ID cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return Paper{}, fmt.Errorf("paper title cannot be empty")
	}
	return Paper{PubmedID: pubmedID, Title: title}, nil
}

// NonAcademicAuthors returns the authors whose affiliations do not look
// academic. An author with no affiliation at all is not counted.
func (p Paper) NonAcademicAuthors() []Author {
	var out []Author
	for _, a := range p.Authors {
		if isNonAcademicAffiliation(a.Affiliation) {
			out = append(out, a)
		}
	}
	return out
}

// CompanyAffiliations returns the sorted unique affiliation strings of the
// non-academic authors.
func (p Paper) CompanyAffiliations() []string {
	seen := make(map[string]bool)
	for _, a := range p.NonAcademicAuthors() {
		if a.Affiliation != "" {
			seen[a.Affiliation] = true
		}
	}
	out := make([]string, 0, len(seen))
	for aff := range seen {
		out = append(out, aff)
	}
	sort.Strings(out)
	return out
}

// CorrespondingAuthorEmail returns the email of the first corresponding
// author that has one, or "" if there is none.
func (p Paper) CorrespondingAuthorEmail() string {
	for _, a := range p.Authors {
		if a.IsCorresponding && a.Email != "" {
			return a.Email
		}
	}
	return ""
}

// authorAcademicKeywords disqualify an author from the non-academic set.
// Narrower than the classifier's academicKeywords: division, section, unit
// and the center-for phrasings do not disqualify an author here. The two
// lists historically diverged and downstream results depend on keeping them
// distinct, so do not merge them.
var authorAcademicKeywords = []string{
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
}

// isNonAcademicAffiliation reports whether an affiliation is non-empty and
// free of academic keywords. Matching is case-insensitive substring
// containment, not word-boundary aware.
func isNonAcademicAffiliation(affiliation string) bool {
	if affiliation == "" {
		return false
	}
	lower := strings.ToLower(affiliation)
	for _, kw := range authorAcademicKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}
