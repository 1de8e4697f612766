// Package filter selects papers with pharmaceutical or biotech company
// affiliations and summarizes collections of papers.
package filter

import (
	"github.com/skoglund/pharmapapers/internal/logger"
	"github.com/skoglund/pharmapapers/internal/paper"
)

// Statistics summarizes a collection of papers.
type Statistics struct {
	TotalPapers                  int `json:"total_papers"`
	PapersWithPharmaAffiliations int `json:"papers_with_pharma_affiliations"`
	UniqueCompanies              int `json:"unique_companies"`
	TotalNonAcademicAuthors      int `json:"total_non_academic_authors"`
	PapersWithCorrespondingMails int `json:"papers_with_corresponding_mails"`
}

// PharmaPapers returns the papers that have at least one non-academic author
// whose affiliation passes the company test. Input order is preserved.
func PharmaPapers(papers []paper.Paper) []paper.Paper {
	var filtered []paper.Paper
	for _, p := range papers {
		if hasPharmaAffiliation(p) {
			filtered = append(filtered, p)
		}
	}
	logger.Info("Filtered %d papers from %d total papers", len(filtered), len(papers))
	return filtered
}

// hasPharmaAffiliation reports whether any non-academic author of the paper
// has a pharma/biotech company affiliation.
func hasPharmaAffiliation(p paper.Paper) bool {
	for _, a := range p.NonAcademicAuthors() {
		if a.Affiliation != "" && paper.IsCompany(a.Affiliation) {
			return true
		}
	}
	return false
}

// Summarize computes aggregate statistics over the given papers.
func Summarize(papers []paper.Paper) Statistics {
	uniqueCompanies := make(map[string]bool)
	stats := Statistics{TotalPapers: len(papers)}

	for _, p := range papers {
		nonAcademic := p.NonAcademicAuthors()
		if len(nonAcademic) > 0 {
			stats.PapersWithPharmaAffiliations++
			stats.TotalNonAcademicAuthors += len(nonAcademic)
			for _, a := range nonAcademic {
				if a.Affiliation != "" {
					uniqueCompanies[a.Affiliation] = true
				}
			}
		}
		if p.CorrespondingAuthorEmail() != "" {
			stats.PapersWithCorrespondingMails++
		}
	}

	stats.UniqueCompanies = len(uniqueCompanies)
	return stats
}
