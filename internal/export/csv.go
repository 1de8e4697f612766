// Package export serializes filtered papers to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skoglund/pharmapapers/internal/paper"
)

// Headers is the fixed CSV column layout.
var Headers = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// WriteCSV writes the papers as CSV, one row per paper, preceded by the
// header row. Quoting of embedded commas, quotes and newlines follows
// encoding/csv.
func WriteCSV(w io.Writer, papers []paper.Paper) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range papers {
		if err := cw.Write(row(p)); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", p.PubmedID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the papers as CSV to the named file.
func WriteFile(path string, papers []paper.Paper) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, papers)
}

// String renders the papers as a CSV string.
func String(papers []paper.Paper) (string, error) {
	var b strings.Builder
	if err := WriteCSV(&b, papers); err != nil {
		return "", err
	}
	return b.String(), nil
}

// row converts a paper to its CSV row.
func row(p paper.Paper) []string {
	nonAcademic := p.NonAcademicAuthors()
	names := make([]string, len(nonAcademic))
	for i, a := range nonAcademic {
		names[i] = a.Name
	}

	pubDate := ""
	if p.Published != nil {
		pubDate = p.Published.ISO()
	}

	return []string{
		p.PubmedID,
		p.Title,
		pubDate,
		strings.Join(names, "; "),
		strings.Join(p.CompanyAffiliations(), "; "),
		p.CorrespondingAuthorEmail(),
	}
}
