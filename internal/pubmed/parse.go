package pubmed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/skoglund/pharmapapers/internal/logger"
	"github.com/skoglund/pharmapapers/internal/paper"
)

// monthNames maps the three-letter month abbreviations PubMed uses to their
// numeric form.
var monthNames = map[string]string{
	"Jan": "1", "Feb": "2", "Mar": "3", "Apr": "4",
	"May": "5", "Jun": "6", "Jul": "7", "Aug": "8",
	"Sep": "9", "Oct": "10", "Nov": "11", "Dec": "12",
}

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// parseArticle converts one PubmedArticle element into a Paper. It returns
// an error for records missing an identifier or title; the caller skips
// those without aborting the batch.
func parseArticle(a pubmedArticle) (paper.Paper, error) {
	citation := a.MedlineCitation
	article := citation.Article

	p, err := paper.NewPaper(citation.PMID.Text, article.Title.Text)
	if err != nil {
		return paper.Paper{}, err
	}

	p.Published = parsePubDate(article.Journal.JournalIssue.PubDate)
	p.Journal = article.Journal.Title
	p.Abstract = parseAbstract(article.Abstract)
	p.Authors = parseAuthors(article.AuthorList)

	return p, nil
}

// parsePubDate builds a publication date from the raw PubDate fields. A
// missing year means no date at all; a missing month or day defaults to 1;
// anything non-numeric after month-name mapping also means no date. Bad
// dates are suppressed, never an error.
func parsePubDate(d pubDateNode) *paper.PublicationDate {
	if d.Year == "" {
		return nil
	}

	month := d.Month
	if month == "" {
		month = "1"
	}
	if mapped, ok := monthNames[month]; ok {
		month = mapped
	}
	day := d.Day
	if day == "" {
		day = "1"
	}

	year, err := strconv.Atoi(d.Year)
	if err != nil {
		return nil
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return nil
	}
	dd, err := strconv.Atoi(day)
	if err != nil {
		return nil
	}

	return &paper.PublicationDate{Year: year, Month: m, Day: dd}
}

// parseAbstract joins all abstract sections with a single space.
func parseAbstract(a abstractNode) string {
	if len(a.Sections) == 0 {
		return ""
	}
	parts := make([]string, 0, len(a.Sections))
	for _, s := range a.Sections {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

// parseAuthors converts the author list, skipping entries with no derivable
// name. Only the first affiliation of an author is kept. The XML carries no
// reliable corresponding-author marker, so IsCorresponding is never set.
func parseAuthors(list authorList) []paper.Author {
	var authors []paper.Author
	for _, a := range list.Authors {
		name := authorName(a)
		if name == "" {
			continue
		}

		affiliation := ""
		if len(a.AffiliationInfo) > 0 {
			affiliation = a.AffiliationInfo[0].Affiliation
		}

		email := ""
		if affiliation != "" {
			email = emailPattern.FindString(affiliation)
		}

		author, err := paper.NewAuthor(name, affiliation, email)
		if err != nil {
			logger.Warn("Failed to parse author: %v", err)
			continue
		}
		authors = append(authors, author)
	}
	return authors
}

// authorName derives a display name: given + family name when both are
// present, initials + family name otherwise, bare family name as a further
// fallback, and the collective group name when there is no family name.
func authorName(a authorNode) string {
	if a.LastName != "" {
		if a.ForeName != "" {
			return fmt.Sprintf("%s %s", a.ForeName, a.LastName)
		}
		if a.Initials != "" {
			return fmt.Sprintf("%s %s", a.Initials, a.LastName)
		}
		return a.LastName
	}
	return a.CollectiveName
}
