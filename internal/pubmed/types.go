// Package pubmed provides a rate-limited client for the NCBI E-utilities
// API (ESearch and EFetch against the pubmed database).
package pubmed

// esearchResponse is the JSON body returned by esearch.fcgi.
type esearchResponse struct {
	Error         string `json:"error"`
	ESearchResult struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// The efetch.fcgi XML is irregular: fields that are usually bare strings can
// carry attributes and nested markup, single elements appear where lists are
// expected and vice versa. The structs below normalize every such shape once
// at decode time: ",chardata" fields extract the text payload regardless of
// surrounding structure, and slice fields absorb both the lone-element and
// the repeated-element form.

// articleSet is the root of the efetch XML body.
type articleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	MedlineCitation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    textNode    `xml:"PMID"`
	Article articleNode `xml:"Article"`
}

type articleNode struct {
	Title      textNode     `xml:"ArticleTitle"`
	Journal    journalNode  `xml:"Journal"`
	Abstract   abstractNode `xml:"Abstract"`
	AuthorList authorList   `xml:"AuthorList"`
}

// textNode extracts the character data of an element, ignoring attributes
// and nested markup.
type textNode struct {
	Text string `xml:",chardata"`
}

type journalNode struct {
	Title        string       `xml:"Title"`
	JournalIssue journalIssue `xml:"JournalIssue"`
}

type journalIssue struct {
	PubDate pubDateNode `xml:"PubDate"`
}

// pubDateNode carries the raw date strings; Month may be a number or a
// three-letter month name.
type pubDateNode struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

// abstractNode holds zero or more AbstractText sections (structured
// abstracts have several, each with a Label attribute).
type abstractNode struct {
	Sections []textNode `xml:"AbstractText"`
}

type authorList struct {
	Authors []authorNode `xml:"Author"`
}

type authorNode struct {
	LastName        string            `xml:"LastName"`
	ForeName        string            `xml:"ForeName"`
	Initials        string            `xml:"Initials"`
	CollectiveName  string            `xml:"CollectiveName"`
	AffiliationInfo []affiliationInfo `xml:"AffiliationInfo"`
}

type affiliationInfo struct {
	Affiliation string `xml:"Affiliation"`
}
