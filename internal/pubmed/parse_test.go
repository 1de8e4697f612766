package pubmed

import (
	"encoding/xml"
	"testing"
)

func TestParsePubDate(t *testing.T) {
	tests := []struct {
		name  string
		in    pubDateNode
		want  string // ISO form, "" means no date
	}{
		{"full numeric date", pubDateNode{Year: "2023", Month: "4", Day: "17"}, "2023-04-17"},
		{"month name", pubDateNode{Year: "2021", Month: "Sep", Day: "3"}, "2021-09-03"},
		{"missing month and day", pubDateNode{Year: "2020"}, "2020-01-01"},
		{"missing day", pubDateNode{Year: "2019", Month: "Dec"}, "2019-12-01"},
		{"no year", pubDateNode{Month: "Jan", Day: "5"}, ""},
		{"unparseable month", pubDateNode{Year: "2022", Month: "Winter"}, ""},
		{"season range month", pubDateNode{Year: "2022", Month: "May-Jun"}, ""},
		{"non-numeric year", pubDateNode{Year: "MMXX"}, ""},
		{"non-numeric day", pubDateNode{Year: "2022", Month: "3", Day: "3rd"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePubDate(tt.in)
			if tt.want == "" {
				if got != nil {
					t.Errorf("parsePubDate(%+v) = %v, want nil", tt.in, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parsePubDate(%+v) = nil, want %s", tt.in, tt.want)
			}
			if got.ISO() != tt.want {
				t.Errorf("parsePubDate(%+v) = %s, want %s", tt.in, got.ISO(), tt.want)
			}
		})
	}
}

func TestParseAbstract(t *testing.T) {
	tests := []struct {
		name string
		in   abstractNode
		want string
	}{
		{"absent", abstractNode{}, ""},
		{"single section", abstractNode{Sections: []textNode{{Text: "One paragraph."}}}, "One paragraph."},
		{
			"structured sections joined by space",
			abstractNode{Sections: []textNode{{Text: "BACKGROUND text."}, {Text: "METHODS text."}, {Text: "RESULTS text."}}},
			"BACKGROUND text. METHODS text. RESULTS text.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseAbstract(tt.in); got != tt.want {
				t.Errorf("parseAbstract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthorName(t *testing.T) {
	tests := []struct {
		name string
		in   authorNode
		want string
	}{
		{"fore and last", authorNode{ForeName: "Jane", LastName: "Smith"}, "Jane Smith"},
		{"initials and last", authorNode{Initials: "J", LastName: "Smith"}, "J Smith"},
		{"last only", authorNode{LastName: "Smith"}, "Smith"},
		{"collective name", authorNode{CollectiveName: "COVID Vaccine Study Group"}, "COVID Vaccine Study Group"},
		{"nothing derivable", authorNode{}, ""},
		{"fore name wins over initials", authorNode{ForeName: "Jane", Initials: "J", LastName: "Smith"}, "Jane Smith"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := authorName(tt.in); got != tt.want {
				t.Errorf("authorName(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAuthors(t *testing.T) {
	list := authorList{Authors: []authorNode{
		{
			ForeName: "Jane",
			LastName: "Smith",
			AffiliationInfo: []affiliationInfo{
				{Affiliation: "Pfizer Inc., New York, NY, USA. jane.smith@pfizer.com."},
				{Affiliation: "Second Affiliation That Is Dropped"},
			},
		},
		{LastName: ""}, // no derivable name, skipped
		{LastName: "Doe"},
	}}

	authors := parseAuthors(list)
	if len(authors) != 2 {
		t.Fatalf("parseAuthors() returned %d authors, want 2", len(authors))
	}

	first := authors[0]
	if first.Name != "Jane Smith" {
		t.Errorf("Name = %q, want %q", first.Name, "Jane Smith")
	}
	// Only the first affiliation entry is kept.
	if first.Affiliation != "Pfizer Inc., New York, NY, USA. jane.smith@pfizer.com." {
		t.Errorf("Affiliation = %q, want first entry only", first.Affiliation)
	}
	if first.Email != "jane.smith@pfizer.com" {
		t.Errorf("Email = %q, want jane.smith@pfizer.com", first.Email)
	}
	// Corresponding-author status is not derivable from the source data.
	if first.IsCorresponding {
		t.Error("IsCorresponding = true, want false")
	}

	if authors[1].Name != "Doe" {
		t.Errorf("second author Name = %q, want Doe", authors[1].Name)
	}
	if authors[1].Email != "" {
		t.Errorf("second author Email = %q, want empty", authors[1].Email)
	}
}

func TestParseArticleXMLShapes(t *testing.T) {
	// PMID carries a Version attribute, ArticleTitle carries nested markup,
	// a lone author appears without siblings: every shape normalizes.
	doc := `<?xml version="1.0" ?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation Status="MEDLINE" Owner="NLM">
      <PMID Version="1">36000001</PMID>
      <Article PubModel="Print">
        <Journal>
          <Title>Journal of Testing</Title>
          <JournalIssue>
            <PubDate><Year>2023</Year><Month>Feb</Month></PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>Antibody responses in adults</ArticleTitle>
        <Abstract>
          <AbstractText Label="BACKGROUND">First part.</AbstractText>
          <AbstractText Label="RESULTS">Second part.</AbstractText>
        </Abstract>
        <AuthorList CompleteYN="Y">
          <Author ValidYN="Y">
            <LastName>Nguyen</LastName>
            <ForeName>Minh</ForeName>
            <AffiliationInfo>
              <Affiliation>Moderna Therapeutics, Cambridge, MA.</Affiliation>
            </AffiliationInfo>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

	var set articleSet
	if err := xml.Unmarshal([]byte(doc), &set); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(set.Articles) != 1 {
		t.Fatalf("got %d articles, want 1", len(set.Articles))
	}

	p, err := parseArticle(set.Articles[0])
	if err != nil {
		t.Fatalf("parseArticle: %v", err)
	}

	if p.PubmedID != "36000001" {
		t.Errorf("PubmedID = %q, want 36000001", p.PubmedID)
	}
	if p.Title != "Antibody responses in adults" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Journal != "Journal of Testing" {
		t.Errorf("Journal = %q", p.Journal)
	}
	if p.Abstract != "First part. Second part." {
		t.Errorf("Abstract = %q", p.Abstract)
	}
	if p.Published == nil || p.Published.ISO() != "2023-02-01" {
		t.Errorf("Published = %v, want 2023-02-01", p.Published)
	}
	if len(p.Authors) != 1 || p.Authors[0].Name != "Minh Nguyen" {
		t.Errorf("Authors = %+v", p.Authors)
	}
}

func TestParseArticleMissingTitle(t *testing.T) {
	a := pubmedArticle{}
	a.MedlineCitation.PMID.Text = "123"
	if _, err := parseArticle(a); err == nil {
		t.Error("parseArticle() with no title returned nil error, want error")
	}
}
