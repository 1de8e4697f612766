package pubmed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/skoglund/pharmapapers/internal/logger"
	"github.com/skoglund/pharmapapers/internal/paper"
)

const (
	// BaseURL is the NCBI E-utilities base URL.
	BaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// RequestInterval is the minimum spacing between outbound requests,
	// roughly three requests per second as NCBI asks of unkeyed clients.
	RequestInterval = 340 * time.Millisecond

	// DefaultMaxResults caps a search when the caller passes no limit.
	DefaultMaxResults = 100
)

// Client is a rate-limited HTTP client for the PubMed E-utilities API.
// Each instance carries its own limiter state; requests on one client never
// delay another.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	email      string
	apiKey     string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEmail sets the contact email sent for NCBI API identification.
func WithEmail(email string) ClientOption {
	return func(c *Client) {
		c.email = email
	}
}

// WithAPIKey sets the NCBI API key for increased rate limits.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new E-utilities client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Every(RequestInterval), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries PubMed and returns fully parsed papers. It issues one
// ESearch call for PMIDs and, when any come back, one batched EFetch call
// for all of them. An empty ID list short-circuits without a second
// request. Transport and API failures abort the whole search with an error
// matching ErrRetrieval; individual articles that fail to parse are logged
// and skipped.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]paper.Paper, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	pmids, err := c.searchIDs(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}
	if len(pmids) == 0 {
		logger.Info("No papers found for query: %s", query)
		return nil, nil
	}

	papers, err := c.fetchDetails(ctx, pmids)
	if err != nil {
		return nil, err
	}

	logger.Info("Found %d papers for query: %s", len(papers), query)
	return papers, nil
}

// searchIDs calls esearch.fcgi and returns the matching PMIDs.
func (c *Client) searchIDs(ctx context.Context, query string, maxResults int) ([]string, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmax":  {fmt.Sprintf("%d", maxResults)},
		"retmode": {"json"},
		"sort":    {"relevance"},
	}

	body, err := c.get(ctx, "esearch.fcgi", params)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var data esearchResponse
	if err := json.NewDecoder(body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: parsing search response: %v", ErrRetrieval, err)
	}
	if data.Error != "" {
		return nil, &APIError{Message: data.Error}
	}

	return data.ESearchResult.IDList, nil
}

// fetchDetails calls efetch.fcgi once for all PMIDs and parses the XML body.
func (c *Client) fetchDetails(ctx context.Context, pmids []string) ([]paper.Paper, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
		"rettype": {"abstract"},
	}

	body, err := c.get(ctx, "efetch.fcgi", params)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var set articleSet
	if err := xml.NewDecoder(body).Decode(&set); err != nil {
		return nil, fmt.Errorf("%w: parsing fetch response: %v", ErrRetrieval, err)
	}

	var papers []paper.Paper
	for _, article := range set.Articles {
		p, err := parseArticle(article)
		if err != nil {
			logger.Warn("Failed to parse paper data: %v", err)
			continue
		}
		papers = append(papers, p)
	}
	return papers, nil
}

// get waits for the rate limiter, then issues a GET against the named
// E-utilities endpoint. The caller owns the returned body.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrRetrieval, err)
	}

	if c.email != "" {
		params.Set("email", c.email)
	}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrRetrieval, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrieval, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("%s returned HTTP %d", endpoint, resp.StatusCode),
		}
	}

	return resp.Body, nil
}
