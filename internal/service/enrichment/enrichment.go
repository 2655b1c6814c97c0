// Package enrichment looks up firmographic data for a company.
package enrichment

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/clearbit/clearbit-go/clearbit"
	"go.uber.org/zap"
)

// Sources of a Company record.
const (
	SourceClearbit  = "clearbit"
	SourceHeuristic = "heuristic"
)

// Company is an enrichment result. Heuristic records are flagged so callers can
// tell them apart from provider data.
type Company struct {
	Name        string `json:"name"`
	Domain      string `json:"domain,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
	Country     string `json:"country,omitempty"`
	Employees   int    `json:"employees,omitempty"`
	Source      string `json:"source"`
	Fallback    bool   `json:"fallback"`
}

// CompanyFinder finds a company by web domain.
type CompanyFinder interface {
	FindCompany(ctx context.Context, domain string) (*Company, error)
}

// ClearbitFinder uses the Clearbit Company API.
type ClearbitFinder struct {
	client *clearbit.Client
}

// NewClearbitFinder creates a finder for apiKey. Extra options override the defaults.
func NewClearbitFinder(apiKey string, timeout time.Duration, opts ...clearbit.Option) *ClearbitFinder {
	options := append([]clearbit.Option{
		clearbit.WithAPIKey(apiKey),
		clearbit.WithHTTPClient(&http.Client{}),
		clearbit.WithTimeout(timeout),
	}, opts...)
	return &ClearbitFinder{client: clearbit.NewClient(options...)}
}

type findResult struct {
	company *clearbit.Company
	err     error
}

// FindCompany returns when ctx ends even though the Clearbit client takes no
// context; the request itself is bounded by the client timeout.
func (f *ClearbitFinder) FindCompany(ctx context.Context, domain string) (*Company, error) {
	done := make(chan findResult, 1)
	go func() {
		c, _, err := f.client.Company.Find(clearbit.CompanyFindParams{Domain: domain})
		done <- findResult{company: c, err: err}
	}()

	var c *clearbit.Company
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		c = res.company
	}
	return &Company{
		Name:        c.Name,
		Domain:      c.Domain,
		Industry:    c.Category.Industry,
		Description: c.Description,
		Country:     c.Geo.Country,
		Employees:   c.Metrics.Employees,
		Source:      SourceClearbit,
	}, nil
}

// Service enriches companies with a provider when one is configured.
type Service struct {
	finder CompanyFinder
	logger *zap.Logger
}

// NewService creates the service. A nil finder always yields heuristic records.
func NewService(finder CompanyFinder, logger *zap.Logger) *Service {
	return &Service{finder: finder, logger: logger}
}

// Company enriches a company name or domain. It never fails: provider misses and
// errors degrade to Heuristic.
func (s *Service) Company(ctx context.Context, nameOrDomain string) Company {
	domain := DomainOf(nameOrDomain)
	if domain != "" && s.finder != nil {
		found, err := s.finder.FindCompany(ctx, domain)
		if err == nil && found != nil {
			found.Source = SourceClearbit
			return *found
		}
		s.logger.Info("Company enrichment fell back to heuristic",
			zap.String("domain", domain),
			zap.Error(err),
		)
	}
	return Heuristic(nameOrDomain)
}

// DomainOf returns the bare host when input looks like a web domain, otherwise "".
func DomainOf(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if s == "" || strings.ContainsAny(s, " \t,") {
		return ""
	}
	dot := strings.LastIndexByte(s, '.')
	if dot <= 0 || len(s)-dot-1 < 2 {
		return ""
	}
	for _, r := range s[dot+1:] {
		if r < 'a' || r > 'z' {
			return ""
		}
	}
	return s
}

var industryKeywords = []struct {
	keyword  string
	industry string
}{
	{"logistic", "Logistics"},
	{"freight", "Logistics"},
	{"shipping", "Logistics"},
	{"electronic", "Electronics"},
	{"semiconductor", "Electronics"},
	{"apparel", "Apparel"},
	{"textile", "Apparel"},
	{"garment", "Apparel"},
	{"food", "Food & Beverage"},
	{"beverage", "Food & Beverage"},
	{"auto", "Automotive"},
	{"motor", "Automotive"},
	{"furniture", "Furniture"},
	{"pharma", "Pharmaceuticals"},
	{"chemical", "Chemicals"},
	{"steel", "Metals"},
}

// Heuristic derives a record from the input alone.
func Heuristic(nameOrDomain string) Company {
	name := strings.Join(strings.Fields(nameOrDomain), " ")
	domain := DomainOf(name)
	if domain != "" {
		label := domain[:strings.IndexByte(domain, '.')]
		if r, size := utf8.DecodeRuneInString(label); r != utf8.RuneError {
			name = string(unicode.ToUpper(r)) + label[size:]
		}
	}

	c := Company{Name: name, Domain: domain, Source: SourceHeuristic, Fallback: true}
	lower := strings.ToLower(nameOrDomain)
	for _, k := range industryKeywords {
		if strings.Contains(lower, k.keyword) {
			c.Industry = k.industry
			break
		}
	}
	return c
}
