// Package supabasedb implements the repositories on the Supabase PostgREST API.
package supabasedb

import (
	"fmt"
	"math"
	"strings"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// Tables maps each repository to its relation.
type Tables struct {
	Shipments string
	Contacts  string
	Campaigns string
}

// fromFunc starts a query against one relation.
type fromFunc func(table string) *postgrest.QueryBuilder

// NewClient connects with the service role key. Row-level security is enforced by the
// explicit org filters every repository applies.
func NewClient(url, serviceRoleKey string) (*supabase.Client, error) {
	if url == "" || serviceRoleKey == "" {
		return nil, fmt.Errorf("supabase url and service role key are required")
	}
	client, err := supabase.NewClient(url, serviceRoleKey, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create Supabase client: %w", err)
	}
	return client, nil
}

// filter is one PostgREST horizontal filter.
type filter struct {
	op     string
	column string
	value  string
}

// plan is a query described independently of the HTTP client.
type plan struct {
	filters  []filter
	or       string
	orderBy  string
	from, to int
}

func (p plan) apply(fb *postgrest.FilterBuilder) *postgrest.FilterBuilder {
	for _, f := range p.filters {
		switch f.op {
		case "eq":
			fb = fb.Eq(f.column, f.value)
		case "ilike":
			fb = fb.Ilike(f.column, f.value)
		case "like":
			fb = fb.Like(f.column, f.value)
		case "gte":
			fb = fb.Gte(f.column, f.value)
		case "lte":
			fb = fb.Lte(f.column, f.value)
		}
	}
	if p.or != "" {
		fb = fb.Or(p.or, "")
	}
	if p.orderBy != "" {
		fb = fb.Order(p.orderBy, &postgrest.OrderOpts{Ascending: false})
	}
	if p.to >= p.from {
		fb = fb.Range(p.from, p.to, "")
	}
	return fb
}

var termReplacer = strings.NewReplacer(
	",", " ", "(", " ", ")", " ", "*", " ", "%", " ", "\"", " ", "\\", " ", ":", " ",
)

// sanitizeTerm drops characters that carry meaning in PostgREST filter syntax.
func sanitizeTerm(term string) string {
	return strings.Join(strings.Fields(termReplacer.Replace(term)), " ")
}

// anyColumnContains builds an or= expression matching term in any of columns.
func anyColumnContains(columns []string, term string) string {
	term = sanitizeTerm(term)
	if term == "" {
		return ""
	}
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		parts = append(parts, fmt.Sprintf("%s.ilike.*%s*", c, term))
	}
	return strings.Join(parts, ",")
}

// contains wraps term for a substring ilike filter.
func contains(term string) string {
	return "*" + sanitizeTerm(term) + "*"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`, "*", `\*`)

// exactFold matches value case-insensitively with no wildcards.
func exactFold(value string) string {
	return likeEscaper.Replace(value)
}

// window converts offset and limit into an inclusive row range.
func window(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = 1
	}
	if offset > math.MaxInt-(limit-1) {
		return offset, math.MaxInt
	}
	return offset, offset + limit - 1
}
