package domain

import (
	"strings"
	"time"
)

// Contact is a row of the CRM contacts table, scoped to one organization.
type Contact struct {
	ID          string     `json:"id,omitempty"`
	OrgID       string     `json:"org_id"`
	CompanyName string     `json:"company_name"`
	FullName    string     `json:"full_name,omitempty"`
	Title       string     `json:"title,omitempty"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	LinkedInURL string     `json:"linkedin_url,omitempty"`
	ExternalID  string     `json:"external_id,omitempty"`
	Tags        []string   `json:"tags"`
	Source      string     `json:"source,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// NormalizeEmail is the identity form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MergeTags returns the union of existing and incoming tags. Tags are trimmed,
// compared case-insensitively, and keep the casing and order in which they were first seen.
func MergeTags(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))

	for _, list := range [][]string{existing, incoming} {
		for _, tag := range list {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			key := strings.ToLower(tag)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, tag)
		}
	}
	return merged
}
