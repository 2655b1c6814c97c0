// Package repository defines the storage ports used by the services.
//
// Lookups that find nothing return a NOT_FOUND AppError, never (nil, nil).
package repository

import (
	"context"
	"time"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
)

// SearchColumns are the shipment columns matched by free-text search.
var SearchColumns = []string{
	"company_name",
	"hs_code",
	"origin_country",
	"origin_city",
	"destination_country",
	"destination_city",
	"carrier",
	"vessel_name",
	"bol_number",
}

// ListQuery selects one page of an org-scoped list.
type ListQuery struct {
	Query  string
	Limit  int
	Offset int
}

// ShipmentRepository reads the unified shipments view.
type ShipmentRepository interface {
	// SearchUnified returns one page of matches, newest first, and the exact total.
	SearchUnified(ctx context.Context, req domain.SearchRequest) ([]domain.Shipment, int, error)
}

// ContactRepository reads and writes CRM contacts.
type ContactRepository interface {
	FindByExternalID(ctx context.Context, orgID, externalID string) (*domain.Contact, error)
	// FindByEmail matches the normalized email within the org.
	FindByEmail(ctx context.Context, orgID, email string) (*domain.Contact, error)
	Insert(ctx context.Context, contact domain.Contact) (*domain.Contact, error)
	Update(ctx context.Context, contact domain.Contact) (*domain.Contact, error)
	List(ctx context.Context, orgID string, query ListQuery) ([]domain.Contact, int, error)
}

// CampaignRepository reads and writes campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign domain.Campaign) (*domain.Campaign, error)
	ListByOrg(ctx context.Context, orgID string, query ListQuery) ([]domain.Campaign, int, error)
}

// StoredResponse is a replayable HTTP response.
type StoredResponse struct {
	StatusCode  int       `json:"status_code" dynamodbav:"StatusCode"`
	ContentType string    `json:"content_type" dynamodbav:"ContentType"`
	Body        []byte    `json:"body" dynamodbav:"Body"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"CreatedAt"`
}

// IdempotencyStore remembers the first response for an idempotency key.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (*StoredResponse, bool, error)
	// Put stores resp unless key already exists; it reports whether it stored.
	Put(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) (bool, error)
}
