// Package mocks provides in-memory implementations of the repository interfaces for testing.
package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

// failures is embedded by every mock so tests can inject errors per method.
type failures struct {
	mu           sync.RWMutex
	shouldFailOn map[string]error
	calls        map[string]int
}

// SetError configures the mock to return an error for a specific method.
func (f *failures) SetError(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFailOn == nil {
		f.shouldFailOn = make(map[string]error)
	}
	f.shouldFailOn[method] = err
}

// ClearErrors removes all configured errors.
func (f *failures) ClearErrors() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shouldFailOn = nil
}

// Calls returns how many times method was invoked.
func (f *failures) Calls(method string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.calls[method]
}

func (f *failures) enter(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[method]++
	return f.shouldFailOn[method]
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ShipmentRepository is an in-memory unified shipments view.
type ShipmentRepository struct {
	failures
	shipments []domain.Shipment
}

// NewShipmentRepository seeds the view with rows.
func NewShipmentRepository(rows ...domain.Shipment) *ShipmentRepository {
	return &ShipmentRepository{shipments: rows}
}

// Add appends rows to the view.
func (m *ShipmentRepository) Add(rows ...domain.Shipment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shipments = append(m.shipments, rows...)
}

func (m *ShipmentRepository) SearchUnified(ctx context.Context, req domain.SearchRequest) ([]domain.Shipment, int, error) {
	if err := m.enter("SearchUnified"); err != nil {
		return nil, 0, err
	}

	m.mu.RLock()
	matched := make([]domain.Shipment, 0, len(m.shipments))
	for _, s := range m.shipments {
		if matches(s, req) {
			matched = append(matched, s)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ShipmentDate > matched[j].ShipmentDate
	})
	return page(matched, req.Offset, req.Limit), len(matched), nil
}

func matches(s domain.Shipment, req domain.SearchRequest) bool {
	if req.Mode != domain.ModeAll && req.Mode != "" && s.Mode != req.Mode {
		return false
	}
	if req.Query != "" {
		fields := []string{s.CompanyName, s.HSCode, s.OriginCountry, s.OriginCity, s.DestinationCountry,
			s.DestinationCity, s.Carrier, s.VesselName, s.BOLNumber}
		hit := false
		for _, f := range fields {
			if containsFold(f, req.Query) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	f := req.Filters
	switch {
	case f.DateFrom != "" && s.ShipmentDate < f.DateFrom,
		f.DateTo != "" && s.ShipmentDate > f.DateTo,
		f.HSCode != "" && !strings.HasPrefix(s.HSCode, f.HSCode),
		f.OriginCountry != "" && !containsFold(s.OriginCountry, f.OriginCountry),
		f.OriginCity != "" && !containsFold(s.OriginCity, f.OriginCity),
		f.DestinationCountry != "" && !containsFold(s.DestinationCountry, f.DestinationCountry),
		f.DestinationCity != "" && !containsFold(s.DestinationCity, f.DestinationCity),
		f.Carrier != "" && !containsFold(s.Carrier, f.Carrier):
		return false
	}
	return true
}

// ContactRepository is an in-memory contacts table.
type ContactRepository struct {
	failures
	contacts map[string]domain.Contact
	order    []string
	nextID   int
}

// NewContactRepository creates an empty contacts table.
func NewContactRepository() *ContactRepository {
	return &ContactRepository{contacts: make(map[string]domain.Contact)}
}

// All returns every stored contact in insertion order.
func (m *ContactRepository) All() []domain.Contact {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Contact, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.contacts[id])
	}
	return out
}

func (m *ContactRepository) FindByExternalID(ctx context.Context, orgID, externalID string) (*domain.Contact, error) {
	if err := m.enter("FindByExternalID"); err != nil {
		return nil, err
	}
	for _, c := range m.All() {
		if c.OrgID == orgID && c.ExternalID == externalID {
			return &c, nil
		}
	}
	return nil, appErrors.NewNotFound("contact not found")
}

func (m *ContactRepository) FindByEmail(ctx context.Context, orgID, email string) (*domain.Contact, error) {
	if err := m.enter("FindByEmail"); err != nil {
		return nil, err
	}
	email = domain.NormalizeEmail(email)
	for _, c := range m.All() {
		if c.OrgID == orgID && domain.NormalizeEmail(c.Email) == email {
			return &c, nil
		}
	}
	return nil, appErrors.NewNotFound("contact not found")
}

func (m *ContactRepository) Insert(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	if err := m.enter("Insert"); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	now := time.Now().UTC()
	contact.ID = fmt.Sprintf("contact-%d", m.nextID)
	contact.CreatedAt = &now
	contact.UpdatedAt = &now
	m.contacts[contact.ID] = contact
	m.order = append(m.order, contact.ID)
	return &contact, nil
}

func (m *ContactRepository) Update(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	if err := m.enter("Update"); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.contacts[contact.ID]; !ok {
		return nil, appErrors.NewNotFound("contact not found")
	}
	now := time.Now().UTC()
	contact.UpdatedAt = &now
	m.contacts[contact.ID] = contact
	return &contact, nil
}

func (m *ContactRepository) List(ctx context.Context, orgID string, query repository.ListQuery) ([]domain.Contact, int, error) {
	if err := m.enter("List"); err != nil {
		return nil, 0, err
	}
	matched := make([]domain.Contact, 0)
	for _, c := range m.All() {
		if c.OrgID != orgID {
			continue
		}
		if query.Query != "" && !containsFold(c.CompanyName, query.Query) &&
			!containsFold(c.FullName, query.Query) && !containsFold(c.Email, query.Query) {
			continue
		}
		matched = append(matched, c)
	}
	// Newest first.
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return page(matched, query.Offset, query.Limit), len(matched), nil
}

// CampaignRepository is an in-memory campaigns table.
type CampaignRepository struct {
	failures
	campaigns []domain.Campaign
}

// NewCampaignRepository creates an empty campaigns table.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{}
}

func (m *CampaignRepository) Create(ctx context.Context, campaign domain.Campaign) (*domain.Campaign, error) {
	if err := m.enter("Create"); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	campaign.ID = fmt.Sprintf("campaign-%d", len(m.campaigns)+1)
	campaign.CreatedAt = &now
	m.campaigns = append(m.campaigns, campaign)
	return &campaign, nil
}

func (m *CampaignRepository) ListByOrg(ctx context.Context, orgID string, query repository.ListQuery) ([]domain.Campaign, int, error) {
	if err := m.enter("ListByOrg"); err != nil {
		return nil, 0, err
	}

	m.mu.RLock()
	matched := make([]domain.Campaign, 0)
	for i := len(m.campaigns) - 1; i >= 0; i-- {
		if m.campaigns[i].OrgID == orgID {
			matched = append(matched, m.campaigns[i])
		}
	}
	m.mu.RUnlock()
	return page(matched, query.Offset, query.Limit), len(matched), nil
}

// IdempotencyStore is an in-memory idempotency table. TTLs are ignored.
type IdempotencyStore struct {
	failures
	items map[string]repository.StoredResponse
}

// NewIdempotencyStore creates an empty store.
func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{items: make(map[string]repository.StoredResponse)}
}

func (m *IdempotencyStore) Get(ctx context.Context, key string) (*repository.StoredResponse, bool, error) {
	if err := m.enter("Get"); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	resp, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	return &resp, true, nil
}

func (m *IdempotencyStore) Put(ctx context.Context, key string, resp repository.StoredResponse, ttl time.Duration) (bool, error) {
	if err := m.enter("Put"); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[key]; ok {
		return false, nil
	}
	m.items[key] = resp
	return true, nil
}

var (
	_ repository.ShipmentRepository = (*ShipmentRepository)(nil)
	_ repository.ContactRepository  = (*ContactRepository)(nil)
	_ repository.CampaignRepository = (*CampaignRepository)(nil)
	_ repository.IdempotencyStore   = (*IdempotencyStore)(nil)
)
