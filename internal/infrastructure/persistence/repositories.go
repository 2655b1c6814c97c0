package persistence

import (
	"context"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
)

// ShipmentRepository guards a shipment repository.
type ShipmentRepository struct {
	next  repository.ShipmentRepository
	guard *Guard
	table string
}

// NewShipmentRepository decorates next.
func NewShipmentRepository(next repository.ShipmentRepository, guard *Guard, table string) *ShipmentRepository {
	return &ShipmentRepository{next: next, guard: guard, table: table}
}

func (r *ShipmentRepository) SearchUnified(ctx context.Context, req domain.SearchRequest) ([]domain.Shipment, int, error) {
	res, err := run(ctx, r.guard, "search_unified", r.table, func(ctx context.Context) (pageResult[domain.Shipment], error) {
		items, total, err := r.next.SearchUnified(ctx, req)
		return pageResult[domain.Shipment]{items: items, total: total}, err
	})
	return res.items, res.total, err
}

// ContactRepository guards a contact repository.
type ContactRepository struct {
	next  repository.ContactRepository
	guard *Guard
	table string
}

// NewContactRepository decorates next.
func NewContactRepository(next repository.ContactRepository, guard *Guard, table string) *ContactRepository {
	return &ContactRepository{next: next, guard: guard, table: table}
}

func (r *ContactRepository) FindByExternalID(ctx context.Context, orgID, externalID string) (*domain.Contact, error) {
	return run(ctx, r.guard, "find_by_external_id", r.table, func(ctx context.Context) (*domain.Contact, error) {
		return r.next.FindByExternalID(ctx, orgID, externalID)
	})
}

func (r *ContactRepository) FindByEmail(ctx context.Context, orgID, email string) (*domain.Contact, error) {
	return run(ctx, r.guard, "find_by_email", r.table, func(ctx context.Context) (*domain.Contact, error) {
		return r.next.FindByEmail(ctx, orgID, email)
	})
}

func (r *ContactRepository) Insert(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	return run(ctx, r.guard, "insert", r.table, func(ctx context.Context) (*domain.Contact, error) {
		return r.next.Insert(ctx, contact)
	})
}

func (r *ContactRepository) Update(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	return run(ctx, r.guard, "update", r.table, func(ctx context.Context) (*domain.Contact, error) {
		return r.next.Update(ctx, contact)
	})
}

func (r *ContactRepository) List(ctx context.Context, orgID string, query repository.ListQuery) ([]domain.Contact, int, error) {
	res, err := run(ctx, r.guard, "list", r.table, func(ctx context.Context) (pageResult[domain.Contact], error) {
		items, total, err := r.next.List(ctx, orgID, query)
		return pageResult[domain.Contact]{items: items, total: total}, err
	})
	return res.items, res.total, err
}

// CampaignRepository guards a campaign repository.
type CampaignRepository struct {
	next  repository.CampaignRepository
	guard *Guard
	table string
}

// NewCampaignRepository decorates next.
func NewCampaignRepository(next repository.CampaignRepository, guard *Guard, table string) *CampaignRepository {
	return &CampaignRepository{next: next, guard: guard, table: table}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign domain.Campaign) (*domain.Campaign, error) {
	return run(ctx, r.guard, "insert", r.table, func(ctx context.Context) (*domain.Campaign, error) {
		return r.next.Create(ctx, campaign)
	})
}

func (r *CampaignRepository) ListByOrg(ctx context.Context, orgID string, query repository.ListQuery) ([]domain.Campaign, int, error) {
	res, err := run(ctx, r.guard, "list", r.table, func(ctx context.Context) (pageResult[domain.Campaign], error) {
		items, total, err := r.next.ListByOrg(ctx, orgID, query)
		return pageResult[domain.Campaign]{items: items, total: total}, err
	})
	return res.items, res.total, err
}

var (
	_ repository.ShipmentRepository = (*ShipmentRepository)(nil)
	_ repository.ContactRepository  = (*ContactRepository)(nil)
	_ repository.CampaignRepository = (*CampaignRepository)(nil)
)
