package supabasedb

import (
	"context"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

var contactSearchColumns = []string{"company_name", "full_name", "email"}

// ContactRepository reads and writes the CRM contacts table.
type ContactRepository struct {
	from   fromFunc
	table  string
	logger *zap.Logger
}

// NewContactRepository creates a repository over table.
func NewContactRepository(client *supabase.Client, table string, logger *zap.Logger) *ContactRepository {
	return &ContactRepository{from: client.From, table: table, logger: logger}
}

func (r *ContactRepository) findOne(p plan) (*domain.Contact, error) {
	var rows []domain.Contact
	query := p.apply(r.from(r.table).Select("*", "", false)).Limit(1, "")
	if _, err := query.ExecuteTo(&rows); err != nil {
		return nil, appErrors.NewUpstream("contact lookup failed", err)
	}
	if len(rows) == 0 {
		return nil, appErrors.NewNotFound("contact not found")
	}
	return &rows[0], nil
}

func (r *ContactRepository) FindByExternalID(ctx context.Context, orgID, externalID string) (*domain.Contact, error) {
	return r.findOne(plan{filters: []filter{
		{"eq", "org_id", orgID},
		{"eq", "external_id", externalID},
	}, to: -1})
}

func (r *ContactRepository) FindByEmail(ctx context.Context, orgID, email string) (*domain.Contact, error) {
	return r.findOne(plan{filters: []filter{
		{"eq", "org_id", orgID},
		{"ilike", "email", exactFold(domain.NormalizeEmail(email))},
	}, to: -1})
}

func (r *ContactRepository) Insert(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	var rows []domain.Contact
	_, err := r.from(r.table).Insert(contact, false, "", "representation", "").ExecuteTo(&rows)
	if err != nil {
		r.logger.Error("Contact insert failed", zap.String("org_id", contact.OrgID), zap.Error(err))
		return nil, appErrors.NewUpstream("contact insert failed", err)
	}
	if len(rows) == 0 {
		return nil, appErrors.NewUpstream("contact insert returned no row", nil)
	}
	return &rows[0], nil
}

func (r *ContactRepository) Update(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	var rows []domain.Contact
	_, err := r.from(r.table).
		Update(contact, "representation", "").
		Eq("id", contact.ID).
		Eq("org_id", contact.OrgID).
		ExecuteTo(&rows)
	if err != nil {
		r.logger.Error("Contact update failed",
			zap.String("org_id", contact.OrgID),
			zap.String("contact_id", contact.ID),
			zap.Error(err),
		)
		return nil, appErrors.NewUpstream("contact update failed", err)
	}
	if len(rows) == 0 {
		return nil, appErrors.NewNotFound("contact not found")
	}
	return &rows[0], nil
}

func listPlan(orgID string, columns []string, query repository.ListQuery) plan {
	p := plan{
		filters: []filter{{"eq", "org_id", orgID}},
		or:      anyColumnContains(columns, query.Query),
		orderBy: "created_at",
	}
	p.from, p.to = window(query.Offset, query.Limit)
	return p
}

func (r *ContactRepository) List(ctx context.Context, orgID string, query repository.ListQuery) ([]domain.Contact, int, error) {
	var rows []domain.Contact
	count, err := listPlan(orgID, contactSearchColumns, query).
		apply(r.from(r.table).Select("*", "exact", false)).
		ExecuteTo(&rows)
	if err != nil {
		return nil, 0, appErrors.NewUpstream("contact list failed", err)
	}
	if rows == nil {
		rows = []domain.Contact{}
	}
	return rows, int(count), nil
}

var _ repository.ContactRepository = (*ContactRepository)(nil)
