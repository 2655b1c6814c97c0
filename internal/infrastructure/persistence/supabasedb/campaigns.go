package supabasedb

import (
	"context"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

// CampaignRepository reads and writes the campaigns table.
type CampaignRepository struct {
	from   fromFunc
	table  string
	logger *zap.Logger
}

// NewCampaignRepository creates a repository over table.
func NewCampaignRepository(client *supabase.Client, table string, logger *zap.Logger) *CampaignRepository {
	return &CampaignRepository{from: client.From, table: table, logger: logger}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign domain.Campaign) (*domain.Campaign, error) {
	var rows []domain.Campaign
	_, err := r.from(r.table).Insert(campaign, false, "", "representation", "").ExecuteTo(&rows)
	if err != nil {
		r.logger.Error("Campaign insert failed", zap.String("org_id", campaign.OrgID), zap.Error(err))
		return nil, appErrors.NewUpstream("campaign insert failed", err)
	}
	if len(rows) == 0 {
		return nil, appErrors.NewUpstream("campaign insert returned no row", nil)
	}
	return &rows[0], nil
}

func (r *CampaignRepository) ListByOrg(ctx context.Context, orgID string, query repository.ListQuery) ([]domain.Campaign, int, error) {
	var rows []domain.Campaign
	count, err := listPlan(orgID, []string{"name"}, query).
		apply(r.from(r.table).Select("*", "exact", false)).
		ExecuteTo(&rows)
	if err != nil {
		return nil, 0, appErrors.NewUpstream("campaign list failed", err)
	}
	if rows == nil {
		rows = []domain.Campaign{}
	}
	return rows, int(count), nil
}

var _ repository.CampaignRepository = (*CampaignRepository)(nil)
