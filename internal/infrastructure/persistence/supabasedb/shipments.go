package supabasedb

import (
	"context"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

// ShipmentRepository reads the unified shipments view.
type ShipmentRepository struct {
	from   fromFunc
	view   string
	logger *zap.Logger
}

// NewShipmentRepository creates a repository over view.
func NewShipmentRepository(client *supabase.Client, view string, logger *zap.Logger) *ShipmentRepository {
	return &ShipmentRepository{from: client.From, view: view, logger: logger}
}

// searchPlan matches, orders and paginates entirely server-side.
func searchPlan(req domain.SearchRequest) plan {
	p := plan{orderBy: "shipment_date"}
	p.from, p.to = window(req.Offset, req.Limit)

	if req.Mode == domain.ModeAir || req.Mode == domain.ModeOcean {
		p.filters = append(p.filters, filter{"eq", "mode", string(req.Mode)})
	}
	p.or = anyColumnContains(repository.SearchColumns, req.Query)

	f := req.Filters
	if f.DateFrom != "" {
		p.filters = append(p.filters, filter{"gte", "shipment_date", f.DateFrom})
	}
	if f.DateTo != "" {
		p.filters = append(p.filters, filter{"lte", "shipment_date", f.DateTo})
	}
	if f.HSCode != "" {
		p.filters = append(p.filters, filter{"like", "hs_code", f.HSCode + "*"})
	}
	for _, tf := range []struct{ column, value string }{
		{"origin_country", f.OriginCountry},
		{"origin_city", f.OriginCity},
		{"destination_country", f.DestinationCountry},
		{"destination_city", f.DestinationCity},
		{"carrier", f.Carrier},
	} {
		if sanitizeTerm(tf.value) != "" {
			p.filters = append(p.filters, filter{"ilike", tf.column, contains(tf.value)})
		}
	}
	return p
}

func (r *ShipmentRepository) SearchUnified(ctx context.Context, req domain.SearchRequest) ([]domain.Shipment, int, error) {
	var rows []domain.Shipment
	query := searchPlan(req).apply(r.from(r.view).Select("*", "exact", false))

	count, err := query.ExecuteTo(&rows)
	if err != nil {
		r.logger.Error("Unified search query failed",
			zap.String("view", r.view),
			zap.String("mode", string(req.Mode)),
			zap.Error(err),
		)
		return nil, 0, appErrors.NewUpstream("unified search query failed", err)
	}
	if rows == nil {
		rows = []domain.Shipment{}
	}
	return rows, int(count), nil
}

var _ repository.ShipmentRepository = (*ShipmentRepository)(nil)
