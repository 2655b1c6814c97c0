package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/observability"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository/mocks"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

func testGuard() *Guard {
	return NewGuard(GuardConfig{
		Name:                "test",
		ConsecutiveFailures: 2,
		OpenTimeout:         time.Minute,
		HalfOpenRequests:    1,
	}, observability.NewCollector("guard_test"), zap.NewNop())
}

func TestGuardPassesResultsThrough(t *testing.T) {
	inner := mocks.NewShipmentRepository(
		domain.Shipment{ID: "s1", Mode: domain.ModeOcean, ShipmentDate: "2024-01-01"},
		domain.Shipment{ID: "s2", Mode: domain.ModeAir, ShipmentDate: "2024-01-02"},
	)
	repo := NewShipmentRepository(inner, testGuard(), "unified_shipments")

	items, total, err := repo.SearchUnified(context.Background(), domain.SearchRequest{Mode: domain.ModeAll, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "s2", items[0].ID)
}

func TestGuardOpensAfterConsecutiveFailures(t *testing.T) {
	inner := mocks.NewContactRepository()
	inner.SetError("Insert", errors.New("connection refused"))
	guard := testGuard()
	repo := NewContactRepository(inner, guard, "crm_contacts")

	for i := 0; i < 2; i++ {
		_, err := repo.Insert(context.Background(), domain.Contact{OrgID: "org-1", CompanyName: "Acme"})
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, guard.State())

	_, err := repo.Insert(context.Background(), domain.Contact{OrgID: "org-1", CompanyName: "Acme"})
	assert.True(t, appErrors.IsUpstream(err))
	assert.Equal(t, 2, inner.Calls("Insert"), "open breaker does not reach the store")
}

func TestGuardIgnoresNotFound(t *testing.T) {
	inner := mocks.NewContactRepository()
	guard := testGuard()
	repo := NewContactRepository(inner, guard, "crm_contacts")

	for i := 0; i < 5; i++ {
		_, err := repo.FindByEmail(context.Background(), "org-1", "nobody@acme.com")
		assert.True(t, appErrors.IsNotFound(err))
	}
	assert.Equal(t, gobreaker.StateClosed, guard.State())
}

// stalledShipments ignores its context, like the PostgREST client.
type stalledShipments struct {
	release chan struct{}
}

func (s stalledShipments) SearchUnified(ctx context.Context, req domain.SearchRequest) ([]domain.Shipment, int, error) {
	<-s.release
	return nil, 0, nil
}

func TestGuardReturnsWhenContextEnds(t *testing.T) {
	inner := stalledShipments{release: make(chan struct{})}
	defer close(inner.release)
	repo := NewShipmentRepository(inner, testGuard(), "unified_shipments")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := repo.SearchUnified(ctx, domain.SearchRequest{Mode: domain.ModeAll, Limit: 10})
	require.Error(t, err)
	assert.True(t, appErrors.IsUpstream(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
