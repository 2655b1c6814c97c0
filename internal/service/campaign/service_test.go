package campaign

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/events"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository/mocks"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

var owner = domain.Principal{UserID: "user-1", OrgID: "org-1", Plan: domain.PlanPro}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	bus := events.NewBus(zap.NewNop())
	var published []events.Event
	bus.Subscribe(ctx, events.TopicCampaignCreated, func(ctx context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	repo := mocks.NewCampaignRepository()
	svc := NewService(repo, bus, zap.NewNop())

	t.Run("Should store a draft", func(t *testing.T) {
		got, err := svc.Create(ctx, owner, CreateInput{
			Name:       "  Q3 ocean importers ",
			Channel:    "Email",
			ContactIDs: []string{"c-1", "c-2", "c-1"},
			Subject:    "Capacity on CN-US",
		})
		require.NoError(t, err)
		assert.Equal(t, "Q3 ocean importers", got.Name)
		assert.Equal(t, domain.ChannelEmail, got.Channel)
		assert.Equal(t, domain.CampaignDraft, got.Status)
		assert.Equal(t, []string{"c-1", "c-2"}, got.ContactIDs)
		assert.Equal(t, "user-1", got.CreatedBy)
		assert.Equal(t, "org-1", got.OrgID)
		require.Len(t, published, 1)
		assert.Equal(t, "org-1", published[0].OrgID)
	})

	t.Run("Should reject invalid drafts", func(t *testing.T) {
		_, err := svc.Create(ctx, owner, CreateInput{Name: "x", Channel: "fax"})
		require.Error(t, err)
		assert.True(t, appErrors.IsValidation(err))
		assert.Contains(t, err.Error(), "channel must be one of: email, linkedin")
		assert.Contains(t, err.Error(), "contact_ids must contain at least 1 item(s)")
	})

	t.Run("Should surface store failure", func(t *testing.T) {
		repo.SetError("Create", errors.New("boom"))
		defer repo.ClearErrors()
		_, err := svc.Create(ctx, owner, CreateInput{Name: "x", Channel: "linkedin", ContactIDs: []string{"c-1"}})
		assert.True(t, appErrors.IsUpstream(err))
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewCampaignRepository()
	svc := NewService(repo, events.NewBus(zap.NewNop()), zap.NewNop())
	for _, name := range []string{"first", "second"} {
		_, err := svc.Create(ctx, owner, CreateInput{Name: name, Channel: "email", ContactIDs: []string{"c"}})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, domain.Principal{UserID: "u", OrgID: "org-2"}, CreateInput{Name: "other", Channel: "email", ContactIDs: []string{"c"}})
	require.NoError(t, err)

	page, err := svc.List(ctx, owner, repository.ListQuery{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "second", page.Items[0].Name)
	assert.True(t, page.HasMore())
}
