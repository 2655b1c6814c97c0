package crm

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

var (
	orgA = domain.Principal{UserID: "u-1", OrgID: "org-a", Plan: domain.PlanPro}
	orgB = domain.Principal{UserID: "u-2", OrgID: "org-b", Plan: domain.PlanPro}
)

type recorder struct {
	events []events.Event
}

func (r *recorder) Publish(ctx context.Context, event events.Event) {
	r.events = append(r.events, event)
}

func newService(t *testing.T) (*Service, *mocks.ContactRepository, *recorder) {
	t.Helper()
	repo := mocks.NewContactRepository()
	rec := &recorder{}
	return NewService(repo, rec, nil, zap.NewNop()), repo, rec
}

func TestUpsertInserts(t *testing.T) {
	svc, repo, rec := newService(t)

	res, err := svc.Upsert(context.Background(), orgA, UpsertInput{
		CompanyName: "  Acme Imports ",
		Email:       " Ops@Acme.COM ",
		Phone:       "(201) 555-0123",
		Tags:        []string{"importer", "Importer", " ocean "},
	})
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "Acme Imports", res.Contact.CompanyName)
	assert.Equal(t, "ops@acme.com", res.Contact.Email)
	assert.Equal(t, "+12015550123", res.Contact.Phone)
	assert.Equal(t, []string{"importer", "ocean"}, res.Contact.Tags)
	assert.Equal(t, "org-a", res.Contact.OrgID)
	assert.Len(t, repo.All(), 1)

	require.Len(t, rec.events, 1)
	assert.Equal(t, events.TopicContactCreated, rec.events[0].Topic)
	assert.Equal(t, "org-a", rec.events[0].OrgID)
}

func TestUpsertMatchesExternalID(t *testing.T) {
	svc, repo, rec := newService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, orgA, UpsertInput{
		CompanyName: "Acme", ExternalID: "ext-1", Title: "Buyer", Notes: "met at expo", Tags: []string{"a"},
	})
	require.NoError(t, err)

	res, err := svc.Upsert(ctx, orgA, UpsertInput{
		CompanyName: "Acme Corp", ExternalID: "ext-1", Tags: []string{"A", "b"},
	})
	require.NoError(t, err)
	assert.False(t, res.Created)

	all := repo.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Acme Corp", all[0].CompanyName)
	assert.Equal(t, "Buyer", all[0].Title)
	assert.Equal(t, "met at expo", all[0].Notes)
	assert.Equal(t, []string{"a", "b"}, all[0].Tags)
	assert.Equal(t, 1, repo.Calls("Update"))
	assert.Equal(t, 1, repo.Calls("Insert"))
	assert.Equal(t, events.TopicContactUpdated, rec.events[1].Topic)
}

func TestUpsertMatchesEmail(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, orgA, UpsertInput{CompanyName: "Acme", Email: "ops@acme.com", Notes: "old"})
	require.NoError(t, err)

	t.Run("Should update case-insensitive trimmed match", func(t *testing.T) {
		res, err := svc.Upsert(ctx, orgA, UpsertInput{CompanyName: "Acme", Email: "  OPS@acme.com", Notes: "new"})
		require.NoError(t, err)
		assert.False(t, res.Created)
		assert.Equal(t, first.Contact.ID, res.Contact.ID)
		assert.Equal(t, "new", res.Contact.Notes)
		assert.Len(t, repo.All(), 1)
	})

	t.Run("Should insert for another org", func(t *testing.T) {
		res, err := svc.Upsert(ctx, orgB, UpsertInput{CompanyName: "Acme", Email: "ops@acme.com"})
		require.NoError(t, err)
		assert.True(t, res.Created)
		assert.Len(t, repo.All(), 2)
	})

	t.Run("Should fall back to email when external id is unknown", func(t *testing.T) {
		res, err := svc.Upsert(ctx, orgA, UpsertInput{CompanyName: "Acme", Email: "ops@acme.com", ExternalID: "ext-9"})
		require.NoError(t, err)
		assert.False(t, res.Created)
		assert.Equal(t, "ext-9", res.Contact.ExternalID)
	})
}

func TestUpsertTagUnionIsIdempotent(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()
	in := UpsertInput{CompanyName: "Acme", ExternalID: "ext-1", Tags: []string{"x", "Y"}}

	for i := 0; i < 3; i++ {
		_, err := svc.Upsert(ctx, orgA, in)
		require.NoError(t, err)
	}
	all := repo.All()
	require.Len(t, all, 1)
	assert.Equal(t, []string{"x", "Y"}, all[0].Tags)
}

func TestUpsertValidation(t *testing.T) {
	svc, repo, rec := newService(t)

	_, err := svc.Upsert(context.Background(), orgA, UpsertInput{CompanyName: "   ", Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
	assert.Contains(t, err.Error(), "company_name is required")
	assert.Contains(t, err.Error(), "email must be a valid email address")
	assert.Empty(t, repo.All())
	assert.Empty(t, rec.events)
}

func TestUpsertStoreFailure(t *testing.T) {
	svc, repo, rec := newService(t)
	repo.SetError("Insert", errors.New("postgrest 503"))

	_, err := svc.Upsert(context.Background(), orgA, UpsertInput{CompanyName: "Acme"})
	require.Error(t, err)
	assert.True(t, appErrors.IsUpstream(err))
	assert.Equal(t, "An internal error occurred", appErrors.PublicMessage(err))
	assert.Empty(t, rec.events)

	repo.ClearErrors()
	repo.SetError("FindByEmail", errors.New("timeout"))
	_, err = svc.Upsert(context.Background(), orgA, UpsertInput{CompanyName: "Acme", Email: "a@b.co"})
	assert.True(t, appErrors.IsUpstream(err))
	assert.Equal(t, 1, repo.Calls("Insert"))
}

func TestList(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	for _, name := range []string{"One", "Two", "Three"} {
		_, err := svc.Upsert(ctx, orgA, UpsertInput{CompanyName: name})
		require.NoError(t, err)
	}
	_, err := svc.Upsert(ctx, orgB, UpsertInput{CompanyName: "Other"})
	require.NoError(t, err)

	page, err := svc.List(ctx, orgA, repository.ListQuery{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Three", page.Items[0].CompanyName)
	assert.True(t, page.HasMore())
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+12015550123", NormalizePhone("201-555-0123"))
	assert.Equal(t, "+441212345678", NormalizePhone("+44 121 234 5678"))
	assert.Equal(t, "ext 12", NormalizePhone(" ext 12 "))
	assert.Equal(t, "", NormalizePhone("  "))
}
