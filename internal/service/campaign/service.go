// Package campaign creates and lists outreach campaign drafts.
package campaign

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/events"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/validation"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

// CreateInput is the payload of the create endpoint.
type CreateInput struct {
	Name       string   `json:"name" validate:"required,max=120"`
	Channel    string   `json:"channel" validate:"required,oneof=email linkedin"`
	ContactIDs []string `json:"contact_ids" validate:"min=1,max=1000,dive,required"`
	Subject    string   `json:"subject" validate:"max=200"`
	Body       string   `json:"body" validate:"max=20000"`
}

// Service manages campaigns.
type Service struct {
	repo      repository.CampaignRepository
	publisher events.Publisher
	validator *validation.Validator
	logger    *zap.Logger
}

// NewService creates a campaign service.
func NewService(repo repository.CampaignRepository, publisher events.Publisher, logger *zap.Logger) *Service {
	return &Service{repo: repo, publisher: publisher, validator: validation.GetValidator(), logger: logger}
}

// Create stores a new draft owned by the principal's organization.
func (s *Service) Create(ctx context.Context, principal domain.Principal, in CreateInput) (*domain.Campaign, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Channel = strings.ToLower(strings.TrimSpace(in.Channel))
	in.Subject = strings.TrimSpace(in.Subject)
	ids := make([]string, 0, len(in.ContactIDs))
	seen := make(map[string]struct{}, len(in.ContactIDs))
	for _, id := range in.ContactIDs {
		id = strings.TrimSpace(id)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	in.ContactIDs = ids

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	var draft domain.Campaign
	if err := copier.Copy(&draft, &in); err != nil {
		return nil, appErrors.NewInternal("failed to map campaign", err)
	}
	draft.Channel = domain.Channel(in.Channel)
	draft.OrgID = principal.OrgID
	draft.Status = domain.CampaignDraft
	draft.CreatedBy = principal.UserID

	saved, err := s.repo.Create(ctx, draft)
	if err != nil {
		s.logger.Error("Campaign create failed", zap.String("org_id", principal.OrgID), zap.Error(err))
		return nil, appErrors.NewUpstream("Failed to create campaign", err)
	}
	s.publisher.Publish(ctx, events.NewEvent(events.TopicCampaignCreated, principal.OrgID, *saved))
	return saved, nil
}

// List returns one page of the organization's campaigns, newest first.
func (s *Service) List(ctx context.Context, principal domain.Principal, query repository.ListQuery) (domain.Page[domain.Campaign], error) {
	items, total, err := s.repo.ListByOrg(ctx, principal.OrgID, query)
	if err != nil {
		s.logger.Error("Campaign list failed", zap.String("org_id", principal.OrgID), zap.Error(err))
		return domain.Page[domain.Campaign]{}, appErrors.NewUpstream("Failed to load campaigns", err)
	}
	if items == nil {
		items = []domain.Campaign{}
	}
	return domain.Page[domain.Campaign]{Items: items, Total: total, Limit: query.Limit, Offset: query.Offset}, nil
}
