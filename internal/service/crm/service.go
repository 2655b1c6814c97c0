// Package crm implements the organization-scoped contact upsert and listing.
package crm

import (
	"context"
	"strings"
	"time"

	"github.com/imdario/mergo"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/events"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/observability"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/validation"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

// SaveFailedMessage is returned to callers when the store rejects a write.
const SaveFailedMessage = "Failed to save contact"

// UpsertInput is the contact payload accepted by the upsert endpoint.
type UpsertInput struct {
	CompanyName string   `json:"company_name" validate:"required,max=200"`
	FullName    string   `json:"full_name" validate:"max=200"`
	Title       string   `json:"title" validate:"max=200"`
	Email       string   `json:"email" validate:"omitempty,email,max=320"`
	Phone       string   `json:"phone" validate:"max=40"`
	LinkedInURL string   `json:"linkedin_url" validate:"omitempty,url,max=500"`
	ExternalID  string   `json:"external_id" validate:"max=200"`
	Tags        []string `json:"tags" validate:"max=50,dive,max=64"`
	Source      string   `json:"source" validate:"max=100"`
	Notes       string   `json:"notes" validate:"max=5000"`
}

func (in UpsertInput) trimmed() UpsertInput {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Title = strings.TrimSpace(in.Title)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.LinkedInURL = strings.TrimSpace(in.LinkedInURL)
	in.ExternalID = strings.TrimSpace(in.ExternalID)
	in.Source = strings.TrimSpace(in.Source)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}

// UpsertResult is the saved row and whether it was inserted.
type UpsertResult struct {
	Contact domain.Contact
	Created bool
}

// Service upserts and lists CRM contacts.
type Service struct {
	repo      repository.ContactRepository
	publisher events.Publisher
	validator *validation.Validator
	metrics   *observability.Collector
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a CRM service. metrics may be nil.
func NewService(repo repository.ContactRepository, publisher events.Publisher, metrics *observability.Collector, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		validator: validation.GetValidator(),
		metrics:   metrics,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Upsert resolves the contact by external id, then by normalized email, within the
// principal's organization. A match is updated in place, otherwise a new row is inserted.
// Exactly one write is issued.
func (s *Service) Upsert(ctx context.Context, principal domain.Principal, in UpsertInput) (*UpsertResult, error) {
	in = in.trimmed()
	if err := s.validator.Validate(in); err != nil {
		s.metrics.RecordContactUpsert("invalid")
		return nil, err
	}

	var incoming domain.Contact
	if err := copier.Copy(&incoming, &in); err != nil {
		return nil, appErrors.NewInternal("failed to map contact", err)
	}
	incoming.OrgID = principal.OrgID
	incoming.Email = domain.NormalizeEmail(in.Email)
	incoming.Phone = NormalizePhone(in.Phone)
	incoming.Tags = domain.MergeTags(nil, in.Tags)

	existing, err := s.resolve(ctx, incoming)
	if err != nil {
		s.metrics.RecordContactUpsert("error")
		s.logger.Error("Contact lookup failed", zap.String("org_id", principal.OrgID), zap.Error(err))
		return nil, appErrors.NewUpstream(SaveFailedMessage, err)
	}

	now := s.now()
	if existing != nil {
		merged, err := merge(*existing, incoming, now)
		if err != nil {
			return nil, appErrors.NewInternal("failed to merge contact", err)
		}
		saved, err := s.repo.Update(ctx, merged)
		if err != nil {
			s.metrics.RecordContactUpsert("error")
			s.logger.Error("Contact update failed", zap.String("contact_id", merged.ID), zap.Error(err))
			return nil, appErrors.NewUpstream(SaveFailedMessage, err)
		}
		s.metrics.RecordContactUpsert("updated")
		s.publisher.Publish(ctx, events.NewEvent(events.TopicContactUpdated, principal.OrgID, *saved))
		return &UpsertResult{Contact: *saved}, nil
	}

	incoming.CreatedAt = &now
	incoming.UpdatedAt = &now
	saved, err := s.repo.Insert(ctx, incoming)
	if err != nil {
		s.metrics.RecordContactUpsert("error")
		s.logger.Error("Contact insert failed", zap.String("org_id", principal.OrgID), zap.Error(err))
		return nil, appErrors.NewUpstream(SaveFailedMessage, err)
	}
	s.metrics.RecordContactUpsert("created")
	s.publisher.Publish(ctx, events.NewEvent(events.TopicContactCreated, principal.OrgID, *saved))
	return &UpsertResult{Contact: *saved, Created: true}, nil
}

// resolve returns the existing contact with the same identity, or nil.
func (s *Service) resolve(ctx context.Context, c domain.Contact) (*domain.Contact, error) {
	if c.ExternalID != "" {
		found, err := s.repo.FindByExternalID(ctx, c.OrgID, c.ExternalID)
		if err == nil {
			return found, nil
		}
		if !appErrors.IsNotFound(err) {
			return nil, err
		}
	}
	if c.Email != "" {
		found, err := s.repo.FindByEmail(ctx, c.OrgID, c.Email)
		if err == nil {
			return found, nil
		}
		if !appErrors.IsNotFound(err) {
			return nil, err
		}
	}
	return nil, nil
}

// merge applies incoming onto existing. Non-empty incoming fields win, empty ones keep
// the stored value, and tags are unioned.
func merge(existing, incoming domain.Contact, now time.Time) (domain.Contact, error) {
	merged := incoming
	merged.Tags = domain.MergeTags(existing.Tags, incoming.Tags)
	if err := mergo.Merge(&merged, existing); err != nil {
		return domain.Contact{}, err
	}
	merged.ID = existing.ID
	merged.OrgID = existing.OrgID
	merged.CreatedAt = existing.CreatedAt
	merged.UpdatedAt = &now
	return merged, nil
}

// List returns one page of the organization's contacts, newest first.
func (s *Service) List(ctx context.Context, principal domain.Principal, query repository.ListQuery) (domain.Page[domain.Contact], error) {
	items, total, err := s.repo.List(ctx, principal.OrgID, query)
	if err != nil {
		s.logger.Error("Contact list failed", zap.String("org_id", principal.OrgID), zap.Error(err))
		return domain.Page[domain.Contact]{}, appErrors.NewUpstream("Failed to load contacts", err)
	}
	if items == nil {
		items = []domain.Contact{}
	}
	return domain.Page[domain.Contact]{Items: items, Total: total, Limit: query.Limit, Offset: query.Offset}, nil
}
