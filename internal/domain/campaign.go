package domain

import "time"

// Channel is the outreach channel of a campaign.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelLinkedIn Channel = "linkedin"
)

// CampaignStatus tracks a campaign through its lifecycle. Only drafts are created here.
type CampaignStatus string

const (
	CampaignDraft CampaignStatus = "draft"
)

// Campaign is a row of the campaigns table.
type Campaign struct {
	ID         string         `json:"id,omitempty"`
	OrgID      string         `json:"org_id"`
	Name       string         `json:"name"`
	Channel    Channel        `json:"channel"`
	Status     CampaignStatus `json:"status"`
	ContactIDs []string       `json:"contact_ids"`
	Subject    string         `json:"subject,omitempty"`
	Body       string         `json:"body,omitempty"`
	CreatedBy  string         `json:"created_by,omitempty"`
	CreatedAt  *time.Time     `json:"created_at,omitempty"`
}
