package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/events"
)

type mockEventBridge struct {
	mock.Mock
}

func (m *mockEventBridge) PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*eventbridge.PutEventsOutput)
	return out, args.Error(1)
}

func TestForwardBatchesByTen(t *testing.T) {
	client := &mockEventBridge{}
	client.On("PutEvents", mock.Anything, mock.Anything).Return(&eventbridge.PutEventsOutput{}, nil)
	f := NewForwarder(client, "intel-bus", zap.NewNop())

	evs := make([]events.Event, 23)
	for i := range evs {
		evs[i] = events.NewEvent(events.TopicContactCreated, "org-1", map[string]int{"n": i})
	}
	require.NoError(t, f.Forward(context.Background(), evs...))

	client.AssertNumberOfCalls(t, "PutEvents", 3)
	first := client.Calls[0].Arguments.Get(1).(*eventbridge.PutEventsInput)
	assert.Len(t, first.Entries, 10)
	assert.Equal(t, "intel-bus", aws.ToString(first.Entries[0].EventBusName))
	assert.Equal(t, DefaultSource, aws.ToString(first.Entries[0].Source))
	assert.Equal(t, events.TopicContactCreated, aws.ToString(first.Entries[0].DetailType))

	var detail events.Event
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(first.Entries[0].Detail)), &detail))
	assert.Equal(t, evs[0].ID, detail.ID)
}

func TestForwardReportsFailedEntries(t *testing.T) {
	client := &mockEventBridge{}
	client.On("PutEvents", mock.Anything, mock.Anything).Return(&eventbridge.PutEventsOutput{
		FailedEntryCount: 1,
		Entries:          []types.PutEventsResultEntry{{ErrorCode: aws.String("InternalFailure")}},
	}, nil)
	f := NewForwarder(client, "", zap.NewNop())

	err := f.Forward(context.Background(), events.NewEvent(events.TopicCampaignCreated, "org-1", nil))
	assert.ErrorContains(t, err, "1 events failed to publish")
}

func TestForwardWrapsAPIErrors(t *testing.T) {
	client := &mockEventBridge{}
	apiErr := &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "denied"}
	client.On("PutEvents", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("operation error: %w", apiErr))
	f := NewForwarder(client, "intel-bus", zap.NewNop())

	err := f.Forward(context.Background(), events.NewEvent(events.TopicContactUpdated, "org-1", nil))
	var got smithy.APIError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "AccessDeniedException", got.ErrorCode())
}

func TestAttachForwardsBusEvents(t *testing.T) {
	client := &mockEventBridge{}
	client.On("PutEvents", mock.Anything, mock.Anything).Return(&eventbridge.PutEventsOutput{}, nil)
	f := NewForwarder(client, "intel-bus", zap.NewNop())

	bus := events.NewBus(zap.NewNop())
	detach := f.Attach(context.Background(), bus)
	bus.Publish(context.Background(), events.NewEvent(events.TopicContactCreated, "org-1", nil))
	detach()
	bus.Publish(context.Background(), events.NewEvent(events.TopicContactCreated, "org-1", nil))

	client.AssertNumberOfCalls(t, "PutEvents", 1)
}
