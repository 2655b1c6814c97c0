// Package messaging forwards in-process domain events to Amazon EventBridge.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/events"
)

// EventBridge accepts at most 10 entries per PutEvents call.
const maxBatchSize = 10

// DefaultSource is the EventBridge source of every forwarded event.
const DefaultSource = "logistic-intel.api"

// PutEventsAPI is the subset of the EventBridge client used here.
type PutEventsAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// Forwarder publishes domain events to an event bus.
type Forwarder struct {
	client   PutEventsAPI
	eventBus string
	source   string
	logger   *zap.Logger
}

// NewForwarder creates a forwarder for eventBus.
func NewForwarder(client PutEventsAPI, eventBus string, logger *zap.Logger) *Forwarder {
	if eventBus == "" {
		eventBus = "default"
	}
	return &Forwarder{
		client:   client,
		eventBus: eventBus,
		source:   DefaultSource,
		logger:   logger,
	}
}

// Attach subscribes the forwarder to every topic on bus until ctx ends.
func (f *Forwarder) Attach(ctx context.Context, bus *events.Bus) func() {
	return bus.Subscribe(ctx, events.TopicAll, f.Handle)
}

// Handle is an events.Handler forwarding one event.
func (f *Forwarder) Handle(ctx context.Context, event events.Event) error {
	return f.Forward(ctx, event)
}

// Forward publishes evs in batches.
func (f *Forwarder) Forward(ctx context.Context, evs ...events.Event) error {
	for i := 0; i < len(evs); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(evs) {
			end = len(evs)
		}
		if err := f.publishBatch(ctx, evs[i:end]); err != nil {
			return fmt.Errorf("failed to publish event batch: %w", err)
		}
	}
	return nil
}

func (f *Forwarder) publishBatch(ctx context.Context, batch []events.Event) error {
	entries := make([]types.PutEventsRequestEntry, 0, len(batch))
	for _, e := range batch {
		detail, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", e.ID, err)
		}
		entries = append(entries, types.PutEventsRequestEntry{
			EventBusName: aws.String(f.eventBus),
			Source:       aws.String(f.source),
			DetailType:   aws.String(e.Topic),
			Detail:       aws.String(string(detail)),
			Time:         aws.Time(e.OccurredAt),
		})
	}

	output, err := f.client.PutEvents(ctx, &eventbridge.PutEventsInput{Entries: entries})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			f.logger.Error("EventBridge PutEvents rejected",
				zap.String("code", apiErr.ErrorCode()),
				zap.String("message", apiErr.ErrorMessage()),
			)
		}
		return fmt.Errorf("failed to put events: %w", err)
	}

	if output.FailedEntryCount > 0 {
		for i, entry := range output.Entries {
			if entry.ErrorCode != nil {
				f.logger.Error("EventBridge entry failed",
					zap.Int("index", i),
					zap.String("code", aws.ToString(entry.ErrorCode)),
					zap.String("message", aws.ToString(entry.ErrorMessage)),
				)
			}
		}
		return fmt.Errorf("%d events failed to publish", output.FailedEntryCount)
	}

	f.logger.Debug("Forwarded events", zap.Int("count", len(entries)), zap.String("event_bus", f.eventBus))
	return nil
}
