// Package webhooks handles decoding and recording of GitHub webhook deliveries.
package webhooks

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/ortelius/ghwire/model"
	"go.uber.org/zap"
)

// ErrUnsupportedEvent is returned for event names ghwire does not decode.
var ErrUnsupportedEvent = errors.New("unsupported event")

// ErrInvalidPayload wraps every failure to decode a supported event.
var ErrInvalidPayload = errors.New("invalid payload")

// ErrDuplicateDelivery is returned by an EventRecorder for a delivery id it has
// already recorded. GitHub reuses the id when a delivery is redelivered.
var ErrDuplicateDelivery = errors.New("duplicate delivery")

// EventRecorder defines the interface for storing decoded events.
type EventRecorder interface {
	Record(ctx context.Context, event Event) error
}

type decoder func(body []byte) (Event, error)

var decoders = map[string]decoder{
	"deployment": func(body []byte) (Event, error) {
		var p DeploymentEvent
		if err := model.Decode(body, &p); err != nil {
			return Event{}, err
		}
		return Event{Action: p.Action, Repository: &p.Repository, Sender: &p.Sender, Payload: &p}, nil
	},
	"deployment_status": func(body []byte) (Event, error) {
		var p DeploymentStatusEvent
		if err := model.Decode(body, &p); err != nil {
			return Event{}, err
		}
		return Event{Action: p.Action, Repository: &p.Repository, Sender: &p.Sender, Payload: &p}, nil
	},
	"status": func(body []byte) (Event, error) {
		var p StatusEvent
		if err := model.Decode(body, &p); err != nil {
			return Event{}, err
		}
		return Event{Action: string(p.State), Repository: &p.Repository, Sender: &p.Sender, Payload: &p}, nil
	},
	"release": func(body []byte) (Event, error) {
		var p ReleaseEvent
		if err := model.Decode(body, &p); err != nil {
			return Event{}, err
		}
		return Event{Action: p.Action, Repository: &p.Repository, Sender: &p.Sender, Payload: &p}, nil
	},
	"push": func(body []byte) (Event, error) {
		var p PushEvent
		if err := model.Decode(body, &p); err != nil {
			return Event{}, err
		}
		return Event{Repository: &p.Repository, Sender: &p.Sender, Payload: &p}, nil
	},
	"watch": func(body []byte) (Event, error) {
		var p WatchEvent
		if err := model.Decode(body, &p); err != nil {
			return Event{}, err
		}
		return Event{Action: p.Action, Repository: &p.Repository, Sender: &p.Sender, Payload: &p}, nil
	},
	"star": func(body []byte) (Event, error) {
		var p StarEvent
		if err := model.Decode(body, &p); err != nil {
			return Event{}, err
		}
		return Event{Action: p.Action, Repository: &p.Repository, Sender: &p.Sender, Payload: &p}, nil
	},
	"ping": func(body []byte) (Event, error) {
		var p PingEvent
		if err := model.Decode(body, &p); err != nil {
			return Event{}, err
		}
		return Event{Repository: p.Repository, Sender: p.Sender, Payload: &p}, nil
	},
}

// SupportedEvents lists the event names that DecodeEvent accepts, sorted.
func SupportedEvents() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeEvent decodes the body of a delivery of the named event. Failures wrap
// ErrInvalidPayload; date-time failures also wrap a *model.DecodeError naming
// the field.
func DecodeEvent(name string, body []byte) (Event, error) {
	decode, ok := decoders[name]
	if !ok {
		return Event{}, fmt.Errorf("%w: %q", ErrUnsupportedEvent, name)
	}
	event, err := decode(body)
	if err != nil {
		return Event{}, fmt.Errorf("%w for %s event: %w", ErrInvalidPayload, name, err)
	}
	event.Name = name
	return event, nil
}

// HandleWebhookDelivery decodes a delivery and records it.
func HandleWebhookDelivery(ctx context.Context, logger *zap.Logger, recorder EventRecorder, delivery Delivery) (Event, error) {
	id := delivery.ID
	if id == "" {
		id = uuid.New().String()
	}

	event, err := DecodeEvent(delivery.Name, delivery.Body)
	if err != nil {
		return Event{ID: id, Name: delivery.Name}, err
	}
	event.ID = id
	event.ReceivedAt = model.Now()

	if err := recorder.Record(ctx, event); err != nil {
		if errors.Is(err, ErrDuplicateDelivery) {
			logger.Info("Duplicate webhook delivery", zap.String("id", id), zap.String("event", event.Name))
		}
		return event, fmt.Errorf("failed to record %s event %s: %w", event.Name, id, err)
	}

	logger.Debug("Recorded webhook delivery",
		zap.String("id", id),
		zap.String("event", event.Name),
		zap.String("action", event.Action),
	)
	return event, nil
}
