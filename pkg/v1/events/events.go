// Package events is the public contract for snapshot events emitted after
// every successful upsert. Downstream consumers decode SnapshotEvent from the
// configured exchange.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SnapshotEvent is one published product observation.
type SnapshotEvent struct {
	ProductCode     string    `json:"productCode"`
	CapturedAt      time.Time `json:"capturedAt"`
	CapturedAtEpoch int64     `json:"capturedAtEpoch"`
	Price           *float64  `json:"price"`
	CardPrice       *float64  `json:"cardPrice"`
	OriginalPrice   *float64  `json:"originalPrice"`
	PriceChange     string    `json:"priceChange"`
	Rating          *float64  `json:"rating"`
	RatingChange    int       `json:"ratingChange"`
	QuestionsCount  int       `json:"questionsCount"`
	ReviewsCount    int       `json:"reviewsCount"`
	Available       bool      `json:"available"`
}

// SnapshotPublisher sends snapshot events.
type SnapshotPublisher struct {
	sender Sender
}

// NewSnapshotPublisher returns new SnapshotPublisher using provided sender for sending messages.
func NewSnapshotPublisher(sender Sender) SnapshotPublisher {
	return SnapshotPublisher{
		sender: sender,
	}
}

// PublishSnapshotEvent sends provided snapshot event.
func (p SnapshotPublisher) PublishSnapshotEvent(ctx context.Context, event SnapshotEvent) error {
	eventMsg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("can't marshal snapshot event: %w", err)
	}

	return p.sender.Send(ctx, eventMsg)
}
