package service

import (
	"context"
	"encoding/json"
	"log"
	"math"

	"repartoya/feed-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	State  *State
	Store  ProjectionStoreInterface
}

func NewConsumer(reader *kafka.Reader, state *State, store ProjectionStoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		State:  state,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[feed] starting order feed consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[feed] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[feed] error unmarshaling message: %v", err)
			continue
		}

		c.Process(event)
	}
}

// Process reconciles one event and refreshes every projection the
// changed order touches. Stale and duplicated events are dropped here,
// so the topic's at-least-once delivery never double-counts.
func (c *Consumer) Process(event domain.OrderEvent) {
	snap, applied := c.State.Apply(event)
	if !applied {
		log.Printf("[feed] skipping stale event for order %s (%s)", event.OrderID, event.To)
		return
	}

	if err := c.Store.SaveSnapshot(snap); err != nil {
		log.Printf("[feed] error saving snapshot for %s: %v", snap.ID, err)
	}

	if err := c.Store.UpdatePool(snap.ID, snap.CreatedAt, snap.Status == domain.StatusReady); err != nil {
		log.Printf("[feed] error updating pool for %s: %v", snap.ID, err)
	}

	if err := c.Store.SyncBuckets(snap.RestaurantID, c.State.BucketsFor(snap.RestaurantID)); err != nil {
		log.Printf("[feed] error syncing buckets for %s: %v", snap.RestaurantID, err)
	}

	active := !domain.IsTerminal(snap.Status)
	if err := c.Store.SetClientActive(snap.ClientID, snap.ID, active); err != nil {
		log.Printf("[feed] error updating client set for %s: %v", snap.ClientID, err)
	}

	if snap.Status == domain.StatusDelivered {
		c.settle(snap)
	}
}

// settle runs exactly once per order: Apply refuses any second
// delivered event, so re-entry is impossible.
func (c *Consumer) settle(snap domain.OrderSnapshot) {
	if snap.DeliveryID != "" {
		if err := c.Store.RecordDelivery(snap.DeliveryID, snap.ID, snap.UpdatedAt); err != nil {
			log.Printf("[feed] error recording delivery for %s: %v", snap.DeliveryID, err)
		}
	}

	// the rate snapshotted on the order at delivery, never the live one
	commission := round2(snap.Total * snap.CommissionRate / 100)
	net := round2(snap.Total - commission)
	date := snap.UpdatedAt.UTC().Format("2006-01-02")

	if err := c.Store.RecordEarnings(snap.RestaurantID, date, snap.Total, commission, net); err != nil {
		log.Printf("[feed] error recording earnings for %s: %v", snap.RestaurantID, err)
		return
	}
	log.Printf("[feed] settled order %s: gross=%.2f commission=%.2f net=%.2f",
		snap.ID, snap.Total, commission, net)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
