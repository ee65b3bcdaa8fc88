// Package notify broadcasts store change events over Redis pub/sub. Each
// mutation publishes the names of the collections it touched; subscribers
// (the SSE endpoint, the catalog cache invalidator) react to only those
// collections instead of refetching everything.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Channel is the Redis pub/sub channel carrying change events.
const Channel = "store:changes"

// Collection names as they appear in events, matching the backup document keys.
const (
	CollectionProducts  = "products"
	CollectionCustomers = "customers"
	CollectionOrders    = "orders"
	CollectionProviders = "providers"
	CollectionDiscounts = "discounts"
	CollectionPurchases = "purchases"
	CollectionUsers     = "users"
)

// Event names the collections changed by one mutation.
type Event struct {
	Collections []string  `json:"collections"`
	At          time.Time `json:"at"`
}

// Publisher fans change events out to every connected subscriber. A nil
// client makes every publish a no-op, so services never branch on whether
// Redis is configured.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Publish emits an event for the given collections. Failures are logged and
// swallowed: a change event is best effort and must never fail the mutation
// that already committed.
func (p *Publisher) Publish(ctx context.Context, collections ...string) {
	if p.rdb == nil || len(collections) == 0 {
		return
	}
	ev := Event{Collections: collections, At: time.Now().UTC()}
	data, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal change event")
		return
	}
	if err := p.rdb.Publish(ctx, Channel, data).Err(); err != nil {
		log.Error().Err(err).Strs("collections", collections).Msg("failed to publish change event")
	}
}

// Subscriber receives change events from the channel.
type Subscriber struct {
	rdb *redis.Client
}

func NewSubscriber(rdb *redis.Client) *Subscriber {
	return &Subscriber{rdb: rdb}
}

// Listen subscribes to the change channel and invokes fn for every event
// until ctx is cancelled. Malformed payloads are logged and skipped.
func (s *Subscriber) Listen(ctx context.Context, fn func(Event)) error {
	if s.rdb == nil {
		<-ctx.Done()
		return ctx.Err()
	}
	sub := s.rdb.Subscribe(ctx, Channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Error().Err(err).Msg("failed to unmarshal change event")
				continue
			}
			fn(ev)
		}
	}
}
