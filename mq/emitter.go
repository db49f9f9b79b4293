package mq

import (
	"context"
	"encoding/json"
	"log"

	"gurukul/models"
	"gurukul/rdx"
	"gurukul/search"
)

const channel = "indexing-events"

// Emit publishes an entity-change event to Redis for the indexing worker.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish %s: %v", eventName, err)
	}
}

// StartIndexingWorker keeps the search index in sync with entity writes.
func StartIndexingWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[IndexingWorker] Listening for indexing events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IndexingWorker] failed to parse event: %v", err)
			continue
		}

		if err := search.HandleIndexEvent(ctx, event); err != nil {
			log.Printf("[IndexingWorker] index error for %s/%s: %v", event.EntityType, event.EntityId, err)
		}
	}
}
