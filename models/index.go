package models

// Index is the entity-change event published over the message queue
// for search indexing and cache invalidation.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
}
