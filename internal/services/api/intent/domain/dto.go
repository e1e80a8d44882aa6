// Package domain holds DTOs for intent http and service contracts
package domain

// EnrichInput is the input for enriching a chat query
type EnrichInput struct {
	Query          string `json:"query" validate:"required,min=1,max=2000" example:"tell me about cotton"`
	ConversationID string `json:"conversation_id,omitempty" validate:"omitempty,uuid4" example:"3f6f9c2e-8a74-4c2b-9f36-0d0f4f7b9f21"`
}

// LexiconStatus reports the state of the cached fiber name snapshot
type LexiconStatus struct {
	Loaded      bool   `json:"loaded"`
	Size        int    `json:"size"`
	AgeSeconds  int64  `json:"age_seconds"`
	TTLSeconds  int64  `json:"ttl_seconds"`
	RefreshedAt string `json:"refreshed_at,omitempty"`
}

// InvalidateAck acknowledges an explicit lexicon invalidation
type InvalidateAck struct {
	Status string `json:"status" example:"ok"`
}
