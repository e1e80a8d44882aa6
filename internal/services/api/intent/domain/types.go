package domain

// QueryIntent is the structured record describing what a chat query is asking
// for, including any recognized fiber name. One is built fresh per query and
// owned by the caller
type QueryIntent struct {
	ConversationID string   `json:"conversation_id"`
	Kind           string   `json:"kind"`
	MatchedFiber   string   `json:"matched_fiber,omitempty"`
	RequiresSearch bool     `json:"requires_search"`
	NeedsImages    bool     `json:"needs_images"`
	SearchTerms    []string `json:"search_terms"`
	LexiconSize    int      `json:"lexicon_size"`
}
