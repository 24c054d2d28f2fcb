package model

// ChatMessage is a single turn in the inbound conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents the inbound chat payload. The last user turn is
// the utterance under analysis.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required"`
}

// LastUserContent returns the content of the last message with role "user",
// or "" when the conversation contains no user turn.
func (r ChatRequest) LastUserContent() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == "user" {
			return r.Messages[i].Content
		}
	}
	return ""
}

// ChatResponse is the outbound chat payload
type ChatResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// RenderedReply is the output of the result renderer: localized message
// text plus the deep link mirrored from the populated intent fields.
type RenderedReply struct {
	Message   string `json:"message"`
	SearchURL string `json:"search_url,omitempty"`
}

// ReplySource identifies which path produced the final reply text
type ReplySource string

const (
	ReplySourceTemplate ReplySource = "template"
	ReplySourceAI       ReplySource = "ai"
)

// RecommendationRequest carries user preferences forwarded to the
// recommendations action table.
type RecommendationRequest struct {
	Location  string  `json:"location,omitempty"`
	MinPrice  float64 `json:"minPrice,omitempty"`
	MaxPrice  float64 `json:"maxPrice,omitempty"`
	Bedrooms  int     `json:"bedrooms,omitempty"`
	Furnished string  `json:"furnished,omitempty"`
}

// SyncResponse reports the outcome of a property sync run
type SyncResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Count   int        `json:"count"`
	Total   int        `json:"total"`
	Error   string     `json:"error,omitempty"`
	Hint    string     `json:"hint,omitempty"`
	First   *SyncError `json:"first_error,omitempty"`
}

// SyncError describes the first failure seen during a sync run
type SyncError struct {
	PropertyID int64  `json:"property_id"`
	Title      string `json:"title"`
	Error      string `json:"error"`
}
