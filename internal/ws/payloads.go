package ws

// Envelope wraps every server → client message.
type Envelope struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}
