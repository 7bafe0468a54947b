package models

// ChatLogRecord is one masked line in the chat-YYYY-MM-DD.jsonl stream.
// Question and Answer are stored after PII masking; the live response to the
// caller always carries the original text.
type ChatLogRecord struct {
	Timestamp  string       `json:"t"`
	SessionID  string       `json:"sessionId"`
	Language   LanguageCode `json:"lang"`
	Question   string       `json:"q"`
	Answer     string       `json:"a"`
	Intent     string       `json:"intent,omitempty"`
	Topic      string       `json:"topic,omitempty"`
	Confidence float64      `json:"conf"`
	Handoff    bool         `json:"handoff"`
}

// HandoffLogRecord is one masked line in the handoff-YYYY-MM-DD.jsonl stream.
// Email and Phone never carry the submitted values, only the placeholder
// token when the field was present at all.
type HandoffLogRecord struct {
	Timestamp string `json:"t"`
	Type      string `json:"type"`
	TicketID  string `json:"ticketId"`
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Note      string `json:"note,omitempty"`
}
