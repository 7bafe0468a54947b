package models

// LanguageCode identifies one of the languages the assistant can answer in.
type LanguageCode string

const (
	LangEnglish LanguageCode = "en"
	LangHindi   LanguageCode = "hi"
	LangBengali LanguageCode = "bn"
	LangMarathi LanguageCode = "mr"
	LangTamil   LanguageCode = "ta"
)

// SupportedLanguages is the closed set of language codes, in canonical order.
var SupportedLanguages = []LanguageCode{LangEnglish, LangHindi, LangBengali, LangMarathi, LangTamil}

// IsValidLanguage reports whether code is one of the supported languages.
func IsValidLanguage(code LanguageCode) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}

// ChatRequest is the body of POST /api/chat. Language is optional; when
// omitted the server detects it from the message script.
type ChatRequest struct {
	SessionID string       `json:"sessionId"`
	Message   string       `json:"message"`
	Language  LanguageCode `json:"language,omitempty"`
}

// ChatResponse is the body returned by POST /api/chat.
type ChatResponse struct {
	SessionID       string       `json:"sessionId"`
	Answer          string       `json:"answer"`
	Language        LanguageCode `json:"language"`
	Intent          string       `json:"intent,omitempty"`
	Confidence      float64      `json:"confidence"`
	FallbackToHuman bool         `json:"fallbackToHuman"`
	ContextTopic    string       `json:"contextTopic,omitempty"`
}

// HandoffRequest is the body of POST /api/handoff.
type HandoffRequest struct {
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Note      string `json:"note,omitempty"`
}

// HandoffResponse acknowledges a recorded handoff request.
type HandoffResponse struct {
	OK bool `json:"ok"`
}

// SessionContext is the per-session conversation state: the last intent and
// topic the assistant resolved for that session. Both fields are empty for a
// brand-new session and are reset whenever a turn escalates to a human.
type SessionContext struct {
	LastIntent string
	LastTopic  string
}
