package models

import "time"

// Input methods recorded with each interaction.
const (
	InputMethodText  = "text"
	InputMethodVoice = "voice"
)

// Interaction is one logged question/answer exchange.
type Interaction struct {
	ID             int64     `json:"-" db:"id"`
	Question       string    `json:"question" db:"question"`
	Answer         string    `json:"answer" db:"answer"`
	Language       string    `json:"language" db:"language"`
	InputMethod    string    `json:"input_method" db:"input_method"`
	SessionID      string    `json:"-" db:"session_id"`
	ResponseTimeMS int64     `json:"-" db:"response_time_ms"`
	Timestamp      time.Time `json:"timestamp" db:"timestamp"`
}
