package dto

type SpeakRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type SpeakResponse struct {
	Status string `json:"status"`
	Method string `json:"method"`
}

type VoiceStartRequest struct {
	Language string `json:"language"`
}

type VoiceStartResponse struct {
	Status   string `json:"status"`
	Method   string `json:"method"`
	Language string `json:"language"`
}

type VoiceStatusResponse struct {
	IsListening     bool   `json:"is_listening"`
	SpeechAvailable bool   `json:"speech_available"`
	Method          string `json:"method"`
}
