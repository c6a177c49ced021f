package service

import (
	"context"

	"go.uber.org/zap"
)

// Speech is the text-to-speech capability. Implementations are selected at
// construction time; callers never need to know whether synthesis happens
// on the server or is delegated elsewhere.
type Speech interface {
	Speak(ctx context.Context, text, language string) error
	Available() bool
	Method() string
}

// BrowserSpeech delegates synthesis to the client's Web Speech API. The
// server side only acknowledges the request.
type BrowserSpeech struct {
	logger *zap.Logger
}

func NewBrowserSpeech(logger *zap.Logger) *BrowserSpeech {
	return &BrowserSpeech{logger: logger}
}

func (s *BrowserSpeech) Speak(ctx context.Context, text, language string) error {
	s.logger.Debug("Speech delegated to browser",
		zap.String("language", language),
		zap.Int("text_len", len(text)),
	)
	return nil
}

func (s *BrowserSpeech) Available() bool {
	return true
}

func (s *BrowserSpeech) Method() string {
	return "browser"
}
