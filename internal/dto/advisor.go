package dto

import "farm-advisor/internal/models"

type AskRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

type AskResponse struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Language  string `json:"language"`
	Timestamp int64  `json:"timestamp"`
}

type CategoriesResponse struct {
	Categories []models.CategorySummary `json:"categories"`
}

type HistoryResponse struct {
	History []*models.Interaction `json:"history"`
}

type StatusResponse struct {
	Status          string `json:"status"`
	DatabaseLoaded  bool   `json:"database_loaded"`
	SpeechAvailable bool   `json:"speech_available"`
	SpeechMethod    string `json:"speech_method"`
	Timestamp       int64  `json:"timestamp"`
}
