package dto

import "time"

type ChatRequest struct {
	Message       string `json:"message"`
	SessionId     string `json:"session_id" validate:"required,uuid"`
	ImageFilename string `json:"image_filename,omitempty"`
	Language      string `json:"language,omitempty"`
}

type ChatResponse struct {
	Response string  `json:"response"`
	AudioURL *string `json:"audio_url"`
}

type ChatHistoryMessage struct {
	Sender        string  `json:"sender"`
	Text          string  `json:"text"`
	ImageFilename *string `json:"image_filename"`
}

type ChatHistoryResponse struct {
	Messages []ChatHistoryMessage `json:"messages"`
}

type NewChatResponse struct {
	SessionId string `json:"session_id"`
	Title     string `json:"title"`
}

type SessionSummary struct {
	SessionId string    `json:"session_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionListResponse struct {
	Sessions []SessionSummary `json:"sessions"`
}

type UploadImageResponse struct {
	ImageFilename string `json:"image_filename"`
}

// ChatEventPayload is published on the in-process bus after each completed
// pipeline run and lands in the system log.
type ChatEventPayload struct {
	UserId       string `json:"user_id"`
	SessionId    string `json:"session_id"`
	Language     string `json:"language"`
	HasImage     bool   `json:"has_image"`
	HasAudio     bool   `json:"has_audio"`
	UpstreamOk   bool   `json:"upstream_ok"`
	ResponseSize int    `json:"response_size"`
}
