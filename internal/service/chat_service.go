package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"agroadvisor-be/internal/constant"
	"agroadvisor-be/internal/dto"
	"agroadvisor-be/internal/entity"
	"agroadvisor-be/internal/pkg/logger"
	"agroadvisor-be/internal/pkg/storage"
	"agroadvisor-be/internal/repository/specification"
	"agroadvisor-be/internal/repository/unitofwork"
	"agroadvisor-be/pkg/genai"
	"agroadvisor-be/pkg/language"
	"agroadvisor-be/pkg/speech"
	"agroadvisor-be/pkg/translate"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage        = errors.New("no message provided")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrSessionNotFound     = errors.New("chat session not found or does not belong to user")
)

const titleTokenLimit = 6

type IChatService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetChatHistory(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ChatHistoryResponse, error)
	NewChat(ctx context.Context, userId uuid.UUID) (*dto.NewChatResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) (*dto.SessionListResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	translator       translate.Translator
	provider         genai.Provider
	synthesizer      speech.Synthesizer
	uploadStore      storage.UploadStore
	publisherService IPublisherService
	log              logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	translator translate.Translator,
	provider genai.Provider,
	synthesizer speech.Synthesizer,
	uploadStore storage.UploadStore,
	publisherService IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		translator:       translator,
		provider:         provider,
		synthesizer:      synthesizer,
		uploadStore:      uploadStore,
		publisherService: publisherService,
		log:              log,
	}
}

// SendMessage runs the advisory pipeline: persist the inbound message,
// translate it if needed, ask the model, translate the answer back, persist
// it, and attach best-effort audio. Each persistence step commits on its own,
// so an upstream failure after the inbound save leaves the user message
// recorded without a paired reply.
func (c *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	lang, err := language.Parse(req.Language)
	if err != nil {
		return nil, ErrUnsupportedLanguage
	}

	sessionId, err := uuid.Parse(req.SessionId)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Sender:        entity.ChatSenderUser,
		Text:          req.Message,
		CreatedAt:     time.Now(),
	}
	if req.ImageFilename != "" {
		filename := req.ImageFilename
		userMessage.ImageFilename = &filename
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	if session.Title == entity.DefaultSessionTitle {
		session.Title = deriveTitle(req.Message)
		if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
			return nil, err
		}
	}

	finalText, upstreamErr := c.generateReply(ctx, req, lang)
	if upstreamErr != nil {
		// The client always gets a reply object; the failure is only
		// visible in the logs.
		c.log.Error("Chat", "Advisory pipeline upstream failure", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      upstreamErr.Error(),
		})
		c.publishChatEvent(ctx, userId, session.Id, lang, req.ImageFilename != "", false, false, 0)
		return &dto.ChatResponse{Response: constant.AdvisorApologyMessage, AudioURL: nil}, nil
	}

	aiMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Sender:        entity.ChatSenderAI,
		Text:          finalText,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, aiMessage); err != nil {
		return nil, err
	}

	var audioURL *string
	if url, ok := c.synthesizer.Synthesize(ctx, finalText, lang); ok {
		audioURL = &url
	}

	c.publishChatEvent(ctx, userId, session.Id, lang, req.ImageFilename != "", audioURL != nil, true, len(finalText))

	return &dto.ChatResponse{Response: finalText, AudioURL: audioURL}, nil
}

// generateReply handles the language round trip around the model call. Any
// error here is an upstream failure the caller masks with an apology.
func (c *chatService) generateReply(ctx context.Context, req *dto.ChatRequest, lang language.Language) (string, error) {
	messageEn := req.Message
	if lang == language.Yoruba {
		translated, err := c.translator.Translate(ctx, req.Message, language.Yoruba, language.English)
		if err != nil {
			return "", err
		}
		messageEn = translated
	}

	instruction := constant.RespondInEnglishInstruction
	if lang == language.Yoruba {
		instruction = constant.RespondInYorubaInstruction
	}
	prompt := constant.AdvisorSystemPromptV1 + instruction + "\n\n" + messageEn

	var image *genai.ImageAttachment
	if req.ImageFilename != "" {
		data, mimeType, err := c.uploadStore.Read(req.ImageFilename)
		if err != nil {
			return "", err
		}
		image = &genai.ImageAttachment{MimeType: mimeType, Data: data}
	}

	replyEn, err := c.provider.Generate(ctx, prompt, image)
	if err != nil {
		return "", err
	}

	if lang == language.Yoruba {
		replyYo, err := c.translator.Translate(ctx, replyEn, language.English, language.Yoruba)
		if err != nil {
			return "", err
		}
		return replyYo, nil
	}
	return replyEn, nil
}

func (c *chatService) publishChatEvent(ctx context.Context, userId, sessionId uuid.UUID, lang language.Language, hasImage, hasAudio, upstreamOk bool, responseSize int) {
	if c.publisherService == nil {
		return
	}

	payload := dto.ChatEventPayload{
		UserId:       userId.String(),
		SessionId:    sessionId.String(),
		Language:     lang.String(),
		HasImage:     hasImage,
		HasAudio:     hasAudio,
		UpstreamOk:   upstreamOk,
		ResponseSize: responseSize,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return
	}

	if err := c.publisherService.Publish(ctx, payloadJson); err != nil {
		c.log.Warn("Chat", "Failed to publish chat event", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
	}
}

// deriveTitle takes the first six whitespace-delimited tokens of the message,
// appending an ellipsis when truncated.
func deriveTitle(message string) string {
	tokens := strings.Fields(message)
	if len(tokens) <= titleTokenLimit {
		return strings.Join(tokens, " ")
	}
	return strings.Join(tokens[:titleTokenLimit], " ") + "..."
}

func (c *chatService) GetChatHistory(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ChatHistoryResponse{Messages: make([]dto.ChatHistoryMessage, 0, len(messages))}
	for _, msg := range messages {
		res.Messages = append(res.Messages, dto.ChatHistoryMessage{
			Sender:        msg.Sender,
			Text:          msg.Text,
			ImageFilename: msg.ImageFilename,
		})
	}
	return res, nil
}

func (c *chatService) NewChat(ctx context.Context, userId uuid.UUID) (*dto.NewChatResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     entity.DefaultSessionTitle,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.NewChatResponse{SessionId: session.Id.String(), Title: session.Title}, nil
}

func (c *chatService) ListSessions(ctx context.Context, userId uuid.UUID) (*dto.SessionListResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.SessionListResponse{Sessions: make([]dto.SessionSummary, 0, len(sessions))}
	for _, session := range sessions {
		res.Sessions = append(res.Sessions, dto.SessionSummary{
			SessionId: session.Id.String(),
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
		})
	}
	return res, nil
}
