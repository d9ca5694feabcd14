package service

import (
	"context"
	"encoding/json"
	"log"

	"agroadvisor-be/internal/dto"
	"agroadvisor-be/internal/model"
	"agroadvisor-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains chat events off the in-process bus and records them
// as system log rows, keeping the request path free of audit writes.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ChatEventPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal chat event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	level := "INFO"
	messageText := "chat interaction completed"
	if !payload.UpstreamOk {
		level = "WARN"
		messageText = "chat interaction degraded to apology"
	}

	entry := &model.SystemLog{
		Id:      uuid.New(),
		Level:   level,
		Module:  "Chat",
		Message: messageText,
		Details: datatypes.JSON(msg.Payload),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SystemLogRepository().Create(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to persist chat event for session %s: %v", payload.SessionId, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
