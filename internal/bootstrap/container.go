package bootstrap

import (
	"log"

	"agroadvisor-be/internal/config"
	"agroadvisor-be/internal/controller"
	"agroadvisor-be/internal/pkg/logger"
	"agroadvisor-be/internal/pkg/mailer"
	"agroadvisor-be/internal/pkg/storage"
	"agroadvisor-be/internal/repository/unitofwork"
	"agroadvisor-be/internal/service"
	"agroadvisor-be/pkg/genai"
	"agroadvisor-be/pkg/language"
	pkgNats "agroadvisor-be/pkg/nats"
	"agroadvisor-be/pkg/speech"
	"agroadvisor-be/pkg/translate"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController   controller.IAuthController
	ChatController   controller.IChatController
	UploadController controller.IUploadController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional infrastructure; a missing broker only disables
	// cross-service auth events.
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Stores
	uploadStore, err := storage.NewUploadStore(cfg.Media.UploadDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize upload store: %v", err)
	}
	audioStore, err := storage.NewAudioStore(cfg.Media.AudioDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize audio store: %v", err)
	}

	// 4. External Adapters
	translator := translate.NewGoogleTranslator()
	provider := genai.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.GeminiModel, cfg.Ai.GeminiBaseURL)

	engines := map[language.Language]speech.Engine{
		language.English: speech.NewGttsEngine(language.English.String()),
	}
	if cfg.Keys.HuggingFace != "" {
		engines[language.Yoruba] = speech.NewMmsEngine(cfg.Keys.HuggingFace, cfg.Ai.MmsModel)
	} else {
		log.Printf("[WARN] HUGGINGFACE_API_KEY not set, Yoruba speech synthesis disabled")
	}
	synthesizer := speech.NewSynthesizer(engines, audioStore, sysLogger)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.ChatEventsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.ChatEventsTopic, uowFactory)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, cfg.App.BaseURL)
	chatService := service.NewChatService(
		uowFactory,
		translator,
		provider,
		synthesizer,
		uploadStore,
		publisherService,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		AuthController:   controller.NewAuthController(authService),
		ChatController:   controller.NewChatController(chatService),
		UploadController: controller.NewUploadController(uploadStore),
		ConsumerService:  consumerService,
		Logger:           sysLogger,
	}
}
