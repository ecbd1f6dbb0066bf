package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	userService     UserService
	settingsService SettingsService
	trainerService  TrainerService
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	userService UserService,
	settingsService SettingsService,
	trainerService TrainerService,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		userService:     userService,
		settingsService: settingsService,
		trainerService:  trainerService,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	from := update.Message.From
	chatID := update.Message.Chat.ID

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if _, err := h.userService.Register(ctx, from.ID, chatID); err != nil {
		h.logger.Error("failed to register user",
			zap.Int64("user_id", from.ID),
			zap.Error(err),
		)
	}

	if update.Message.Document != nil {
		_ = h.withErrorHandling(h.importHandler(from.ID, update.Message.Document))(ctx, chatID)
		return
	}

	if update.Message.IsCommand() {
		h.handleCommand(ctx, update, from.ID, chatID)
		return
	}

	// Plain text during practice is an answer.
	if h.trainerService.ActiveRound(chatID) != nil {
		_ = h.withErrorHandling(h.answerHandler(from.ID, update.Message.Text))(ctx, chatID)
		return
	}

	h.send(newHTMLMessage(chatID, msgNoActiveRound))
}

func (h *Handler) handleCommand(ctx context.Context, update tgbotapi.Update, userID, chatID int64) {
	args := strings.TrimSpace(update.Message.CommandArguments())

	switch update.Message.Command() {
	case "start":
		msg := newHTMLMessage(chatID, msgWelcome)
		msg.ReplyMarkup = buildLevelKeyboard()
		h.send(msg)

	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))

	case "practice":
		_ = h.withErrorHandling(h.practiceHandler(userID))(ctx, chatID)

	case "hint":
		_ = h.withErrorHandling(h.hintHandler(userID))(ctx, chatID)

	case "skip":
		_ = h.withErrorHandling(h.skipHandler(userID))(ctx, chatID)

	case "stop":
		h.trainerService.EndSession(chatID)
		h.send(newHTMLMessage(chatID, msgSessionEnded))

	case "progress":
		_ = h.withErrorHandling(h.progressHandler(userID))(ctx, chatID)

	case "stats":
		_ = h.withErrorHandling(h.statsHandler(userID))(ctx, chatID)

	case "word":
		_ = h.withErrorHandling(h.wordHandler(userID, args))(ctx, chatID)

	case "export":
		_ = h.withErrorHandling(h.exportHandler(userID))(ctx, chatID)

	case "import":
		h.send(newHTMLMessage(chatID, msgImportHint))

	case "reset":
		h.sendResetConfirm(chatID)

	case "settings":
		_ = h.withErrorHandling(h.settingsHandler(userID))(ctx, chatID)

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
