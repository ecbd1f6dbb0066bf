package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	var (
		text string
		kb   *tgbotapi.InlineKeyboardMarkup
		ok   bool
	)

	userID := cb.From.ID
	cd := decodeCallback(cb.Data)

	switch cd.Action {
	case actionSettings:
		text, kb, ok = h.handleSettingsCallback(ctx, userID, cd)
	case actionLevel:
		text, kb, ok = h.handleLevelCallback(ctx, userID, cd)
	case actionLang:
		text, kb, ok = h.handleLangCallback(ctx, userID, cd)
	case actionReset:
		text, ok = h.handleResetCallback(ctx, userID, cd)
	default:
		return
	}

	if !ok {
		return
	}

	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if kb != nil {
		edit.ReplyMarkup = kb
	}

	h.send(edit)

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

func (h *Handler) handleSettingsCallback(ctx context.Context, userID int64, cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	if len(cd.Params) == 0 {
		return "", nil, false
	}

	switch cd.Params[0] {
	case settingsMenu:
		return h.settingsMenu(ctx, userID)
	case settingsLevel:
		kb := buildLevelKeyboard()
		return "🎓 Pick your level:", &kb, true
	case settingsNative:
		kb := buildLangKeyboard(langNative)
		return "🏠 Pick the language I should show questions in:", &kb, true
	case settingsTarget:
		kb := buildLangKeyboard(langTarget)
		return "🎯 Pick the language you are learning:", &kb, true
	default:
		return "", nil, false
	}
}

func (h *Handler) handleLevelCallback(ctx context.Context, userID int64, cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	if len(cd.Params) != 1 {
		return "", nil, false
	}

	if err := h.settingsService.SetLevel(ctx, userID, cd.Params[0]); err != nil {
		h.logger.Error("set level",
			zap.Int64("user_id", userID),
			zap.String("level", cd.Params[0]),
			zap.Error(err),
		)
		return "", nil, false
	}

	return h.settingsMenu(ctx, userID)
}

func (h *Handler) handleLangCallback(ctx context.Context, userID int64, cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	if len(cd.Params) != 2 {
		return "", nil, false
	}

	which, code := cd.Params[0], cd.Params[1]

	var err error
	switch which {
	case langNative:
		err = h.settingsService.SetNativeLang(ctx, userID, code)
	case langTarget:
		err = h.settingsService.SetTargetLang(ctx, userID, code)
	default:
		return "", nil, false
	}
	if err != nil {
		h.logger.Error("set language",
			zap.Int64("user_id", userID),
			zap.String("which", which),
			zap.String("code", code),
			zap.Error(err),
		)
		return "", nil, false
	}

	return h.settingsMenu(ctx, userID)
}

func (h *Handler) handleResetCallback(ctx context.Context, userID int64, cd callbackData) (string, bool) {
	if len(cd.Params) != 1 {
		return "", false
	}

	switch cd.Params[0] {
	case resetConfirm:
		if err := h.trainerService.ResetProgress(ctx, userID, ""); err != nil {
			h.logger.Error("reset progress",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return msgInternalError, true
		}
		return msgResetDone, true
	case resetCancel:
		return msgResetCancelled, true
	default:
		return "", false
	}
}

// settingsMenu re-renders the settings screen after a change.
func (h *Handler) settingsMenu(ctx context.Context, userID int64) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	settings, err := h.settingsService.Get(ctx, userID)
	if err != nil {
		h.logger.Error("get settings",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return "", nil, false
	}

	kb := buildSettingsKeyboard()
	return renderSettings(settings), &kb, true
}
