package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxImportSize caps progress import downloads. Exports are a few hundred
// kilobytes at most even after years of reviews.
const maxImportSize = 2 << 20

func (h *Handler) practiceHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		round, sel, err := h.trainerService.NextRound(ctx, userID, chatID)
		if err != nil {
			return fmt.Errorf("next round: %w", err)
		}

		settings, err := h.settingsService.Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		h.send(newHTMLMessage(chatID, renderRound(round, sel, settings)))
		return nil
	}
}

func (h *Handler) answerHandler(userID int64, answer string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		result, err := h.trainerService.CheckAnswer(ctx, userID, chatID, answer)
		if err != nil {
			return fmt.Errorf("check answer: %w", err)
		}

		h.send(newHTMLMessage(chatID, renderFeedback(result)))

		// Immediately serve the next round to keep the session flowing.
		return h.practiceHandler(userID)(ctx, chatID)
	}
}

func (h *Handler) hintHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		hint, err := h.trainerService.Hint(ctx, userID, chatID)
		if err != nil {
			h.send(newHTMLMessage(chatID, msgNoActiveRound))
			return nil
		}

		h.send(newHTMLMessage(chatID, "💡 "+esc(hint)))
		return nil
	}
}

func (h *Handler) skipHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		reference, err := h.trainerService.Skip(chatID)
		if err != nil {
			h.send(newHTMLMessage(chatID, msgNoActiveRound))
			return nil
		}

		h.send(newHTMLMessage(chatID, fmt.Sprintf("The answer was:\n<b>%s</b>", esc(reference))))
		return h.practiceHandler(userID)(ctx, chatID)
	}
}

func (h *Handler) progressHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.settingsService.Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		list, err := h.trainerService.GrammarList(ctx, userID, settings.Level)
		if err != nil {
			return fmt.Errorf("grammar list: %w", err)
		}

		h.send(newHTMLMessage(chatID, renderGrammarList(settings.Level, list)))
		return nil
	}
}

func (h *Handler) statsHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		stats, err := h.trainerService.OverallStats(ctx, userID)
		if err != nil {
			return fmt.Errorf("overall stats: %w", err)
		}

		h.send(newHTMLMessage(chatID, renderOverallStats(stats)))
		return nil
	}
}

func (h *Handler) wordHandler(userID int64, word string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		word = strings.TrimSpace(word)
		if word == "" {
			h.send(newHTMLMessage(chatID, msgWordUsage))
			return nil
		}

		info, err := h.trainerService.LookupWord(ctx, userID, word)
		if err != nil {
			h.send(newHTMLMessage(chatID, fmt.Sprintf("Nothing found for <b>%s</b>.", esc(word))))
			return nil
		}

		h.send(newHTMLMessage(chatID, renderWordInfo(info)))
		return nil
	}
}

func (h *Handler) exportHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		data, err := h.trainerService.Export(ctx, userID)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		name := fmt.Sprintf("lingua-trainer-%s.json", time.Now().Format("2006-01-02"))
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
		doc.Caption = "Your practice progress. Send it back to me any time to restore."
		h.send(doc)
		return nil
	}
}

func (h *Handler) importHandler(userID int64, document *tgbotapi.Document) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if document.FileSize > maxImportSize {
			h.send(newHTMLMessage(chatID, msgImportInvalid))
			return nil
		}

		url, err := h.bot.GetFileDirectURL(document.FileID)
		if err != nil {
			return fmt.Errorf("resolve document url: %w", err)
		}

		data, err := download(ctx, url)
		if err != nil {
			return fmt.Errorf("download document: %w", err)
		}

		if err := h.trainerService.Import(ctx, userID, data); err != nil {
			h.send(newHTMLMessage(chatID, msgImportInvalid))
			return nil
		}

		h.send(newHTMLMessage(chatID, msgImportDone))
		return nil
	}
}

func (h *Handler) settingsHandler(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.settingsService.Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		msg := newHTMLMessage(chatID, renderSettings(settings))
		msg.ReplyMarkup = buildSettingsKeyboard()
		h.send(msg)
		return nil
	}
}

func (h *Handler) sendResetConfirm(chatID int64) {
	msg := newHTMLMessage(chatID, msgResetConfirm)
	msg.ReplyMarkup = buildResetKeyboard()
	h.send(msg)
}

func download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(io.LimitReader(resp.Body, maxImportSize))
}
