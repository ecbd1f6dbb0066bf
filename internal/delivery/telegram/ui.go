package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/lingua-trainer-bot/internal/domain/entities"
	"github.com/aliskhannn/lingua-trainer-bot/internal/lang"
)

// keyboardLangs are the language codes offered in the settings keyboards.
// Anything the translation provider supports still works; these are just
// the one-tap options.
var keyboardLangs = []string{
	"en", "es", "fr", "de", "it", "pt",
	"ru", "uk", "pl", "nl", "tr", "sv",
}

// buildSettingsKeyboard builds the main settings keyboard.
func buildSettingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎓 Level", buildSettingsCallback(settingsLevel)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Native language", buildSettingsCallback(settingsNative)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Target language", buildSettingsCallback(settingsTarget)),
		),
	)
}

// buildLevelKeyboard builds the CEFR level picker.
func buildLevelKeyboard() tgbotapi.InlineKeyboardMarkup {
	levels := []entities.Level{
		entities.LevelA1, entities.LevelA2, entities.LevelB1,
		entities.LevelB2, entities.LevelC1, entities.LevelC2,
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(levels); i += 2 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(string(levels[i]), buildLevelCallback(string(levels[i]))),
			tgbotapi.NewInlineKeyboardButtonData(string(levels[i+1]), buildLevelCallback(string(levels[i+1]))),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", buildSettingsCallback(settingsMenu)),
	))

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildLangKeyboard builds a language picker for the native or target setting.
func buildLangKeyboard(which string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(keyboardLangs); i += 3 {
		var row []tgbotapi.InlineKeyboardButton
		for _, code := range keyboardLangs[i:min(i+3, len(keyboardLangs))] {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(lang.Name(code), buildLangCallback(which, code)))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", buildSettingsCallback(settingsMenu)),
	))

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildResetKeyboard builds the reset confirmation keyboard.
func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚠️ Yes, reset everything", buildResetCallback(resetConfirm)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Cancel", buildResetCallback(resetCancel)),
		),
	)
}
