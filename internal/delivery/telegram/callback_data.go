package telegram

import "strings"

// Callback action constants.
const (
	actionSettings = "settings"
	actionLevel    = "level"
	actionLang     = "lang"
	actionReset    = "reset"
)

// Settings sub-actions.
const (
	settingsMenu   = "menu"
	settingsLevel  = "level"
	settingsNative = "native"
	settingsTarget = "target"
)

// Lang sub-actions: which setting the chosen language code applies to.
const (
	langNative = "native"
	langTarget = "target"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildSettingsCallback builds callback data for settings-related actions.
func buildSettingsCallback(subAction string) string {
	return callbackData{
		Action: actionSettings,
		Params: []string{subAction},
	}.encode()
}

func buildLevelCallback(level string) string {
	return callbackData{
		Action: actionLevel,
		Params: []string{level},
	}.encode()
}

func buildLangCallback(which, code string) string {
	return callbackData{
		Action: actionLang,
		Params: []string{which, code},
	}.encode()
}

func buildResetCallback(subAction string) string {
	return callbackData{
		Action: actionReset,
		Params: []string{subAction},
	}.encode()
}
