package entities

import "time"

// UserSettings stores user-specific learning preferences.
type UserSettings struct {
	UserID     int64
	NativeLang string // language the questions are displayed in
	TargetLang string // language the learner produces
	Level      Level  // current CEFR level
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUserSettings creates settings with default values.
func NewUserSettings(userID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:     userID,
		NativeLang: "en",
		TargetLang: "es",
		Level:      LevelA1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
