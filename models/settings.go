package models

// UserSettings holds per-user display preferences, one row per user.
type UserSettings struct {
	UserID            string `gorm:"type:varchar(50);primaryKey" json:"-"`
	Theme             string `gorm:"type:varchar(10)" json:"theme"`
	AccentColor       string `gorm:"type:varchar(20)" json:"accentColor"`
	GlassIntensity    int    `json:"glassIntensity"`
	TimeFormat24h     bool   `json:"timeFormat24h"`
	StartWeekOnMonday bool   `json:"startWeekOnMonday"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultSettings returns the settings a new account starts with.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:            userID,
		Theme:             "dark",
		AccentColor:       "#22d3ee",
		GlassIntensity:    8,
		TimeFormat24h:     true,
		StartWeekOnMonday: true,
	}
}
