package models

// ReaderSettings holds reader typography and playback preferences.
type ReaderSettings struct {
	FontSize           int     `json:"fontSize"`
	FontFamily         string  `json:"fontFamily"`
	LineHeight         float64 `json:"lineHeight"`
	TextWidth          int     `json:"textWidth"`
	Padding            int     `json:"padding"`
	Theme              string  `json:"theme"`
	AutoScroll         bool    `json:"autoScroll"`
	AutoScrollSpeed    int     `json:"autoScrollSpeed"`
	TTSEnabled         bool    `json:"ttsEnabled"`
	TTSVoice           string  `json:"ttsVoice,omitempty"`
	TTSRate            float64 `json:"ttsRate"`
	TTSPitch           float64 `json:"ttsPitch"`
	BlueLightFilter    bool    `json:"blueLightFilter"`
	BlueLightIntensity int     `json:"blueLightIntensity"`
}

// DefaultReaderSettings returns the settings of a fresh install.
func DefaultReaderSettings() ReaderSettings {
	return ReaderSettings{
		FontSize:           18,
		FontFamily:         "baskerville",
		LineHeight:         1.8,
		TextWidth:          700,
		Padding:            40,
		Theme:              "white",
		AutoScrollSpeed:    3,
		TTSRate:            1,
		TTSPitch:           1,
		BlueLightIntensity: 50,
	}
}

// ThemePreferences is the application-wide theme and language choice.
type ThemePreferences struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// DefaultThemePreferences returns the theme of a fresh install.
func DefaultThemePreferences() ThemePreferences {
	return ThemePreferences{Theme: "system", Language: "ru"}
}

// SettingsBackup is the file-based backup document: one raw blob per
// settings domain plus the export time.
type SettingsBackup struct {
	Auth           string `json:"auth"`
	Library        string `json:"library"`
	ReaderSettings string `json:"readerSettings"`
	Theme          string `json:"theme"`
	Timestamp      string `json:"timestamp"`
}

// BackupInfo describes the local backup copy kept in the settings directory.
type BackupInfo struct {
	HasBackup      bool   `json:"hasBackup"`
	LastBackupDate string `json:"lastBackupDate,omitempty"`
}
