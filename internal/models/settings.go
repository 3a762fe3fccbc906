package models

// Settings holds the user-level application settings. There is exactly one
// settings row per store.
type Settings struct {
	Timezone string `json:"timezone"` // IANA name, "Local" or empty for system timezone
}
