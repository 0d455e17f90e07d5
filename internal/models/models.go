package models

// APIUser represents one issued API key and its usage counters.
// total_usage and used_today are incremented by the bot process that
// serves actual music lookups; this service only reads and toggles them.
type APIUser struct {
	APIKey     string `bson:"api_key" json:"api_key"`
	Username   string `bson:"username,omitempty" json:"username,omitempty"`
	TotalUsage int64  `bson:"total_usage" json:"total_usage"`
	UsedToday  int64  `bson:"used_today" json:"used_today"`
	DailyLimit int64  `bson:"daily_limit" json:"daily_limit"`
	Active     bool   `bson:"active" json:"active"`
	Plan       string `bson:"plan" json:"plan"`
}

// Alert is the singleton system alert document, keyed by AlertID.
// It is created on first upsert and overwritten on every admin call.
type Alert struct {
	ID      string `bson:"id" json:"id"`
	Message string `bson:"message" json:"message"`
	Active  bool   `bson:"active" json:"active"`
}

// Defaults applied when a user record omits the fields.
const (
	DefaultDailyLimit = 50
	DefaultPlan       = "Free"
)

// AlertID is the fixed identifier of the singleton alert document.
const AlertID = "main_alert"

// Collection names inside the dashboard database.
const (
	UsersCollection  = "api_users"
	VideosCollection = "videos_cacht"
	AlertsCollection = "system_alerts"
)

// LeaderboardEntry is one row of the top-usage leaderboard.
type LeaderboardEntry struct {
	Name string `json:"name"`
	Hits int64  `json:"hits"`
}

// DisplayName returns the name shown on the leaderboard: the username
// truncated to 10 characters when set, otherwise the masked key
// ("..." plus the last 4 characters).
func (u *APIUser) DisplayName() string {
	if u.Username != "" {
		// Truncation counts characters, not bytes, so multi-byte
		// names never get cut mid-rune.
		runes := []rune(u.Username)
		if len(runes) > 10 {
			return string(runes[:10])
		}
		return u.Username
	}
	key := u.APIKey
	if len(key) > 4 {
		key = key[len(key)-4:]
	}
	return "..." + key
}
