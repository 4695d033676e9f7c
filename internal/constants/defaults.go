package constants

const (
	DefaultSubtitle     = "Time remaining:"
	DefaultSubtitle2    = "Happy New Year!"
	DefaultEmojis       = "💗 ❄️️ 🌼 ☔ ♥️ 💦 🥳 🥰"
	DefaultEmojiToken   = "💗"
	DefaultMilestoneMsg = "Almost there… 💗"

	// Background images are re-encoded to fit these bounds before storage.
	BgMaxWidth    = 1080
	BgJPEGQuality = 85

	// MaxValueBytes caps a single stored value. Writes above it are rejected
	// whole so the previously persisted value stays intact.
	MaxValueBytes = 2 << 20
)
