package constants

// Persisted key schema. Every reader and writer of the store goes through
// these names; nothing else may hold a raw key literal.
const (
	KeyTitle     = "customTitle"
	KeySubtitle  = "customSubtitle"
	KeySubtitle2 = "customSubtitle2"
	KeyEmojis    = "customEmojis"
	KeyBg        = "customBg"
	KeyDateMs    = "customDateMs"

	KeyLastOpenedMs = "lastOpenedMs"

	KeyMilestoneEnabled = "milestoneEnabled"
	KeyMilestoneDateMs  = "milestoneDateMs"
	KeyMilestoneMsg     = "milestoneMsg"

	KeyReminders = "myRemindersList"
)
