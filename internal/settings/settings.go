// Package settings is the key-value preference store, separate from the
// relational store. Last write wins; no schema.
package settings

const (
	KeyFirstLaunchDone      = "first_launch_done"
	KeyOnboardingDone       = "onboarding_done"
	KeyNotificationsEnabled = "notifications_enabled"
	KeyVibrationEnabled     = "vibration_enabled"
	KeyThemeMode            = "theme_mode"
	KeyLastSyncAt           = "last_sync_at"
	KeyCurrentUserID        = "current_user_id"
	KeyCatalogVersion       = "catalog_version"

	dailyBonusPrefix = "daily_bonus"
)

// Store is the full public surface of the preference store. Every accessor a
// component needs lives here, so nothing ever has to reach around it.
type Store interface {
	Bool(key string) (bool, error)
	// BoolDefault reads a toggle that is considered def until a client has
	// written it. Feature toggles that ship enabled read through this, never
	// through Bool, so a fresh install behaves as enabled.
	BoolDefault(key string, def bool) (bool, error)
	SetBool(key string, v bool) error
	String(key string) (string, error)
	SetString(key, v string) error
	Delete(key string) error

	// DailyBonus reads the date-partitioned bonus value for one user-day,
	// defaulting to 0 when absent. Values are stored in the canonical decimal
	// encoding; see NormalizeDailyBonus.
	DailyBonus(userID, date string) (float64, error)
	SetDailyBonus(userID, date string, v float64) error
	AddDailyBonus(userID, date string, delta float64) (float64, error)

	// NormalizeDailyBonus is the one-time migration that rewrites legacy
	// bit-pattern bonus entries into the canonical decimal encoding. It
	// returns the number of entries rewritten.
	NormalizeDailyBonus() (int, error)
}

// DailyBonusKey builds the date-partitioned key: daily_bonus_<userID>_<YYYY-MM-DD>.
func DailyBonusKey(userID, date string) string {
	return dailyBonusPrefix + "_" + userID + "_" + date
}
