package discord

// user.go represents all structures for a discord user.

// UserFlags represents the flags on a user's account.
type UserFlags uint64

// User flags.
const (
	UserFlagsDiscordEmployee UserFlags = 1 << iota
	UserFlagsPartneredServerOwner
	UserFlagsHypeSquadEvents
	UserFlagsBugHunterLevel1
	_
	_
	UserFlagsHouseBravery
	UserFlagsHouseBrilliance
	UserFlagsHouseBalance
	UserFlagsEarlySupporter
	UserFlagsTeamUser
	_
	_
	_
	UserFlagsBugHunterLevel2
	_
	UserFlagsVerifiedBot
	UserFlagsVerifiedDeveloper
	UserFlagsCertifiedModerator
	UserFlagsBotHTTPInteractions
	_
	_
	UserFlagsActiveDeveloper
)

// UserPremiumType represents the type of Nitro on a user's account.
type UserPremiumType uint8

// User premium type.
const (
	UserPremiumTypeNone UserPremiumType = iota
	UserPremiumTypeNitroClassic
	UserPremiumTypeNitro
	UserPremiumTypeNitroBasic
)

// User represents a user on discord.
type User struct {
	Avatar        *string    `json:"avatar,omitempty"`
	AccentColor   *int32     `json:"accent_color,omitempty"`
	Banner        *string    `json:"banner,omitempty"`
	GlobalName    *string    `json:"global_name,omitempty"`
	PublicFlags   *UserFlags `json:"public_flags,omitempty"`
	System        *bool      `json:"system,omitempty"`
	Username      string     `json:"username"`
	Discriminator string     `json:"discriminator"`
	ID            UserID     `json:"id"`
	Bot           bool       `json:"bot" schema:"default"`
}

// CurrentUser represents the account the gateway session is authenticated as.
type CurrentUser struct {
	Avatar        *string          `json:"avatar,omitempty"`
	AccentColor   *int32           `json:"accent_color,omitempty"`
	Banner        *string          `json:"banner,omitempty"`
	Bio           *string          `json:"bio,omitempty"`
	Email         *string          `json:"email,omitempty"`
	Flags         *UserFlags       `json:"flags,omitempty"`
	GlobalName    *string          `json:"global_name,omitempty"`
	Locale        *string          `json:"locale,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	PremiumType   *UserPremiumType `json:"premium_type,omitempty"`
	PublicFlags   *UserFlags       `json:"public_flags,omitempty"`
	Verified      *bool            `json:"verified,omitempty"`
	Username      string           `json:"username"`
	Discriminator string           `json:"discriminator" schema:"default"`
	ID            UserID           `json:"id"`
	Bot           bool             `json:"bot" schema:"default"`
	MFAEnabled    bool             `json:"mfa_enabled" schema:"default"`
}

// DisplayName returns the global name when set, the username otherwise.
func (u CurrentUser) DisplayName() string {
	if u.GlobalName != nil && *u.GlobalName != "" {
		return *u.GlobalName
	}

	return u.Username
}
