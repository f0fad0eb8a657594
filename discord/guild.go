package discord

// guild.go contains the structures to represent a guild.

// MessageNotificationLevel represents a guild's message notification level.
type MessageNotificationLevel uint8

// Message notification levels.
const (
	MessageNotificationsAllMessages MessageNotificationLevel = iota
	MessageNotificationsOnlyMentions
)

// ExplicitContentFilterLevel represents a guild's explicit content filter level.
type ExplicitContentFilterLevel uint8

// Explicit content filter levels.
const (
	ExplicitContentFilterDisabled ExplicitContentFilterLevel = iota
	ExplicitContentFilterMembersWithoutRoles
	ExplicitContentFilterAllMembers
)

// MFALevel represents a guild's MFA level.
type MFALevel uint8

// MFA levels.
const (
	MFALevelNone MFALevel = iota
	MFALevelElevated
)

// VerificationLevel represents a guild's verification level.
type VerificationLevel uint8

const (
	VerificationLevelNone VerificationLevel = iota
	VerificationLevelLow
	VerificationLevelMedium
	VerificationLevelHigh
	VerificationLevelVeryHigh
)

// SystemChannelFlags represents the flags of a system channel.
type SystemChannelFlags uint16

const (
	SystemChannelFlagsSuppressJoin SystemChannelFlags = 1 << iota
	SystemChannelFlagsPremiumSubscriptions
	SystemChannelFlagsSuppressSetupTips
	SystemChannelFlagsHideMemberJoinStickerReplyButtons
	SystemChannelFlagsSuppressSubscriptionNotifications
	SystemChannelFlagsHideRoleSubscriptionReplyButtons
	_
	_
)

// PremiumTier represents the current boosting tier of a guild.
type PremiumTier uint8

const (
	PremiumTierNone PremiumTier = iota
	PremiumTier1
	PremiumTier2
	PremiumTier3
)

// GuildNSFWLevelType represents the level of the guild.
type GuildNSFWLevelType uint8

const (
	GuildNSFWLevelTypeDefault GuildNSFWLevelType = iota
	GuildNSFWLevelTypeExplicit
	GuildNSFWLevelTypeSafe
	GuildNSFWLevelTypeAgeRestricted
)

// Guild represents a guild on discord. Ready carries either full guilds or
// unavailable stubs, so everything except the id is optional.
type Guild struct {
	AFKChannelID                *ChannelID                  `json:"afk_channel_id,omitempty"`
	AFKTimeout                  *uint32                     `json:"afk_timeout,omitempty"`
	ApplicationID               *ApplicationID              `json:"application_id,omitempty"`
	Banner                      *string                     `json:"banner,omitempty"`
	DefaultMessageNotifications *MessageNotificationLevel   `json:"default_message_notifications,omitempty"`
	Description                 *string                     `json:"description,omitempty"`
	DiscoverySplash             *string                     `json:"discovery_splash,omitempty"`
	ExplicitContentFilter       *ExplicitContentFilterLevel `json:"explicit_content_filter,omitempty"`
	Icon                        *string                     `json:"icon,omitempty"`
	JoinedAt                    *Timestamp                  `json:"joined_at,omitempty"`
	Large                       *bool                       `json:"large,omitempty"`
	MaxMembers                  *uint64                     `json:"max_members,omitempty"`
	MemberCount                 *uint64                     `json:"member_count,omitempty"`
	MFALevel                    *MFALevel                   `json:"mfa_level,omitempty"`
	Name                        *string                     `json:"name,omitempty"`
	NSFWLevel                   *GuildNSFWLevelType         `json:"nsfw_level,omitempty"`
	OwnerID                     *UserID                     `json:"owner_id,omitempty"`
	PreferredLocale             *string                     `json:"preferred_locale,omitempty"`
	PremiumSubscriptionCount    *uint64                     `json:"premium_subscription_count,omitempty"`
	PremiumTier                 *PremiumTier                `json:"premium_tier,omitempty"`
	RulesChannelID              *ChannelID                  `json:"rules_channel_id,omitempty"`
	Splash                      *string                     `json:"splash,omitempty"`
	SystemChannelFlags          *SystemChannelFlags         `json:"system_channel_flags,omitempty"`
	SystemChannelID             *ChannelID                  `json:"system_channel_id,omitempty"`
	VanityURLCode               *string                     `json:"vanity_url_code,omitempty"`
	VerificationLevel           *VerificationLevel          `json:"verification_level,omitempty"`
	Features                    StringList                  `json:"features" schema:"default"`
	Roles                       RoleList                    `json:"roles" schema:"default"`
	Emojis                      EmojiList                   `json:"emojis" schema:"default"`
	ID                          GuildID                     `json:"id"`
	Unavailable                 bool                        `json:"unavailable" schema:"default"`
}

// UnavailableGuild represents an unavailable guild.
type UnavailableGuild struct {
	ID          GuildID `json:"id"`
	Unavailable bool    `json:"unavailable"`
}

// Stub reduces the guild to its unavailable form.
func (g Guild) Stub() UnavailableGuild {
	return UnavailableGuild{ID: g.ID, Unavailable: g.Unavailable}
}

// Role represents a role on discord.
type Role struct {
	Icon         *string  `json:"icon,omitempty"`
	Tags         *RoleTag `json:"tags,omitempty"`
	UnicodeEmoji *string  `json:"unicode_emoji,omitempty"`
	Name         string   `json:"name"`
	Permissions  string   `json:"permissions"`
	ID           RoleID   `json:"id"`
	Color        uint32   `json:"color"`
	Position     int64    `json:"position"`
	Hoist        bool     `json:"hoist"`
	Managed      bool     `json:"managed"`
	Mentionable  bool     `json:"mentionable"`
}

// RoleTag represents extra information about a role.
type RoleTag struct {
	BotID             *UserID `json:"bot_id,omitempty"`
	IntegrationID     *string `json:"integration_id,omitempty"`
	PremiumSubscriber *bool   `json:"premium_subscriber,omitempty"`
}

// Emoji represents an Emoji on discord.
type Emoji struct {
	ID            *EmojiID   `json:"id,omitempty"`
	User          *User      `json:"user,omitempty"`
	Name          *string    `json:"name,omitempty"`
	Roles         RoleIDList `json:"roles" schema:"default"`
	RequireColons bool       `json:"require_colons" schema:"default"`
	Managed       bool       `json:"managed" schema:"default"`
	Animated      bool       `json:"animated" schema:"default"`
	Available     bool       `json:"available" schema:"default"`
}
