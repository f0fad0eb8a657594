// Package v1 is the exhaustive Ready schema. Every field the gateway has been
// observed to send to user accounts is declared and required; identifiers
// are kept as plain strings.
package v1

import (
	"github.com/WelcomerTeam/Sandwich-Ready/discord"
)

const SchemaName = "v1"

// Ready represents the first dispatch after a successful identify.
type Ready struct {
	SessionType                string                          `json:"session_type"`
	APICodeVersion             int64                           `json:"api_code_version"`
	Presences                  discord.List[Presence]          `json:"presences"`
	NotificationSettings       NotificationSettings            `json:"notification_settings"`
	PrivateChannels            discord.List[PrivateChannel]    `json:"private_channels"`
	Consents                   Consents                        `json:"consents"`
	GuildExperiments           discord.List[ExperimentRow]     `json:"guild_experiments"`
	UserGuildSettings          discord.List[UserGuildSetting]  `json:"user_guild_settings"`
	UserSettingsProto          string                          `json:"user_settings_proto"`
	StaticClientSessionID      string                          `json:"static_client_session_id"`
	Guilds                     discord.GuildList               `json:"guilds"`
	ExplicitContentScanVersion int64                           `json:"explicit_content_scan_version"`
	AnalyticsToken             string                          `json:"analytics_token"`
	SessionID                  string                          `json:"session_id"`
	ResumeGatewayURL           string                          `json:"resume_gateway_url"`
	Experiments                discord.List[discord.Int64List] `json:"experiments"`
	User                       discord.User                    `json:"user"`
	Version                    int64                           `json:"v"`
	CountryCode                string                          `json:"country_code"`
	FriendSuggestionCount      int64                           `json:"friend_suggestion_count"`
	ReadState                  discord.List[ReadState]         `json:"read_state"`
	AuthSessionIDHash          string                          `json:"auth_session_id_hash"`
	UserSettings               UserSettings                    `json:"user_settings"`
	Sessions                   discord.List[Session]           `json:"sessions"`
	Notes                      Notes                           `json:"notes"`
	GeoOrderedRTCRegions       discord.StringList              `json:"geo_ordered_rtc_regions"`
	Relationships              discord.List[Relationship]      `json:"relationships"`
}

// ReadStateFor returns the read cursor of a channel, if the user has one.
func (r *Ready) ReadStateFor(channelID string) (ReadState, bool) {
	for _, rs := range r.ReadState {
		if rs.ID == channelID {
			return rs, true
		}
	}

	return ReadState{}, false
}

type Consents struct {
	Personalization Personalization `json:"personalization"`
}

type Personalization struct {
	Consented bool `json:"consented"`
}

// Notes is always sent as an empty object.
type Notes struct{}

type NotificationSettings struct {
	Flags int64 `json:"flags"`
}

// UserElement is the partial user embedded in presences, channels and relationships.
type UserElement struct {
	GlobalName    *string `json:"global_name,omitempty"`
	DisplayName   *string `json:"display_name,omitempty"`
	Bot           *bool   `json:"bot,omitempty"`
	Avatar        *string `json:"avatar,omitempty"`
	System        *bool   `json:"system,omitempty"`
	Username      string  `json:"username"`
	ID            string  `json:"id"`
	Discriminator string  `json:"discriminator"`
}

// AccountUser is the full profile of the authenticated account. Ready carries
// a discord.User instead; this is a standalone sub-schema for callers decoding
// the profile on its own.
type AccountUser struct {
	Verified       bool   `json:"verified"`
	Username       string `json:"username"`
	PurchasedFlags int64  `json:"purchased_flags"`
	Pronouns       string `json:"pronouns"`
	PremiumType    int64  `json:"premium_type"`
	Premium        bool   `json:"premium"`
	Mobile         bool   `json:"mobile"`
	MFAEnabled     bool   `json:"mfa_enabled"`
	ID             string `json:"id"`
	GlobalName     string `json:"global_name"`
	Flags          int64  `json:"flags"`
	Email          string `json:"email"`
	Discriminator  string `json:"discriminator"`
	Desktop        bool   `json:"desktop"`
	Bio            string `json:"bio"`
}

// Presence is a friend's status with the full user element attached.
type Presence struct {
	User         UserElement          `json:"user"`
	Status       discord.Status       `json:"status"`
	ClientStatus discord.ClientStatus `json:"client_status"`
	Activities   discord.ActivityList `json:"activities"`
}

type PrivateChannel struct {
	PrivateChannelType int64                     `json:"type"`
	Recipients         discord.List[UserElement] `json:"recipients"`
	RecipientFlags     int64                     `json:"recipient_flags"`
	LastMessageID      string                    `json:"last_message_id"`
	ID                 string                    `json:"id"`
	Flags              int64                     `json:"flags"`
}

// ReadState is the read cursor of one channel.
type ReadState struct {
	MentionCount     int64         `json:"mention_count"`
	LastPinTimestamp string        `json:"last_pin_timestamp"`
	LastMessageID    LastMessageID `json:"last_message_id"`
	ID               string        `json:"id"`
	Flags            int64         `json:"flags"`
	LastViewed       *int64        `json:"last_viewed,omitempty"`
}

type Relationship struct {
	UserIgnored      bool        `json:"user_ignored"`
	User             UserElement `json:"user"`
	RelationshipType int64       `json:"type"`
	Since            *string     `json:"since,omitempty"`
	IsSpamRequest    bool        `json:"is_spam_request"`
	ID               string      `json:"id"`
}

// Session is another client logged in as the same user. Status is kept as
// the raw string.
type Session struct {
	Status     string     `json:"status"`
	SessionID  string     `json:"session_id"`
	ClientInfo ClientInfo `json:"client_info"`
}

type ClientInfo struct {
	Version int64  `json:"version"`
	OS      string `json:"os"`
	Client  string `json:"client"`
}

type UserGuildSetting struct {
	Version              int64                         `json:"version"`
	SuppressRoles        bool                          `json:"suppress_roles"`
	SuppressEveryone     bool                          `json:"suppress_everyone"`
	NotifyHighlights     int64                         `json:"notify_highlights"`
	Muted                bool                          `json:"muted"`
	MuteScheduledEvents  bool                          `json:"mute_scheduled_events"`
	MobilePush           bool                          `json:"mobile_push"`
	MessageNotifications int64                         `json:"message_notifications"`
	HideMutedChannels    bool                          `json:"hide_muted_channels"`
	GuildID              string                        `json:"guild_id"`
	Flags                int64                         `json:"flags"`
	ChannelOverrides     discord.List[ChannelOverride] `json:"channel_overrides"`
}

type ChannelOverride struct {
	Muted                bool   `json:"muted"`
	MessageNotifications int64  `json:"message_notifications"`
	Flags                int64  `json:"flags"`
	Collapsed            bool   `json:"collapsed"`
	ChannelID            string `json:"channel_id"`
}

type UserSettings struct {
	DetectPlatformAccounts                bool              `json:"detect_platform_accounts"`
	AnimateStickers                       int64             `json:"animate_stickers"`
	InlineAttachmentMedia                 bool              `json:"inline_attachment_media"`
	Status                                string            `json:"status"`
	MessageDisplayCompact                 bool              `json:"message_display_compact"`
	AllowActivityPartyPrivacyVoiceChannel bool              `json:"allow_activity_party_privacy_voice_channel"`
	ViewNSFWGuilds                        bool              `json:"view_nsfw_guilds"`
	TimezoneOffset                        int64             `json:"timezone_offset"`
	EnableTTSCommand                      bool              `json:"enable_tts_command"`
	DisableGamesTab                       bool              `json:"disable_games_tab"`
	StreamNotificationsEnabled            bool              `json:"stream_notifications_enabled"`
	AnimateEmoji                          bool              `json:"animate_emoji"`
	FriendSourceFlags                     FriendSourceFlags `json:"friend_source_flags"`
	AllowActivityPartyPrivacyFriends      bool              `json:"allow_activity_party_privacy_friends"`
	ConvertEmoticons                      bool              `json:"convert_emoticons"`
	AFKTimeout                            int64             `json:"afk_timeout"`
	Passwordless                          bool              `json:"passwordless"`
	ContactSyncEnabled                    bool              `json:"contact_sync_enabled"`
	GIFAutoPlay                           bool              `json:"gif_auto_play"`
	NativePhoneIntegrationEnabled         bool              `json:"native_phone_integration_enabled"`
	AllowAccessibilityDetection           bool              `json:"allow_accessibility_detection"`
	FriendDiscoveryFlags                  int64             `json:"friend_discovery_flags"`
	ShowCurrentGame                       bool              `json:"show_current_game"`
	DeveloperMode                         bool              `json:"developer_mode"`
	ViewNSFWCommands                      bool              `json:"view_nsfw_commands"`
	RenderReactions                       bool              `json:"render_reactions"`
	Locale                                string            `json:"locale"`
	RenderEmbeds                          bool              `json:"render_embeds"`
	InlineEmbedMedia                      bool              `json:"inline_embed_media"`
	DefaultGuildsRestricted               bool              `json:"default_guilds_restricted"`
	ExplicitContentFilter                 int64             `json:"explicit_content_filter"`
	Theme                                 string            `json:"theme"`
}

type FriendSourceFlags struct {
	All bool `json:"all"`
}
