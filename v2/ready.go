// Package v2 is the pruned Ready schema used in production. Only the session
// fields are required; every list the gateway may leave out decodes to an
// empty list and identifiers are typed snowflakes.
package v2

import (
	"github.com/WelcomerTeam/Sandwich-Ready/discord"
)

const SchemaName = "v2"

// Ready represents the first dispatch after a successful identify.
type Ready struct {
	Shard                 *discord.ShardID               `json:"shard,omitempty"`
	CountryCode           *string                        `json:"country_code,omitempty"`
	User                  discord.CurrentUser            `json:"user"`
	Application           discord.PartialApplication     `json:"application"`
	SessionID             string                         `json:"session_id"`
	ResumeGatewayURL      string                         `json:"resume_gateway_url"`
	AnalyticsToken        string                         `json:"analytics_token"`
	AuthSessionIDHash     string                         `json:"auth_session_id_hash"`
	SessionType           SessionType                    `json:"session_type"`
	Guilds                discord.GuildList              `json:"guilds"`
	GeoOrderedRTCRegions  discord.StringList             `json:"geo_ordered_rtc_regions" schema:"default"`
	ReadState             discord.List[ReadState]        `json:"read_state" schema:"default"`
	Sessions              discord.List[Session]          `json:"sessions" schema:"default"`
	Presences             discord.PresenceList           `json:"presences" schema:"default"`
	Relationships         discord.List[Relationship]     `json:"relationships" schema:"default"`
	PrivateChannels       discord.List[PrivateChannel]   `json:"private_channels" schema:"default"`
	UserGuildSettings     discord.List[UserGuildSetting] `json:"user_guild_settings" schema:"default"`
	FriendSuggestionCount uint64                         `json:"friend_suggestion_count" schema:"default"`
	Version               uint8                          `json:"v"`
}

// ReadStateFor returns the read cursor of a channel, if the user has one.
func (r *Ready) ReadStateFor(channelID discord.ChannelID) (ReadState, bool) {
	for _, rs := range r.ReadState {
		if rs.ID == channelID {
			return rs, true
		}
	}

	return ReadState{}, false
}

// UnreadMentions sums the mention counters of every read state.
func (r *Ready) UnreadMentions() uint64 {
	var total uint64

	for _, rs := range r.ReadState {
		total += rs.MentionCount
	}

	return total
}

// Relationship returns the relationship with the given user, if there is one.
func (r *Ready) Relationship(userID discord.UserID) (Relationship, bool) {
	for _, rel := range r.Relationships {
		if rel.ID == userID {
			return rel, true
		}
	}

	return Relationship{}, false
}

// GuildSettings returns the notification settings of a guild, if the user
// changed any.
func (r *Ready) GuildSettings(guildID discord.GuildID) (UserGuildSetting, bool) {
	for _, s := range r.UserGuildSettings {
		if s.GuildID != nil && *s.GuildID == guildID {
			return s, true
		}
	}

	return UserGuildSetting{}, false
}

// ReadState is the read cursor of one channel.
type ReadState struct {
	LastMessageID    *discord.MessageID `json:"last_message_id,omitempty"`
	LastPinTimestamp *discord.Timestamp `json:"last_pin_timestamp,omitempty"`
	LastViewed       *uint64            `json:"last_viewed,omitempty"`
	ID               discord.ChannelID  `json:"id"`
	MentionCount     uint64             `json:"mention_count" schema:"default"`
	Flags            uint64             `json:"flags" schema:"default"`
}

// Session is another client logged in as the same user.
type Session struct {
	SessionID  string         `json:"session_id"`
	Status     discord.Status `json:"status"`
	ClientInfo ClientInfo     `json:"client_info"`
}

type ClientInfo struct {
	Version uint64 `json:"version" schema:"default"`
	OS      string `json:"os"`
	Client  string `json:"client"`
}

// Relationship is an edge between the current user and another user.
type Relationship struct {
	Nickname         *string            `json:"nickname,omitempty"`
	Since            *discord.Timestamp `json:"since,omitempty"`
	User             *discord.User      `json:"user,omitempty"`
	ID               discord.UserID     `json:"id"`
	RelationshipType RelationshipType   `json:"type"`
	IsSpamRequest    bool               `json:"is_spam_request" schema:"default"`
	UserIgnored      bool               `json:"user_ignored" schema:"default"`
}

// PrivateChannel is a direct message or group direct message channel.
type PrivateChannel struct {
	LastMessageID      *discord.MessageID           `json:"last_message_id,omitempty"`
	Name               *string                      `json:"name,omitempty"`
	Icon               *string                      `json:"icon,omitempty"`
	OwnerID            *discord.UserID              `json:"owner_id,omitempty"`
	ID                 discord.ChannelID            `json:"id"`
	PrivateChannelType uint8                        `json:"type"`
	RecipientIDs       discord.List[discord.UserID] `json:"recipient_ids" schema:"default"`
	Recipients         discord.UserList             `json:"recipients" schema:"default"`
	Flags              uint64                       `json:"flags" schema:"default"`
}

// UserGuildSetting holds the notification settings of one guild. A nil
// GuildID is the settings of direct messages.
type UserGuildSetting struct {
	GuildID              *discord.GuildID              `json:"guild_id,omitempty"`
	ChannelOverrides     discord.List[ChannelOverride] `json:"channel_overrides" schema:"default"`
	MessageNotifications uint8                         `json:"message_notifications" schema:"default"`
	Flags                uint64                        `json:"flags" schema:"default"`
	Version              uint64                        `json:"version" schema:"default"`
	Muted                bool                          `json:"muted" schema:"default"`
	MobilePush           bool                          `json:"mobile_push" schema:"default"`
	SuppressEveryone     bool                          `json:"suppress_everyone" schema:"default"`
	SuppressRoles        bool                          `json:"suppress_roles" schema:"default"`
	HideMutedChannels    bool                          `json:"hide_muted_channels" schema:"default"`
}

// ChannelOverride overrides the guild notification settings for one channel.
type ChannelOverride struct {
	ChannelID            discord.ChannelID `json:"channel_id"`
	MessageNotifications uint8             `json:"message_notifications" schema:"default"`
	Flags                uint64            `json:"flags" schema:"default"`
	Muted                bool              `json:"muted" schema:"default"`
	Collapsed            bool              `json:"collapsed" schema:"default"`
}
