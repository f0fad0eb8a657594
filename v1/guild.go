package v1

import (
	"github.com/WelcomerTeam/Sandwich-Ready/discord"
)

// guild.go holds the guild content schemas of user account sessions. Ready
// decodes its guilds as discord.Guild and never reaches these types: they are
// standalone sub-schemas for callers decoding the channel, member, presence
// and role objects of a guild on their own.

// Channel represents a guild channel.
type Channel struct {
	Version              int64                             `json:"version"`
	ChannelType          int64                             `json:"type"`
	Topic                *string                           `json:"topic,omitempty"`
	RateLimitPerUser     *int64                            `json:"rate_limit_per_user,omitempty"`
	Position             int64                             `json:"position"`
	PermissionOverwrites discord.List[PermissionOverwrite] `json:"permission_overwrites"`
	ParentID             *string                           `json:"parent_id,omitempty"`
	NSFW                 *bool                             `json:"nsfw,omitempty"`
	Name                 string                            `json:"name"`
	LastMessageID        *string                           `json:"last_message_id,omitempty"`
	ID                   string                            `json:"id"`
	IconEmoji            *IconEmoji                        `json:"icon_emoji,omitempty"`
	Flags                int64                             `json:"flags"`
	UserLimit            *int64                            `json:"user_limit,omitempty"`
	Bitrate              *int64                            `json:"bitrate,omitempty"`
	LastPinTimestamp     *string                           `json:"last_pin_timestamp,omitempty"`
}

type IconEmoji struct {
	Name string `json:"name"`
}

// PermissionOverwrite represents a channel permission overwrite.
type PermissionOverwrite struct {
	PermissionOverwriteType int64  `json:"type"`
	ID                      string `json:"id"`
	Deny                    string `json:"deny"`
	Allow                   string `json:"allow"`
}

type Emoji struct {
	Version       int64  `json:"version"`
	RequireColons bool   `json:"require_colons"`
	Name          string `json:"name"`
	Managed       bool   `json:"managed"`
	ID            string `json:"id"`
	Available     bool   `json:"available"`
	Animated      bool   `json:"animated"`
}

// Member represents a guild member.
type Member struct {
	User     UserElement        `json:"user"`
	Roles    discord.StringList `json:"roles"`
	Pending  bool               `json:"pending"`
	Nick     *string            `json:"nick,omitempty"`
	Mute     bool               `json:"mute"`
	JoinedAt string             `json:"joined_at"`
	Flags    int64              `json:"flags"`
	Deaf     bool               `json:"deaf"`
}

// GuildPresence is a member presence. Unlike Presence, the user is reduced
// to its id and the status is kept as a plain string.
type GuildPresence struct {
	User         PartyClass           `json:"user"`
	Status       string               `json:"status"`
	ClientStatus discord.ClientStatus `json:"client_status"`
	Activities   discord.ActivityList `json:"activities"`
}

type Assets struct {
	LargeText  string `json:"large_text"`
	LargeImage string `json:"large_image"`
}

type PartyClass struct {
	ID string `json:"id"`
}

type Timestamps struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Role represents a guild role.
type Role struct {
	Version     int64  `json:"version"`
	Tags        Tags   `json:"tags"`
	Position    int64  `json:"position"`
	Permissions string `json:"permissions"`
	Name        string `json:"name"`
	Mentionable bool   `json:"mentionable"`
	Managed     bool   `json:"managed"`
	ID          string `json:"id"`
	Hoist       bool   `json:"hoist"`
	Flags       int64  `json:"flags"`
	Color       int64  `json:"color"`
}

type Tags struct {
	BotID *string `json:"bot_id,omitempty"`
}
