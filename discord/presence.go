package discord

import (
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
	"github.com/WelcomerTeam/Sandwich-Ready/schema"
)

// Status represents a presence's status.
type Status string

// Presence statuses.
const (
	StatusOnline    Status = "online"
	StatusDND       Status = "dnd"
	StatusIdle      Status = "idle"
	StatusInvisible Status = "invisible"
	StatusOffline   Status = "offline"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOnline, StatusDND, StatusIdle, StatusInvisible, StatusOffline:
		return true
	}

	return false
}

func (s *Status) UnmarshalDocument(node any) error {
	str, err := schema.String(node)
	if err != nil || !Status(str).Valid() {
		return schema.NoVariant("Status", node)
	}

	*s = Status(str)

	return nil
}

func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &schema.EncodingError{Err: fmt.Errorf("unknown status %q", string(s))}
	}

	return sandwichjson.Marshal(string(s))
}

// ActivityType represents an activity's type.
type ActivityType uint8

// Activity types.
const (
	ActivityTypeGame ActivityType = iota
	ActivityTypeStreaming
	ActivityTypeListening
	ActivityTypeWatching
	ActivityTypeCustom
	ActivityTypeCompeting
)

// ActivityFlag represents an activity's flags.
type ActivityFlag uint64

// Activity flags.
const (
	ActivityFlagInstance ActivityFlag = 1 << iota
	ActivityFlagJoin
	ActivityFlagSpectate
	ActivityFlagJoinRequest
	ActivityFlagSync
	ActivityFlagPlay
)

// Activity represents an activity as sent as part of other packets.
type Activity struct {
	ApplicationID *ApplicationID `json:"application_id,omitempty"`
	Assets        *Assets        `json:"assets,omitempty"`
	CreatedAt     *uint64        `json:"created_at,omitempty"`
	Details       *string        `json:"details,omitempty"`
	Emoji         *ActivityEmoji `json:"emoji,omitempty"`
	Flags         *ActivityFlag  `json:"flags,omitempty"`
	Instance      *bool          `json:"instance,omitempty"`
	Party         *Party         `json:"party,omitempty"`
	Secrets       *Secrets       `json:"secrets,omitempty"`
	State         *string        `json:"state,omitempty"`
	Timestamps    *Timestamps    `json:"timestamps,omitempty"`
	URL           *string        `json:"url,omitempty"`
	Buttons       StringList     `json:"buttons" schema:"default"`
	Name          string         `json:"name"`
	Type          ActivityType   `json:"type"`
}

// ActivityEmoji represents the emoji of a custom status.
type ActivityEmoji struct {
	ID       *EmojiID `json:"id,omitempty"`
	Animated *bool    `json:"animated,omitempty"`
	Name     string   `json:"name"`
}

// Timestamps represents the starting and ending timestamp of an activity.
type Timestamps struct {
	Start *uint64 `json:"start,omitempty"`
	End   *uint64 `json:"end,omitempty"`
}

// Party represents an activity's current party information.
type Party struct {
	ID   *string    `json:"id,omitempty"`
	Size *[2]uint64 `json:"size,omitempty"`
}

// Assets represents an activity's images and their hover texts.
type Assets struct {
	LargeImage *string `json:"large_image,omitempty"`
	LargeText  *string `json:"large_text,omitempty"`
	SmallImage *string `json:"small_image,omitempty"`
	SmallText  *string `json:"small_text,omitempty"`
}

// Secrets represents an activity's secrets for Rich Presence joining and spectating.
type Secrets struct {
	Join     *string `json:"join,omitempty"`
	Spectate *string `json:"spectate,omitempty"`
	Match    *string `json:"match,omitempty"`
}

// ClientStatus represent's the status of a client.
type ClientStatus struct {
	Desktop *Status `json:"desktop,omitempty"`
	Mobile  *Status `json:"mobile,omitempty"`
	Web     *Status `json:"web,omitempty"`
}

// PresenceUser is the user reference carried by a presence. Only the id is
// kept, whatever else the gateway sends alongside it.
type PresenceUser struct {
	ID UserID `json:"id"`
}

// Presence represents a user's status snapshot.
type Presence struct {
	GuildID      *GuildID     `json:"guild_id,omitempty"`
	Activities   ActivityList `json:"activities"`
	ClientStatus ClientStatus `json:"client_status"`
	Status       Status       `json:"status"`
	User         PresenceUser `json:"user"`
}

// presenceIntermediary is the relaxed shape a presence list entry is read
// through: activities and client status may be omitted.
type presenceIntermediary struct {
	GuildID      *GuildID     `json:"guild_id"`
	Activities   ActivityList `json:"activities" schema:"default"`
	ClientStatus ClientStatus `json:"client_status" schema:"default"`
	Status       Status       `json:"status"`
	User         PresenceUser `json:"user"`
}

// PresenceList decodes presences through presenceIntermediary.
type PresenceList List[Presence]

func (l *PresenceList) UnmarshalDocument(node any) error {
	var intermediaries []presenceIntermediary
	if err := schema.Decode(node, &intermediaries); err != nil {
		return err
	}

	presences := make(PresenceList, len(intermediaries))
	for i, p := range intermediaries {
		presences[i] = Presence(p)
	}

	*l = presences

	return nil
}

func (l PresenceList) MarshalJSON() ([]byte, error) {
	return List[Presence](l).MarshalJSON()
}

// ByUser returns the presence for the given user, if present.
func (l PresenceList) ByUser(userID UserID) (Presence, bool) {
	for _, p := range l {
		if p.User.ID == userID {
			return p, true
		}
	}

	return Presence{}, false
}
