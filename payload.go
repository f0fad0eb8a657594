package ready

import (
	v1 "github.com/WelcomerTeam/Sandwich-Ready/v1"
	v2 "github.com/WelcomerTeam/Sandwich-Ready/v2"
)

// Payload is a decoded Ready event. Exactly one of V1 and V2 is set,
// matching Schema. Payloads are shared between readers and must not be
// modified after decoding.
type Payload struct {
	V1       *v1.Ready
	V2       *v2.Ready
	Sequence *int64
	Schema   SchemaVersion
}

func (p Payload) SessionID() string {
	switch {
	case p.V1 != nil:
		return p.V1.SessionID
	case p.V2 != nil:
		return p.V2.SessionID
	default:
		return ""
	}
}

func (p Payload) ResumeGatewayURL() string {
	switch {
	case p.V1 != nil:
		return p.V1.ResumeGatewayURL
	case p.V2 != nil:
		return p.V2.ResumeGatewayURL
	default:
		return ""
	}
}

// UserID returns the id of the account the session is authenticated as.
func (p Payload) UserID() string {
	switch {
	case p.V1 != nil:
		return p.V1.User.ID.String()
	case p.V2 != nil:
		return p.V2.User.ID.String()
	default:
		return ""
	}
}

// Version returns the gateway protocol version.
func (p Payload) Version() int64 {
	switch {
	case p.V1 != nil:
		return p.V1.Version
	case p.V2 != nil:
		return int64(p.V2.Version)
	default:
		return 0
	}
}

func (p Payload) GuildCount() int {
	switch {
	case p.V1 != nil:
		return len(p.V1.Guilds)
	case p.V2 != nil:
		return len(p.V2.Guilds)
	default:
		return 0
	}
}

// UnavailableGuildCount returns how many guilds were sent as stubs.
func (p Payload) UnavailableGuildCount() int {
	var count int

	switch {
	case p.V1 != nil:
		for _, guild := range p.V1.Guilds {
			if guild.Unavailable {
				count++
			}
		}
	case p.V2 != nil:
		for _, guild := range p.V2.Guilds {
			if guild.Unavailable {
				count++
			}
		}
	}

	return count
}

func (p Payload) ReadStateCount() int {
	switch {
	case p.V1 != nil:
		return len(p.V1.ReadState)
	case p.V2 != nil:
		return len(p.V2.ReadState)
	default:
		return 0
	}
}

// Event returns the decoded Ready of whichever schema is set.
func (p Payload) Event() any {
	switch {
	case p.V1 != nil:
		return p.V1
	case p.V2 != nil:
		return p.V2
	default:
		return nil
	}
}
