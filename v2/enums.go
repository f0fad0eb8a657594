package v2

import (
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
	"github.com/WelcomerTeam/Sandwich-Ready/schema"
)

// SessionType represents the kind of gateway session.
type SessionType string

const (
	SessionTypeNormal SessionType = "normal"
)

func (t SessionType) Valid() bool {
	return t == SessionTypeNormal
}

func (t *SessionType) UnmarshalDocument(node any) error {
	s, err := schema.String(node)
	if err != nil || !SessionType(s).Valid() {
		return schema.NoVariant("SessionType", node)
	}

	*t = SessionType(s)

	return nil
}

func (t SessionType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, &schema.EncodingError{Err: fmt.Errorf("unknown session type %q", string(t))}
	}

	return sandwichjson.Marshal(string(t))
}

// RelationshipType represents the kind of relationship with another user.
type RelationshipType uint8

const (
	RelationshipTypeFriend RelationshipType = iota + 1
	RelationshipTypeBlocked
	RelationshipTypePendingIncoming
	RelationshipTypePendingOutgoing
	RelationshipTypeImplicit
	RelationshipTypeSuggestion
)

func (t RelationshipType) Valid() bool {
	return t >= RelationshipTypeFriend && t <= RelationshipTypeSuggestion
}

func (t RelationshipType) String() string {
	switch t {
	case RelationshipTypeFriend:
		return "friend"
	case RelationshipTypeBlocked:
		return "blocked"
	case RelationshipTypePendingIncoming:
		return "pending_incoming"
	case RelationshipTypePendingOutgoing:
		return "pending_outgoing"
	case RelationshipTypeImplicit:
		return "implicit"
	case RelationshipTypeSuggestion:
		return "suggestion"
	default:
		return fmt.Sprintf("RelationshipType(%d)", uint8(t))
	}
}

func (t *RelationshipType) UnmarshalDocument(node any) error {
	i, err := schema.Uint64(node)
	if err != nil || i > uint64(RelationshipTypeSuggestion) || !RelationshipType(i).Valid() {
		return schema.NoVariant("RelationshipType", node)
	}

	*t = RelationshipType(i)

	return nil
}

func (t RelationshipType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, &schema.EncodingError{Err: fmt.Errorf("unknown relationship type %d", uint8(t))}
	}

	return sandwichjson.Marshal(uint8(t))
}
