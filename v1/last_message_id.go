package v1

import (
	"fmt"
	"strconv"

	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
	"github.com/WelcomerTeam/Sandwich-Ready/schema"
)

// LastMessageIDKind is the variant held by a LastMessageID.
type LastMessageIDKind uint8

// Variants are tried in declaration order: Integer, then String. A JSON
// number is always an Integer and a JSON string, even "123", is always a
// String.
const (
	LastMessageIDInteger LastMessageIDKind = iota + 1
	LastMessageIDString
)

func (k LastMessageIDKind) String() string {
	switch k {
	case LastMessageIDInteger:
		return "integer"
	case LastMessageIDString:
		return "string"
	default:
		return "unset"
	}
}

// LastMessageID is the read cursor of a channel. Older clients receive it as
// a number, newer ones as a string.
type LastMessageID struct {
	Kind         LastMessageIDKind
	IntegerValue int64
	StringValue  string
}

func (l *LastMessageID) UnmarshalDocument(node any) error {
	if i, err := schema.Int64(node); err == nil {
		*l = LastMessageID{Kind: LastMessageIDInteger, IntegerValue: i}

		return nil
	}

	if s, err := schema.String(node); err == nil {
		*l = LastMessageID{Kind: LastMessageIDString, StringValue: s}

		return nil
	}

	return schema.NoVariant("LastMessageID", node)
}

func (l LastMessageID) MarshalJSON() ([]byte, error) {
	switch l.Kind {
	case LastMessageIDInteger:
		return strconv.AppendInt(nil, l.IntegerValue, 10), nil
	case LastMessageIDString:
		return sandwichjson.Marshal(l.StringValue)
	default:
		return nil, &schema.EncodingError{Err: fmt.Errorf("last message id has no variant")}
	}
}

// Text returns the identifier as a string regardless of variant.
func (l LastMessageID) Text() string {
	if l.Kind == LastMessageIDInteger {
		return strconv.FormatInt(l.IntegerValue, 10)
	}

	return l.StringValue
}
