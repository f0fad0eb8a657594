package discord

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
	"github.com/WelcomerTeam/Sandwich-Ready/schema"
)

const (
	DiscordCreation = 1420070400000
)

var null = []byte("null")

// Snowflake is an opaque identifier. It is kept as the exact digits it was
// received with so it always encodes back byte for byte.
type Snowflake string

func (s Snowflake) IsNil() bool {
	return s == "" || s == "0"
}

func (s Snowflake) String() string {
	return string(s)
}

func (s *Snowflake) UnmarshalDocument(node any) error {
	return toSnowflake(node, s)
}

func toSnowflake(node any, s *Snowflake) error {
	if str, ok := node.(string); ok {
		if !isDigits(str) {
			return &schema.TypeMismatchError{
				Expected: "snowflake",
				Found:    schema.KindString,
				Err:      fmt.Errorf("%q is not a numeric identifier", str),
			}
		}

		*s = Snowflake(str)

		return nil
	}

	if digits, ok := schema.IntegerText(node); ok {
		*s = Snowflake(digits)

		return nil
	}

	return schema.Mismatch("snowflake", node)
}

func (s *Snowflake) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == string(null) {
		*s = ""

		return nil
	}

	var raw any
	if b[0] == '"' {
		var str string
		if err := sandwichjson.Unmarshal(b, &str); err != nil {
			return fmt.Errorf("failed to unmarshal json: %w", err)
		}

		raw = str
	} else {
		raw = json.Number(b)
	}

	return toSnowflake(raw, s)
}

func (s Snowflake) MarshalJSON() ([]byte, error) {
	if !isDigits(string(s)) {
		return nil, &schema.EncodingError{Err: fmt.Errorf("snowflake %q is not a numeric identifier", string(s))}
	}

	return quoteDigits(string(s)), nil
}

// Time returns the creation time of the Snowflake.
func (s Snowflake) Time() (time.Time, error) {
	i, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse snowflake: %w", err)
	}

	msec := (i >> 22) + DiscordCreation

	return time.UnixMilli(msec), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func quoteDigits(s string) []byte {
	buf := make([]byte, 0, len(s)+2)

	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')

	return buf
}

// Timestamp is an ISO-8601 timestamp kept verbatim.
type Timestamp string

func (t *Timestamp) UnmarshalDocument(node any) error {
	str, err := schema.String(node)
	if err != nil {
		return schema.Mismatch("timestamp", node)
	}

	if _, err := time.Parse(time.RFC3339, str); err != nil {
		return &schema.TypeMismatchError{Expected: "timestamp", Found: schema.KindString, Err: err}
	}

	*t = Timestamp(str)

	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t == "" {
		return nil, &schema.EncodingError{Err: ErrEmptyTimestamp}
	}

	return sandwichjson.Marshal(string(t))
}

// Time parses the timestamp.
func (t Timestamp) Time() (time.Time, error) {
	if t == "" {
		return time.Time{}, ErrEmptyTimestamp
	}

	return time.Parse(time.RFC3339, string(t))
}

// List encodes as [] when empty instead of null.
type List[T any] []T

func (l List[T]) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}

	return sandwichjson.Marshal([]T(l))
}

type StringList = List[string]
type Int64List = List[int64]
type SnowflakeList = List[Snowflake]
type RoleIDList = List[RoleID]
type UserList = List[User]
type ActivityList = List[Activity]
type GuildList = List[Guild]
type RoleList = List[Role]
type EmojiList = List[Emoji]
