package discord

type GuildID Snowflake

func (s *GuildID) UnmarshalDocument(node any) error {
	return toSnowflake(node, (*Snowflake)(s))
}

func (s *GuildID) UnmarshalJSON(b []byte) error {
	return (*Snowflake)(s).UnmarshalJSON(b)
}

func (s GuildID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s GuildID) String() string {
	return string(s)
}

type ChannelID Snowflake

func (s *ChannelID) UnmarshalDocument(node any) error {
	return toSnowflake(node, (*Snowflake)(s))
}

func (s *ChannelID) UnmarshalJSON(b []byte) error {
	return (*Snowflake)(s).UnmarshalJSON(b)
}

func (s ChannelID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ChannelID) String() string {
	return string(s)
}

type MessageID Snowflake

func (s *MessageID) UnmarshalDocument(node any) error {
	return toSnowflake(node, (*Snowflake)(s))
}

func (s *MessageID) UnmarshalJSON(b []byte) error {
	return (*Snowflake)(s).UnmarshalJSON(b)
}

func (s MessageID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s MessageID) String() string {
	return string(s)
}

type UserID Snowflake

func (s *UserID) UnmarshalDocument(node any) error {
	return toSnowflake(node, (*Snowflake)(s))
}

func (s *UserID) UnmarshalJSON(b []byte) error {
	return (*Snowflake)(s).UnmarshalJSON(b)
}

func (s UserID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s UserID) String() string {
	return string(s)
}

type RoleID Snowflake

func (s *RoleID) UnmarshalDocument(node any) error {
	return toSnowflake(node, (*Snowflake)(s))
}

func (s *RoleID) UnmarshalJSON(b []byte) error {
	return (*Snowflake)(s).UnmarshalJSON(b)
}

func (s RoleID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s RoleID) String() string {
	return string(s)
}

type EmojiID Snowflake

func (s *EmojiID) UnmarshalDocument(node any) error {
	return toSnowflake(node, (*Snowflake)(s))
}

func (s *EmojiID) UnmarshalJSON(b []byte) error {
	return (*Snowflake)(s).UnmarshalJSON(b)
}

func (s EmojiID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s EmojiID) String() string {
	return string(s)
}

type ApplicationID Snowflake

func (s *ApplicationID) UnmarshalDocument(node any) error {
	return toSnowflake(node, (*Snowflake)(s))
}

func (s *ApplicationID) UnmarshalJSON(b []byte) error {
	return (*Snowflake)(s).UnmarshalJSON(b)
}

func (s ApplicationID) MarshalJSON() ([]byte, error) {
	return Snowflake(s).MarshalJSON()
}

func (s ApplicationID) String() string {
	return string(s)
}

// ID functions
func (s GuildID) IsNil() bool {
	return Snowflake(s).IsNil()
}

func (s ChannelID) IsNil() bool {
	return Snowflake(s).IsNil()
}

func (s MessageID) IsNil() bool {
	return Snowflake(s).IsNil()
}

func (s UserID) IsNil() bool {
	return Snowflake(s).IsNil()
}

func (s RoleID) IsNil() bool {
	return Snowflake(s).IsNil()
}

func (s EmojiID) IsNil() bool {
	return Snowflake(s).IsNil()
}

func (s ApplicationID) IsNil() bool {
	return Snowflake(s).IsNil()
}
