package v2_test

import (
	"errors"
	"testing"

	"github.com/WelcomerTeam/Sandwich-Ready/discord"
	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
	"github.com/WelcomerTeam/Sandwich-Ready/schema"
	v2 "github.com/WelcomerTeam/Sandwich-Ready/v2"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDocument = `{
	"v": 10,
	"user": {"verified": true, "username": "test", "id": "123", "global_name": "Test User", "discriminator": "1234"},
	"session_id": "123abc",
	"resume_gateway_url": "wss://gateway.example",
	"analytics_token": "abc123",
	"auth_session_id_hash": "xyz789",
	"session_type": "normal",
	"guilds": [],
	"application": {"id": "123", "flags": 0}
}`

const fullDocument = `{
	"v": 10,
	"user": {"username": "test", "id": "123", "discriminator": "0", "mfa_enabled": true, "flags": 64, "premium_type": 2},
	"session_id": "123abc",
	"resume_gateway_url": "wss://gateway.example",
	"analytics_token": "abc123",
	"auth_session_id_hash": "xyz789",
	"session_type": "normal",
	"shard": [0, 1],
	"country_code": "GB",
	"guilds": [
		{"id": "41771983423143937", "unavailable": true},
		{"id": "81384788765712384", "name": "Discord API", "member_count": 41000, "features": ["COMMUNITY"], "joined_at": "2016-05-01T12:00:00.000000+00:00"}
	],
	"application": {"id": "123", "flags": 262144},
	"geo_ordered_rtc_regions": ["rotterdam"],
	"read_state": [
		{"id": "381870553235193857", "last_message_id": "1123456789012345678", "mention_count": 3},
		{"id": "381870553235193858", "last_message_id": 1123456789012345679, "last_pin_timestamp": "2021-06-01T12:30:00+00:00", "last_viewed": 3210, "flags": 1},
		{"id": "381870553235193859", "last_message_id": null}
	],
	"sessions": [
		{"session_id": "123abc", "status": "online", "client_info": {"version": 0, "os": "linux", "client": "web"}},
		{"session_id": "456def", "status": "idle", "client_info": {"os": "android", "client": "mobile"}}
	],
	"presences": [
		{"user": {"id": "80351110224678912", "username": "nelly"}, "status": "dnd", "activities": [{"name": "Sandwich", "type": 0}]}
	],
	"relationships": [
		{"id": "80351110224678912", "type": 1, "since": "2021-06-01T12:30:00+00:00"},
		{"id": "81384788765712384", "type": 2, "user": {"id": "81384788765712384", "username": "blocked", "discriminator": "0"}}
	],
	"private_channels": [
		{"id": "381870553235193857", "type": 1, "recipient_ids": ["80351110224678912"], "last_message_id": "1123456789012345678"}
	],
	"user_guild_settings": [
		{"guild_id": "41771983423143937", "muted": true, "message_notifications": 2, "channel_overrides": [{"channel_id": "381870553235193857", "muted": true}]},
		{"guild_id": null, "mobile_push": true}
	],
	"friend_suggestion_count": 2
}`

func document(t *testing.T, text string) map[string]any {
	t.Helper()

	node, err := sandwichjson.UnmarshalDocument([]byte(text))
	require.NoError(t, err)

	return node.(map[string]any)
}

func TestDecodeMinimalReady(t *testing.T) {
	t.Parallel()

	var ready v2.Ready

	require.NoError(t, schema.Decode(document(t, minimalDocument), &ready))

	assert.Equal(t, uint8(10), ready.Version)
	assert.Equal(t, "123abc", ready.SessionID)
	assert.Equal(t, v2.SessionTypeNormal, ready.SessionType)
	assert.Equal(t, discord.UserID("123"), ready.User.ID)
	assert.Equal(t, "Test User", ready.User.DisplayName())
	require.NotNil(t, ready.User.Verified)
	assert.True(t, *ready.User.Verified)
	assert.Equal(t, discord.ApplicationID("123"), ready.Application.ID)

	assert.NotNil(t, ready.Guilds)
	assert.Empty(t, ready.Guilds)
	assert.NotNil(t, ready.ReadState)
	assert.Empty(t, ready.ReadState)
	assert.NotNil(t, ready.Sessions)
	assert.Empty(t, ready.Sessions)
	assert.NotNil(t, ready.GeoOrderedRTCRegions)
	assert.Empty(t, ready.GeoOrderedRTCRegions)
	assert.NotNil(t, ready.Presences)
	assert.Empty(t, ready.Relationships)
	assert.Empty(t, ready.PrivateChannels)
	assert.Empty(t, ready.UserGuildSettings)
	assert.Zero(t, ready.FriendSuggestionCount)
	assert.Nil(t, ready.Shard)
	assert.Nil(t, ready.CountryCode)
}

func TestDecodeUnexpectedSessionType(t *testing.T) {
	t.Parallel()

	node := document(t, minimalDocument)
	node["session_type"] = "unexpected_value"

	var ready v2.Ready

	err := schema.Decode(node, &ready)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrNoMatchingVariant))

	var variant *schema.NoMatchingVariantError
	require.True(t, errors.As(err, &variant))
	assert.Equal(t, "session_type", variant.Field)
	assert.Equal(t, "SessionType", variant.Union)
	assert.Equal(t, v2.Ready{}, ready)
}

func TestDecodeMissingRequiredField(t *testing.T) {
	t.Parallel()

	for key := range document(t, minimalDocument) {
		key := key

		t.Run(key, func(t *testing.T) {
			t.Parallel()

			node := document(t, minimalDocument)
			delete(node, key)

			var ready v2.Ready

			err := schema.Decode(node, &ready)

			var missing *schema.MissingFieldError
			require.True(t, errors.As(err, &missing), "%v", err)
			assert.Equal(t, key, missing.Field)
		})
	}
}

func TestDecodeDefaultedFields(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"geo_ordered_rtc_regions", "read_state", "sessions"} {
		key := key

		t.Run(key, func(t *testing.T) {
			t.Parallel()

			node := document(t, fullDocument)
			delete(node, key)

			var ready v2.Ready

			require.NoError(t, schema.Decode(node, &ready))

			switch key {
			case "geo_ordered_rtc_regions":
				assert.Equal(t, discord.StringList{}, ready.GeoOrderedRTCRegions)
			case "read_state":
				assert.Equal(t, discord.List[v2.ReadState]{}, ready.ReadState)
			case "sessions":
				assert.Equal(t, discord.List[v2.Session]{}, ready.Sessions)
			}
		})
	}
}

func TestDecodeFullReady(t *testing.T) {
	t.Parallel()

	var ready v2.Ready

	require.NoError(t, schema.Decode(document(t, fullDocument), &ready))

	require.NotNil(t, ready.Shard)
	assert.Equal(t, discord.ShardID{Number: 0, Total: 1}, *ready.Shard)
	require.NotNil(t, ready.CountryCode)
	assert.Equal(t, "GB", *ready.CountryCode)
	assert.True(t, ready.User.MFAEnabled)
	assert.True(t, ready.Application.HasFlag(discord.ApplicationFlagsGatewayMessageContent))

	require.Len(t, ready.Guilds, 2)
	assert.True(t, ready.Guilds[0].Unavailable)
	require.NotNil(t, ready.Guilds[1].Name)
	assert.Equal(t, "Discord API", *ready.Guilds[1].Name)

	require.Len(t, ready.ReadState, 3)
	assert.Equal(t, discord.MessageID("1123456789012345678"), *ready.ReadState[0].LastMessageID)
	assert.Equal(t, discord.MessageID("1123456789012345679"), *ready.ReadState[1].LastMessageID)
	assert.Nil(t, ready.ReadState[2].LastMessageID)
	assert.Equal(t, uint64(3), ready.UnreadMentions())

	assert.Equal(t, discord.StatusIdle, ready.Sessions[1].Status)
	assert.Zero(t, ready.Sessions[1].ClientInfo.Version)

	require.Len(t, ready.Presences, 1)
	assert.Equal(t, discord.StatusDND, ready.Presences[0].Status)
	assert.Equal(t, discord.UserID("80351110224678912"), ready.Presences[0].User.ID)

	friend, ok := ready.Relationship("80351110224678912")
	require.True(t, ok)
	assert.Equal(t, v2.RelationshipTypeFriend, friend.RelationshipType)
	assert.Nil(t, friend.User)

	settings, ok := ready.GuildSettings("41771983423143937")
	require.True(t, ok)
	assert.True(t, settings.Muted)
	require.Len(t, settings.ChannelOverrides, 1)
	assert.Nil(t, ready.UserGuildSettings[1].GuildID)

	assert.Equal(t, discord.List[discord.UserID]{"80351110224678912"}, ready.PrivateChannels[0].RecipientIDs)
	assert.Equal(t, uint64(2), ready.FriendSuggestionCount)
}

func TestReadStateFor(t *testing.T) {
	t.Parallel()

	var ready v2.Ready

	require.NoError(t, schema.Decode(document(t, fullDocument), &ready))

	state, ok := ready.ReadStateFor("381870553235193858")
	require.True(t, ok)
	assert.Equal(t, uint64(1), state.Flags)
	require.NotNil(t, state.LastViewed)
	assert.Equal(t, uint64(3210), *state.LastViewed)

	_, ok = ready.ReadStateFor("1")
	assert.False(t, ok)
}

func TestReadyRoundTrip(t *testing.T) {
	t.Parallel()

	for name, text := range map[string]string{"minimal": minimalDocument, "full": fullDocument} {
		text := text

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var ready v2.Ready

			require.NoError(t, schema.Decode(document(t, text), &ready))

			data, err := sandwichjson.Marshal(ready)
			require.NoError(t, err)

			var decoded v2.Ready

			require.NoError(t, schema.Unmarshal(data, &decoded))

			if diff := pretty.Compare(ready, decoded); diff != "" {
				t.Errorf("round trip changed the payload (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRelationshipType(t *testing.T) {
	t.Parallel()

	var relationship v2.Relationship

	for _, node := range []string{`0`, `7`, `"1"`, `257`} {
		err := schema.Unmarshal([]byte(`{"id": "1", "type": `+node+`}`), &relationship)

		var variant *schema.NoMatchingVariantError
		require.True(t, errors.As(err, &variant), "type %s", node)
		assert.Equal(t, "type", variant.Field)
	}

	require.NoError(t, schema.Unmarshal([]byte(`{"id": "1", "type": 6}`), &relationship))
	assert.Equal(t, v2.RelationshipTypeSuggestion, relationship.RelationshipType)
	assert.Equal(t, "suggestion", relationship.RelationshipType.String())

	_, err := v2.RelationshipType(0).MarshalJSON()
	assert.True(t, errors.Is(err, schema.ErrEncoding))

	_, err = v2.SessionType("resumed").MarshalJSON()
	assert.True(t, errors.Is(err, schema.ErrEncoding))
}

func TestSessionStatusIsEnum(t *testing.T) {
	t.Parallel()

	var session v2.Session

	err := schema.Unmarshal([]byte(`{"session_id": "a", "status": "away", "client_info": {"os": "linux", "client": "web"}}`), &session)

	var variant *schema.NoMatchingVariantError
	require.True(t, errors.As(err, &variant))
	assert.Equal(t, "status", variant.Field)
}
