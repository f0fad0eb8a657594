// Package ready decodes the gateway Ready event against one of two schemas.
//
// Decoding is a pure function of its input. It never logs or retries, and
// it returns either a complete Payload or an error from the schema error
// taxonomy (MissingFieldError, TypeMismatchError, NoMatchingVariantError,
// EncodingError) carrying the path of the offending field.
package ready

import (
	"errors"
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Ready/discord"
	"github.com/WelcomerTeam/Sandwich-Ready/sandwichjson"
	"github.com/WelcomerTeam/Sandwich-Ready/schema"
	v1 "github.com/WelcomerTeam/Sandwich-Ready/v1"
	v2 "github.com/WelcomerTeam/Sandwich-Ready/v2"
)

// Decode decodes an already parsed document, such as the d field of a
// gateway payload.
func Decode(version SchemaVersion, node any) (Payload, error) {
	switch version {
	case SchemaV1:
		var event v1.Ready
		if err := schema.Decode(node, &event); err != nil {
			return Payload{}, err
		}

		return Payload{Schema: version, V1: &event}, nil
	case SchemaV2:
		var event v2.Ready
		if err := schema.Decode(node, &event); err != nil {
			return Payload{}, err
		}

		return Payload{Schema: version, V2: &event}, nil
	default:
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownSchema, string(version))
	}
}

// DecodeBytes parses data as JSON and decodes it.
func DecodeBytes(version SchemaVersion, data []byte) (Payload, error) {
	if !version.Valid() {
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownSchema, string(version))
	}

	node, err := sandwichjson.UnmarshalDocument(data)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to parse document: %w", err)
	}

	return Decode(version, node)
}

// DecodeDispatch decodes a whole gateway message. The message must be a
// dispatch of the READY event; field paths in errors are rooted at d.
func DecodeDispatch(version SchemaVersion, data []byte) (Payload, error) {
	if !version.Valid() {
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownSchema, string(version))
	}

	node, err := sandwichjson.UnmarshalDocument(data)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to parse document: %w", err)
	}

	var envelope discord.GatewayPayload
	if err := schema.Decode(node, &envelope); err != nil {
		return Payload{}, err
	}

	if !envelope.IsDispatch(discord.DiscordEventReady) {
		eventType := ""
		if envelope.Type != nil {
			eventType = *envelope.Type
		}

		return Payload{}, fmt.Errorf("%w: op %d t %q", ErrNotReadyEvent, envelope.Op, eventType)
	}

	object, _ := schema.Object(node)
	if _, ok := object["d"]; !ok {
		return Payload{}, &MissingFieldError{Field: "d"}
	}

	if envelope.Data == nil {
		return Payload{}, &TypeMismatchError{Field: "d", Expected: schema.KindObject, Found: schema.KindNull}
	}

	payload, err := Decode(version, envelope.Data)
	if err != nil {
		return Payload{}, schema.Prefix(err, "d")
	}

	payload.Sequence = envelope.Sequence

	return payload, nil
}

// Encode serializes the payload back into the shape it was decoded from.
// Values that cannot be represented, such as a union with no variant set,
// fail with an EncodingError. Unlike decode errors, its Field is left empty:
// the encoder does not track where in the event the value sits.
func Encode(payload Payload) ([]byte, error) {
	event := payload.Event()
	if event == nil {
		return nil, &EncodingError{Err: ErrEmptyPayload}
	}

	data, err := sandwichjson.Marshal(event)
	if err != nil {
		var encodingErr *EncodingError
		if errors.As(err, &encodingErr) {
			return nil, encodingErr
		}

		return nil, &EncodingError{Err: err}
	}

	return data, nil
}
