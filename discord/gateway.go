package discord

// gateway.go contains the envelope every gateway message arrives in.

// GatewayOp represents the operation codes of a gateway message.
type GatewayOp uint8

const (
	GatewayOpDispatch GatewayOp = iota
	GatewayOpHeartbeat
	GatewayOpIdentify
	GatewayOpStatusUpdate
	GatewayOpVoiceStateUpdate
	_
	GatewayOpResume
	GatewayOpReconnect
	GatewayOpRequestGuildMembers
	GatewayOpInvalidSession
	GatewayOpHello
	GatewayOpHeartbeatACK
)

// Dispatch event names.
const (
	DiscordEventReady   = "READY"
	DiscordEventResumed = "RESUMED"
)

// GatewayPayload represents the base payload received from discord gateway.
// Data is left as an untyped document so it can be decoded against whichever
// schema the caller selects.
type GatewayPayload struct {
	Data     any       `json:"d,omitempty"`
	Type     *string   `json:"t,omitempty"`
	Sequence *int64    `json:"s,omitempty"`
	Op       GatewayOp `json:"op"`
}

// IsDispatch reports whether the payload is a dispatch of the named event.
func (p GatewayPayload) IsDispatch(event string) bool {
	return p.Op == GatewayOpDispatch && p.Type != nil && *p.Type == event
}
