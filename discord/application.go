package discord

// application.go represents the application attached to a gateway session.

// ApplicationFlags represents the flags of an application.
type ApplicationFlags uint64

const (
	ApplicationFlagsApplicationAutoModerationRuleCreateBadge ApplicationFlags = 1 << (6 + iota)
	_
	_
	_
	_
	_
	ApplicationFlagsGatewayPresence
	ApplicationFlagsGatewayPresenceLimited
	ApplicationFlagsGatewayGuildMembers
	ApplicationFlagsGatewayGuildMembersLimited
	ApplicationFlagsVerificationPendingGuildLimit
	ApplicationFlagsEmbedded
	ApplicationFlagsGatewayMessageContent
	ApplicationFlagsGatewayMessageContentLimited
	_
	_
	_
	ApplicationFlagsApplicationCommandBadge
)

// PartialApplication is the application object sent with Ready.
type PartialApplication struct {
	ID    ApplicationID    `json:"id"`
	Flags ApplicationFlags `json:"flags"`
}

func (a PartialApplication) HasFlag(flag ApplicationFlags) bool {
	return a.Flags&flag == flag
}
