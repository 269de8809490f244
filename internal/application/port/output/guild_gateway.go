package output

import "context"

// TokenRequirement gates a guild role on holding a token
type TokenRequirement struct {
	Address string   // token contract address
	Chain   string   // chain label understood by the guild service
	Type    string   // requirement type, e.g. ERC1155
	IDs     []string // decimal token IDs
}

// GuildRoleSpec describes one role to create inside a new guild
type GuildRoleSpec struct {
	Name        string
	Description string
	Requirement TokenRequirement
}

// GuildSpec describes a guild to create
type GuildSpec struct {
	Name             string
	URLName          string
	Description      string
	ShowMembers      bool
	HideFromExplorer bool
	Roles            []GuildRoleSpec
}

// CreatedRole is a role as reported back by the guild service
type CreatedRole struct {
	ID   int64
	Name string
}

// CreatedGuild is the guild service's view of a newly created guild
type CreatedGuild struct {
	ID          int64
	Name        string
	URLName     string
	Description string
	ImageURL    string
	Roles       []CreatedRole
}

// PlatformBinding binds a guild role reward to an external platform server
type PlatformBinding struct {
	PlatformName string // e.g. DISCORD
	ServerID     string // platform guild/server ID
}

// GuildGateway is the guild-management service boundary. All calls are
// authenticated by signing the request payload with the caller's wallet.
type GuildGateway interface {
	CreateGuild(ctx context.Context, spec GuildSpec, signer SignerGateway) (*CreatedGuild, error)

	CreateRoleReward(ctx context.Context, guildURLName string, guildRoleID int64,
		binding PlatformBinding, platformRoleID string, signer SignerGateway) error
}
