package record

// Step records are the normalized results of wizard step actions. Each
// variant is persisted under its own key (<kind>-<identity>) and, once
// written, is only replaced wholesale: the single exception is the top hat
// document cached on HatRecord, which the metadata-append step overwrites
// after a successful on-chain update.

// HatRecord is produced by the hat search step. Wearers holds the selected
// hat's wearer addresses; TopHatWearers gates ownership when the tree's top
// hat is the configured gating entity.
type HatRecord struct {
	DecimalID         string   `json:"decimalId"`
	PrettyID          string   `json:"ipId"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	ImageURL          string   `json:"imageUrl"`
	Wearers           []string `json:"wearers"`
	TopHatDecimalID   string   `json:"topHatDecimalId"`
	TopHatName        string   `json:"topHatName"`
	TopHatDescription string   `json:"topHatDescription"`
	TopHatDocument    string   `json:"topHatJsonDetails"`
}

// GuildRecord is produced by the guild creation step. GuildRoleID is the
// guild-service role bound to the hat requirement; it must be present before
// the reward step can run.
type GuildRecord struct {
	ID          int64  `json:"id"`
	URLName     string `json:"urlName"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	GuildRoleID int64  `json:"guildRoleId"`
}

// BotAttestation records the user's manual confirmation that the guild
// service bot was added to their Discord server. Never verified upstream.
type BotAttestation struct {
	Added bool `json:"added"`
}

// RewardRecord is produced by the final step; once present the wizard is in
// its terminal state.
type RewardRecord struct {
	ServerID    string `json:"serverId"`
	RoleID      string `json:"roleId"`
	GuildRoleID int64  `json:"guildRoleId"`
}
