package dto

// SearchHatInput carries the user-supplied fields for the hat search step
type SearchHatInput struct {
	HatID string
}

// CreateRewardInput carries the Discord identifiers for the reward step
type CreateRewardInput struct {
	ServerID string
	RoleID   string
}

// StepStatus describes one wizard step for status output
type StepStatus struct {
	Index     int    `json:"index"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Satisfied bool   `json:"satisfied"`
	Current   bool   `json:"current"`
}

// WizardStatus is the full controller status snapshot
type WizardStatus struct {
	Identity  string       `json:"identity"`
	StepIndex int          `json:"step_index"`
	Completed bool         `json:"completed"`
	Steps     []StepStatus `json:"steps"`

	HatName   string `json:"hat_name,omitempty"`
	HatID     string `json:"hat_id,omitempty"`
	GuildName string `json:"guild_name,omitempty"`
	GuildURL  string `json:"guild_url,omitempty"`
	ServerID  string `json:"server_id,omitempty"`
	RoleID    string `json:"role_id,omitempty"`
}
