package users

// Name is the account holder's name in its various display forms.
type Name struct {
	GivenName       string `json:"given_name"`
	Surname         string `json:"surname"`
	FamiliarName    string `json:"familiar_name"`
	DisplayName     string `json:"display_name"`
	AbbreviatedName string `json:"abbreviated_name"`
}

// AccountType is the plan tier of the account.
type AccountType struct {
	Tag string `json:".tag"`
}

// FullAccount is the response of get_current_account.
type FullAccount struct {
	AccountID     string      `json:"account_id"`
	Name          Name        `json:"name"`
	Email         string      `json:"email"`
	EmailVerified bool        `json:"email_verified"`
	Disabled      bool        `json:"disabled"`
	Locale        string      `json:"locale"`
	Country       string      `json:"country,omitempty"`
	ReferralLink  string      `json:"referral_link,omitempty"`
	IsPaired      bool        `json:"is_paired"`
	AccountType   AccountType `json:"account_type"`
	ProfilePhoto  string      `json:"profile_photo_url,omitempty"`
}

// SpaceAllocation is the allocation union of get_space_usage. The
// individual variant carries the quota inline; team accounts report under
// the team tag instead.
type SpaceAllocation struct {
	Tag       string `json:".tag"`
	Allocated uint64 `json:"allocated,omitempty"`
}

// SpaceUsage is the response of get_space_usage.
type SpaceUsage struct {
	Used       uint64          `json:"used"`
	Allocation SpaceAllocation `json:"allocation"`
}
