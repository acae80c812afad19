package nylas

import "time"

// Account describes the connected account a token belongs to.
type Account struct {
	Resource

	Name             string    `json:"name"              yaml:"name"`
	EmailAddress     string    `json:"email_address"     yaml:"email_address"`
	Provider         string    `json:"provider"          yaml:"provider"`
	OrganizationUnit string    `json:"organization_unit" yaml:"organization_unit"`
	SyncState        string    `json:"sync_state"        yaml:"sync_state"`
	LinkedAt         time.Time `json:"linked_at"         yaml:"linked_at"`
}

// AccountSchema declares Account's wire mapping.
var AccountSchema = NewSchema("account", "accounts",
	func(a *Account) *Resource { return &a.Resource },
	String("name", func(a *Account) *string { return &a.Name }),
	String("email_address", func(a *Account) *string { return &a.EmailAddress }),
	String("provider", func(a *Account) *string { return &a.Provider }),
	String("organization_unit", func(a *Account) *string { return &a.OrganizationUnit }),
	String("sync_state", func(a *Account) *string { return &a.SyncState }),
	DateTime("linked_at", func(a *Account) *time.Time { return &a.LinkedAt }),
)

// AccountService exposes the fixed /account endpoint describing the
// token's own account.
type AccountService struct {
	*Singleton[Account]
}

// NewAccountService creates the account service.
func NewAccountService(api Requester) *AccountService {
	return &AccountService{Singleton: NewSingleton(api, AccountSchema, "/account")}
}
