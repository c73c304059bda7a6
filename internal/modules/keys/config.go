package keys

// Config holds the keys module configuration.
type Config struct {
	// OwnerID is the only user allowed to mint keys.
	OwnerID string `env:"OWNER_ID"`

	// PremiumRoleID is granted on redemption when set.
	PremiumRoleID string `env:"PREMIUM_ROLE_ID"`
}
