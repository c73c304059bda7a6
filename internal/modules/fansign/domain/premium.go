package domain

import "github.com/disgoorg/snowflake/v2"

// Channel is the part of a guild channel the premium gate looks at.
type Channel struct {
	ID       snowflake.ID
	ParentID snowflake.ID
}

// PremiumGate restricts premium features to the channels of one category.
type PremiumGate struct {
	CategoryID        snowflake.ID
	ExcludedChannelID snowflake.ID
}

// Allows reports whether premium features may be used in ch: the channel
// must sit in the premium category and must not be the excluded channel.
func (g PremiumGate) Allows(ch Channel) bool {
	if g.CategoryID == 0 || ch.ParentID != g.CategoryID {
		return false
	}
	return g.ExcludedChannelID == 0 || ch.ID != g.ExcludedChannelID
}
