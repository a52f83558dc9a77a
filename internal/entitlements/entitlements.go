package entitlements

import (
	"fmt"
	"strings"
)

// Tier is the subscription level. The ordinal order is what feature gating
// compares against: starter < standard < premium.
type Tier int

const (
	TierStarter Tier = iota
	TierStandard
	TierPremium
)

func (t Tier) String() string {
	switch t {
	case TierStandard:
		return "standard"
	case TierPremium:
		return "premium"
	default:
		return "starter"
	}
}

// Tiers lists all valid tiers in ascending ordinal order.
func Tiers() []Tier {
	return []Tier{TierStarter, TierStandard, TierPremium}
}

// ParseTier normalizes a raw tier string (case-insensitive, surrounding
// whitespace ignored). Unrecognized values are rejected.
func ParseTier(raw string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "starter":
		return TierStarter, nil
	case "standard":
		return TierStandard, nil
	case "premium":
		return TierPremium, nil
	default:
		return TierStarter, fmt.Errorf("unknown subscription tier %q", raw)
	}
}

// Feature names gated by subscription tier.
const (
	FeatureBasic         = "basic"
	FeatureWebsite       = "website"
	FeatureAds           = "ads"
	FeatureBooking       = "booking"
	FeatureCallerBot     = "caller_bot"
	FeatureCRM           = "crm"
	FeatureFullBuilder   = "full_builder"
	FeatureVoiceSupport  = "voice_support"
	FeatureAnalyticsFull = "analytics_full"
	FeatureDomainHosting = "domain_hosting"
)

// gates maps each feature to the minimum tier that unlocks it. Built once;
// never mutated at runtime.
var gates = map[string]Tier{
	FeatureBasic:         TierStarter,
	FeatureWebsite:       TierStandard,
	FeatureAds:           TierStandard,
	FeatureBooking:       TierStandard,
	FeatureCallerBot:     TierPremium,
	FeatureCRM:           TierPremium,
	FeatureFullBuilder:   TierPremium,
	FeatureVoiceSupport:  TierPremium,
	FeatureAnalyticsFull: TierPremium,
	FeatureDomainHosting: TierPremium,
}

// Includes reports whether the tier unlocks the named feature. Unknown
// features degrade to the least-privileged gate and are therefore always
// enabled, matching the permissive lookup on the feature side; unknown tiers
// cannot occur because Tier values only come out of ParseTier.
func Includes(feature string, tier Tier) bool {
	return tier >= gates[feature]
}
