package generator

import (
	"strings"
	"time"

	"github.com/smartbizlabs/assistgen/internal/entitlements"
	"github.com/smartbizlabs/assistgen/internal/model"
)

// Build assembles the full artifact bundle for one request. Every section is
// a pure function of the input and the resolved tier, so two calls with the
// same input differ only in created_at.
func Build(in model.BusinessInput, tier entitlements.Tier, now time.Time) model.GenerationResult {
	in.ApplyDefaults()

	return model.GenerationResult{
		BusinessSummary:  Summary(in),
		BrandIdentity:    BrandIdentity(in),
		ChatbotPersona:   ChatbotPersona(in),
		WebsiteStructure: WebsiteStructure(in, tier),
		SocialMediaPlan:  SocialPlan(in, tier),
		BookingTools:     BookingTools(in, tier),
		SalesAndAds:      SalesAndAds(in, tier),
		SOPs:             SOPs(tier),
		Automations:      Automations(tier),
		Dashboard:        Dashboard(tier),
		SocialOAuth:      SocialOAuth(),
		WebsiteActions:   WebsiteActions(in, tier),
		CallerBot:        CallerBot(in, tier),
		MultiPlatform:    MultiPlatform(tier),
		Subscriptions:    Subscriptions(tier),
		MarketingPlan:    MarketingPlan(tier),
		SEOKeywords:      SEOKeywords(in),
		AccessLinks:      AccessLinks(in, tier),
		SubscriptionTier: tier.String(),
		CreatedAt:        now.UTC(),
	}
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}

// primaryService returns the first listed service, or a generic phrase when
// the list is empty, so ad copy and SEO templates are total.
func primaryService(in model.BusinessInput) string {
	if len(in.Services) > 0 {
		return in.Services[0]
	}
	return "our services"
}

// normalizeName lowercases the business name and strips spaces for use in
// synthesized hostnames and links.
func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
