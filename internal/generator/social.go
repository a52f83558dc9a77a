package generator

import (
	"fmt"

	"github.com/smartbizlabs/assistgen/internal/entitlements"
	"github.com/smartbizlabs/assistgen/internal/model"
)

// calendarThemes is the weekly posting cycle; day d uses index (d-1) mod 7.
var calendarThemes = []string{
	"Brand story",
	"How it works",
	"Customer testimonial",
	"Service spotlight",
	"Behind the scenes",
	"FAQ of the week",
	"Offer/CTA",
}

const calendarDays = 30

func SocialPlan(in model.BusinessInput, tier entitlements.Tier) model.SocialMediaPlan {
	calendar := make([]model.CalendarEntry, 0, calendarDays)
	for day := 1; day <= calendarDays; day++ {
		calendar = append(calendar, model.CalendarEntry{
			Day:   day,
			Theme: calendarThemes[(day-1)%len(calendarThemes)],
		})
	}

	out := model.SocialMediaPlan{
		Calendar30Day: calendar,
		CaptionsStyle: fmt.Sprintf("%s with clear CTAs", in.Tone),
		Hashtags: []string{
			"#" + stripSpaces(in.Industry),
			"#" + stripSpaces(in.Location),
			"#SmallBusiness",
			"#Tips",
		},
		Platforms: []string{"Instagram", "Facebook"},
	}
	if entitlements.Includes(entitlements.FeatureAds, tier) {
		out.AdAngles = []string{
			"Pain-Agitate-Solve for top problem",
			"Time-saving benefit angle",
			"Local authority angle",
		}
		out.Platforms = []string{"Instagram", "Facebook", "Google", "TikTok"}
	}
	return out
}

func MarketingPlan(tier entitlements.Tier) model.MarketingPlan {
	channels := []string{"Website", "Email", "Social"}
	cadence := map[string]string{
		"website": "Refresh landing pages monthly",
		"email":   "Weekly newsletter",
		"social":  "Daily posts from the 30-day calendar",
		"ads":     "N/A",
	}
	if entitlements.Includes(entitlements.FeatureAds, tier) {
		channels = append(channels, "Ads")
		cadence["ads"] = "Always-on with weekly review"
	}
	return model.MarketingPlan{Channels: channels, Cadence: cadence}
}

// SocialOAuth lists the supported social providers; connections start out
// disconnected until the owner links accounts from the dashboard.
func SocialOAuth() []model.OAuthConnection {
	providers := []string{"google", "facebook", "instagram", "linkedin", "tiktok"}
	out := make([]model.OAuthConnection, 0, len(providers))
	for _, p := range providers {
		out = append(out, model.OAuthConnection{Provider: p, Status: "disconnected"})
	}
	return out
}
