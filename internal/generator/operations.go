package generator

import (
	"fmt"

	"github.com/smartbizlabs/assistgen/internal/entitlements"
	"github.com/smartbizlabs/assistgen/internal/model"
)

func SalesAndAds(in model.BusinessInput, tier entitlements.Tier) model.SalesAndAds {
	first := primaryService(in)
	out := model.SalesAndAds{
		Funnels: []model.Funnel{
			{
				Name:   "Lead magnet → Nurture → Consult",
				Stages: []string{"Offer", "Capture", "Email nurture", "Consult call"},
			},
		},
		AdIdeas: []model.AdIdea{
			{
				Platform: "Facebook",
				Headline: fmt.Sprintf("%s: %s in %s", in.BusinessName, first, in.Location),
				Copy:     fmt.Sprintf("Tired of guessing? Try our %s — trusted by locals.", first),
			},
		},
	}
	if entitlements.Includes(entitlements.FeatureAds, tier) {
		out.Generators = []string{"FB/IG primary text", "Google RSA headlines", "TikTok hooks"}
	}
	return out
}

func SOPs(tier entitlements.Tier) []string {
	sops := []string{
		"Inbound chat triage and escalation",
		"Lead capture and CRM entry",
		"Daily social posting routine",
	}
	if entitlements.Includes(entitlements.FeatureWebsite, tier) {
		sops = append(sops, "Appointment scheduling and no-show follow-up")
	}
	if entitlements.Includes(entitlements.FeatureCallerBot, tier) {
		sops = append(sops, "Automated call reminders and voicemail drop")
	}
	return sops
}

func Automations(tier entitlements.Tier) model.Automations {
	out := model.Automations{
		Triggers: []string{
			"New website chat",
			"Form submission",
			"New booking",
		},
		Actions: []string{
			"Send confirmation email",
			"Create CRM contact",
			"Notify team Slack",
		},
		Workflows: []model.Workflow{
			{
				Name:        "Lead follow-up",
				Description: "When a new lead is captured, wait ten minutes, then send a personalized follow-up email and open a task for the owner.",
			},
			{
				Name:        "Review request",
				Description: "One day after a completed booking, send a thank-you message with a review link.",
			},
		},
		Integrations: []string{"Email", "Calendar"},
	}
	if entitlements.Includes(entitlements.FeatureCRM, tier) {
		out.Integrations = []string{"CRM", "WhatsApp", "Facebook", "Instagram", "Calendar"}
	}
	return out
}

func Dashboard(tier entitlements.Tier) model.Dashboard {
	roles := []model.DashboardRole{
		{Name: "AI Receptionist", Status: "ready"},
		{Name: "AI Support Agent", Status: "ready"},
		{Name: "AI Content Creator", Status: "ready"},
	}
	if entitlements.Includes(entitlements.FeatureAds, tier) {
		roles = append(roles,
			model.DashboardRole{Name: "AI Ad Expert", Status: "ready"},
			model.DashboardRole{Name: "AI Social Media Manager", Status: "ready"},
		)
	}
	if entitlements.Includes(entitlements.FeatureVoiceSupport, tier) {
		roles = append(roles,
			model.DashboardRole{Name: "AI Sales Agent", Status: "ready"},
			model.DashboardRole{Name: "AI Booking & Scheduling Assistant", Status: "ready"},
			model.DashboardRole{Name: "AI Financial Assistant", Status: "ready"},
			model.DashboardRole{Name: "24/7 Multi-platform Assistant", Status: "ready"},
		)
	}

	analytics := model.DashboardAnalytics{
		Level:   "basic",
		Widgets: []string{"Leads", "Bookings", "Messages"},
	}
	if entitlements.Includes(entitlements.FeatureAnalyticsFull, tier) {
		analytics.Level = "full"
		analytics.Widgets = []string{"Leads", "Bookings", "Messages", "Conversion rate", "Revenue"}
	}

	return model.Dashboard{Roles: roles, Analytics: analytics}
}

func Subscriptions(tier entitlements.Tier) model.Subscriptions {
	return model.Subscriptions{
		Plans: []model.TierPlan{
			{
				Tier: entitlements.TierStarter.String(),
				Features: []string{
					"Chatbot persona",
					"Business summary",
					"30-day social calendar",
					"Basic dashboard",
				},
			},
			{
				Tier: entitlements.TierStandard.String(),
				Features: []string{
					"Everything in starter",
					"Website integrations",
					"Ad generators",
					"Multi-channel booking reminders",
				},
			},
			{
				Tier: entitlements.TierPremium.String(),
				Features: []string{
					"Everything in standard",
					"Caller bot",
					"CRM integrations",
					"Voice support",
					"Full analytics",
				},
			},
		},
		CurrentTier: tier.String(),
	}
}
