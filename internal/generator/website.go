package generator

import (
	"fmt"

	"github.com/smartbizlabs/assistgen/internal/entitlements"
	"github.com/smartbizlabs/assistgen/internal/model"
)

func WebsiteStructure(in model.BusinessInput, tier entitlements.Tier) model.WebsiteStructure {
	keywords := make([]string, 0, 3+len(in.Services))
	keywords = append(keywords, in.BusinessName, in.Industry, in.Location)
	keywords = append(keywords, in.Services...)

	out := model.WebsiteStructure{
		Pages: []model.WebsitePage{
			{Path: "/", Title: "Home"},
			{Path: "/about", Title: "About"},
			{Path: "/services", Title: "Services", Items: in.Services},
			{Path: "/pricing", Title: "Pricing"},
			{Path: "/contact", Title: "Contact"},
		},
		SEO: model.WebsiteSEO{
			Title:       fmt.Sprintf("%s | %s in %s", in.BusinessName, in.Industry, in.Location),
			Description: fmt.Sprintf("%s offers %s in %s.", in.BusinessName, joinList(in.Services), in.Location),
			Keywords:    keywords,
		},
		Theme: model.WebsiteTheme{Colors: in.BrandColors, Tone: in.Tone},
	}
	if entitlements.Includes(entitlements.FeatureWebsite, tier) {
		out.Integrations = &model.WebsiteIntegrations{ChatWidget: true, Booking: true}
	}
	return out
}

// WebsiteActions describes what the builder should do next: improve an
// existing site when the business already has one, or create a new one.
func WebsiteActions(in model.BusinessInput, tier entitlements.Tier) model.WebsiteActions {
	if in.WebsiteURL != "" {
		return model.WebsiteActions{
			Mode: "integrate",
			RequiredAccess: []string{
				"domain_registrar",
				"hosting_provider",
				"cms_admin",
				"analytics",
			},
			Actions: []string{
				"Embed the chat widget",
				"Add a booking page",
				"Refresh SEO metadata",
				"Add lead capture forms",
			},
		}
	}

	hosting := entitlements.Includes(entitlements.FeatureDomainHosting, tier)
	return model.WebsiteActions{
		Mode: "create",
		Actions: []string{
			"Generate page copy from the business profile",
			"Apply brand colors and typography",
			"Publish services and pricing pages",
			"Connect the chat widget",
		},
		Deployment: &model.WebsiteDeployment{
			AutoDeploy:     hosting,
			CustomDomain:   hosting,
			ManagedHosting: hosting,
		},
	}
}

// SEOKeywords returns four fixed keyword templates followed by one phrase
// per listed service, for a total of 4 + len(services).
func SEOKeywords(in model.BusinessInput) []string {
	first := primaryService(in)
	keywords := []string{
		fmt.Sprintf("%s in %s", in.Industry, in.Location),
		fmt.Sprintf("best %s in %s", first, in.Location),
		fmt.Sprintf("%s reviews", in.BusinessName),
		fmt.Sprintf("affordable %s %s", in.Industry, in.Location),
	}
	for _, svc := range in.Services {
		keywords = append(keywords, fmt.Sprintf("%s %s", svc, in.Location))
	}
	return keywords
}

func AccessLinks(in model.BusinessInput, tier entitlements.Tier) model.AccessLinks {
	name := normalizeName(in.BusinessName)
	links := model.AccessLinks{
		Booking: fmt.Sprintf("https://book.%s.ai", name),
		Admin:   fmt.Sprintf("https://admin.%s.ai", name),
	}

	switch {
	case in.WebsiteURL != "":
		links.Website = in.WebsiteURL
	case entitlements.Includes(entitlements.FeatureDomainHosting, tier):
		links.Website = fmt.Sprintf("https://%s.ai", name)
	}
	if links.Website != "" {
		links.ChatWidget = links.Website + "/widget/chat.js"
	}
	return links
}
