package generator

import (
	"fmt"

	"github.com/smartbizlabs/assistgen/internal/model"
)

// Summary renders the one-paragraph business description reused across the
// chatbot knowledge block and the website copy.
func Summary(in model.BusinessInput) string {
	goals := joinList(in.Goals)
	if goals == "" {
		goals = "brand growth and customer satisfaction"
	}
	return fmt.Sprintf(
		"%s is a %s %s brand based in %s. They offer %s to %s. Primary goals: %s.",
		in.BusinessName, in.Tone, in.Industry, in.Location,
		joinList(in.Services), in.TargetAudience, goals,
	)
}

func BrandIdentity(in model.BusinessInput) model.BrandIdentity {
	voice := in.BrandVoice
	if voice == "" {
		voice = fmt.Sprintf("%s, clear, helpful, conversion-focused", in.Tone)
	}

	keywords := make([]string, 0, 2+len(in.Services))
	keywords = append(keywords, in.Industry, in.Location)
	keywords = append(keywords, in.Services...)

	return model.BrandIdentity{
		Colors:     in.BrandColors,
		Typography: []string{"Inter", "Manrope", "Geist"},
		Voice:      voice,
		Keywords:   keywords,
		ValueProps: []string{
			"Fast response times",
			"Clear pricing",
			"Expert support",
		},
	}
}

func ChatbotPersona(in model.BusinessInput) model.ChatbotPersona {
	return model.ChatbotPersona{
		SystemPrompt: fmt.Sprintf(
			"You are %s's AI assistant. Tone: %s. Industry: %s. Target audience: %s.",
			in.BusinessName, in.Tone, in.Industry, in.TargetAudience,
		),
		Knowledge: model.PersonaKnowledge{
			BusinessDescription: Summary(in),
			Services:            in.Services,
			Policies: []string{
				"Be polite",
				"Never promise unavailable offers",
				"Escalate complex issues",
			},
			Goals:    in.Goals,
			FAQs:     in.FAQs,
			Examples: in.Examples,
			Capabilities: []string{
				"Customer service",
				"Sales qualification",
				"Lead capture",
				"FAQ handling",
				"Product explanation",
			},
		},
		Outputs: model.PersonaOutputs{
			Greeting: fmt.Sprintf(
				"Hi! You're speaking with the %s AI assistant — how can I help today?",
				in.BusinessName,
			),
			LeadFormFields: []string{"name", "email", "phone", "need"},
			BehaviorRules: []string{
				"Answer from the business knowledge only",
				"Collect contact details before ending a conversation",
				"Offer to book an appointment when intent is clear",
				"Hand off to a human when asked",
			},
			ResponseStyle: "Short paragraphs with a single clear call to action",
			ConversationStructure: []string{
				"Greet",
				"Identify need",
				"Answer or qualify",
				"Capture lead",
				"Close with next step",
			},
			QuickActions: []string{
				"Book an appointment",
				"See services",
				"Get pricing",
				"Talk to a human",
			},
			Buttons: []model.PersonaButton{
				{Label: "Book now", Action: "open_booking"},
				{Label: "Our services", Action: "show_services"},
				{Label: "Contact us", Action: "open_lead_form"},
			},
		},
	}
}
