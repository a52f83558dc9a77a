package generator

import (
	"fmt"

	"github.com/smartbizlabs/assistgen/internal/entitlements"
	"github.com/smartbizlabs/assistgen/internal/model"
)

func BookingTools(in model.BusinessInput, tier entitlements.Tier) model.BookingTools {
	out := model.BookingTools{
		BookingLink: fmt.Sprintf("https://book.%s.ai", normalizeName(in.BusinessName)),
		Reminders:   []string{"email"},
		ConfirmationMessages: map[string]string{
			"email": "Thanks for booking with us!",
		},
	}
	if entitlements.Includes(entitlements.FeatureBooking, tier) {
		out.Reminders = []string{"email", "sms", "whatsapp"}
		out.CalendarSync = true
	}
	return out
}

// CallerBot returns nil unless the tier is entitled to voice; the IVR layout
// itself is fixed.
func CallerBot(in model.BusinessInput, tier entitlements.Tier) *model.CallerBot {
	if !entitlements.Includes(entitlements.FeatureCallerBot, tier) {
		return nil
	}
	return &model.CallerBot{
		ProvisionNumber: true,
		Greeting:        fmt.Sprintf("Thanks for calling %s. How can I help you today?", in.BusinessName),
		IVRMenu: []model.IVROption{
			{Digit: "1", Label: "Book an appointment"},
			{Digit: "2", Label: "Opening hours and location"},
			{Digit: "3", Label: "Speak to the team"},
		},
		CallFlows: []string{
			"Appointment booking",
			"Reminder calls",
			"Missed-call text back",
		},
	}
}

func MultiPlatform(tier entitlements.Tier) model.MultiPlatform {
	channels := []string{"Website", "Email"}
	if entitlements.Includes(entitlements.FeatureBooking, tier) {
		channels = append(channels, "WhatsApp", "Instagram DMs", "Facebook Messenger")
	}
	if entitlements.Includes(entitlements.FeatureCallerBot, tier) {
		channels = append(channels, "Phone calls")
	}
	// In-app chat always ships and always comes last.
	channels = append(channels, "In-app chat")
	return model.MultiPlatform{Channels: channels}
}
