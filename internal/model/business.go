package model

// Contact is an optional point of contact for the business.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// FAQ is a single question/answer pair supplied by the business.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BusinessInput is the request payload for /generate. Every generated
// section is derived from these fields plus the subscription tier.
type BusinessInput struct {
	BusinessName     string   `json:"business_name"`
	Industry         string   `json:"industry"`
	Services         []string `json:"services"`
	Location         string   `json:"location"`
	TargetAudience   string   `json:"target_audience"`
	Goals            []string `json:"goals"`
	Tone             string   `json:"tone"`
	BrandColors      []string `json:"brand_colors"`
	BrandVoice       string   `json:"brand_voice,omitempty"`
	FAQs             []FAQ    `json:"faqs"`
	Examples         []string `json:"examples"`
	SubscriptionTier string   `json:"subscription_tier"`
	WebsiteURL       string   `json:"website_url,omitempty"`
	Contact          *Contact `json:"contact,omitempty"`
}

// DefaultBrandColors is the two-entry palette used when the input omits one.
var DefaultBrandColors = []string{"#6d28d9", "#0ea5e9"}

// ApplyDefaults fills in the documented field defaults. It does not validate.
func (in *BusinessInput) ApplyDefaults() {
	if in.Tone == "" {
		in.Tone = "professional"
	}
	if len(in.BrandColors) == 0 {
		in.BrandColors = append([]string(nil), DefaultBrandColors...)
	}
}
