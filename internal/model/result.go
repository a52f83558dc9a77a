package model

import "time"

// GenerationResult is the full artifact bundle returned by /generate.
// Sections are independently derivable from BusinessInput plus the resolved
// tier; CallerBot is nil when the tier is not entitled to it.
type GenerationResult struct {
	BusinessSummary  string            `json:"business_summary"`
	BrandIdentity    BrandIdentity     `json:"brand_identity"`
	ChatbotPersona   ChatbotPersona    `json:"chatbot_persona"`
	WebsiteStructure WebsiteStructure  `json:"website_structure"`
	SocialMediaPlan  SocialMediaPlan   `json:"social_media_plan"`
	BookingTools     BookingTools      `json:"booking_tools"`
	SalesAndAds      SalesAndAds       `json:"sales_and_ads"`
	SOPs             []string          `json:"sops"`
	Automations      Automations       `json:"automations"`
	Dashboard        Dashboard         `json:"dashboard"`
	SocialOAuth      []OAuthConnection `json:"social_oauth"`
	WebsiteActions   WebsiteActions    `json:"website_actions"`
	CallerBot        *CallerBot        `json:"caller_bot"`
	MultiPlatform    MultiPlatform     `json:"multi_platform"`
	Subscriptions    Subscriptions     `json:"subscriptions"`
	MarketingPlan    MarketingPlan     `json:"marketing_plan"`
	SEOKeywords      []string          `json:"seo_keywords"`
	AccessLinks      AccessLinks       `json:"access_links"`
	SubscriptionTier string            `json:"subscription_tier"`
	CreatedAt        time.Time         `json:"created_at"`
}

type BrandIdentity struct {
	Colors     []string `json:"colors"`
	Typography []string `json:"typography"`
	Voice      string   `json:"voice"`
	Keywords   []string `json:"keywords"`
	ValueProps []string `json:"value_props"`
}

type ChatbotPersona struct {
	SystemPrompt string           `json:"system_prompt"`
	Knowledge    PersonaKnowledge `json:"knowledge"`
	Outputs      PersonaOutputs   `json:"outputs"`
}

type PersonaKnowledge struct {
	BusinessDescription string   `json:"business_description"`
	Services            []string `json:"services"`
	Policies            []string `json:"policies"`
	Goals               []string `json:"goals"`
	FAQs                []FAQ    `json:"faqs"`
	Examples            []string `json:"examples"`
	Capabilities        []string `json:"capabilities"`
}

type PersonaOutputs struct {
	Greeting              string          `json:"greeting"`
	LeadFormFields        []string        `json:"lead_form_fields"`
	BehaviorRules         []string        `json:"behavior_rules"`
	ResponseStyle         string          `json:"response_style"`
	ConversationStructure []string        `json:"conversation_structure"`
	QuickActions          []string        `json:"quick_actions"`
	Buttons               []PersonaButton `json:"buttons"`
}

type PersonaButton struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

type WebsitePage struct {
	Path  string   `json:"path"`
	Title string   `json:"title"`
	Items []string `json:"items,omitempty"`
}

type WebsiteSEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

type WebsiteTheme struct {
	Colors []string `json:"colors"`
	Tone   string   `json:"tone"`
}

type WebsiteIntegrations struct {
	ChatWidget bool `json:"chat_widget"`
	Booking    bool `json:"booking"`
}

type WebsiteStructure struct {
	Pages        []WebsitePage        `json:"pages"`
	SEO          WebsiteSEO           `json:"seo"`
	Theme        WebsiteTheme         `json:"theme"`
	Integrations *WebsiteIntegrations `json:"integrations,omitempty"`
}

type CalendarEntry struct {
	Day   int    `json:"day"`
	Theme string `json:"theme"`
}

type SocialMediaPlan struct {
	Calendar30Day []CalendarEntry `json:"calendar_30_day"`
	CaptionsStyle string          `json:"captions_style"`
	Hashtags      []string        `json:"hashtags"`
	AdAngles      []string        `json:"ad_angles,omitempty"`
	Platforms     []string        `json:"platforms"`
}

type BookingTools struct {
	BookingLink          string            `json:"booking_link"`
	Reminders            []string          `json:"reminders"`
	ConfirmationMessages map[string]string `json:"confirmation_messages"`
	CalendarSync         bool              `json:"calendar_sync"`
}

type Funnel struct {
	Name   string   `json:"name"`
	Stages []string `json:"stages"`
}

type AdIdea struct {
	Platform string `json:"platform"`
	Headline string `json:"headline"`
	Copy     string `json:"copy"`
}

type SalesAndAds struct {
	Funnels    []Funnel `json:"funnels"`
	AdIdeas    []AdIdea `json:"ad_ideas"`
	Generators []string `json:"generators,omitempty"`
}

type Workflow struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Automations struct {
	Triggers     []string   `json:"triggers"`
	Actions      []string   `json:"actions"`
	Workflows    []Workflow `json:"workflows"`
	Integrations []string   `json:"integrations"`
}

type DashboardRole struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type DashboardAnalytics struct {
	Level   string   `json:"level"`
	Widgets []string `json:"widgets"`
}

type Dashboard struct {
	Roles     []DashboardRole    `json:"roles"`
	Analytics DashboardAnalytics `json:"analytics"`
}

type OAuthConnection struct {
	Provider string `json:"provider"`
	Status   string `json:"status"`
}

type WebsiteDeployment struct {
	AutoDeploy     bool `json:"auto_deploy"`
	CustomDomain   bool `json:"custom_domain"`
	ManagedHosting bool `json:"managed_hosting"`
}

type WebsiteActions struct {
	Mode           string             `json:"mode"`
	RequiredAccess []string           `json:"required_access,omitempty"`
	Actions        []string           `json:"actions"`
	Deployment     *WebsiteDeployment `json:"deployment,omitempty"`
}

type IVROption struct {
	Digit string `json:"digit"`
	Label string `json:"label"`
}

type CallerBot struct {
	ProvisionNumber bool        `json:"provision_number"`
	Greeting        string      `json:"greeting"`
	IVRMenu         []IVROption `json:"ivr_menu"`
	CallFlows       []string    `json:"call_flows"`
}

type MultiPlatform struct {
	Channels []string `json:"channels"`
}

type TierPlan struct {
	Tier     string   `json:"tier"`
	Features []string `json:"features"`
}

type Subscriptions struct {
	Plans       []TierPlan `json:"plans"`
	CurrentTier string     `json:"current_tier"`
}

type MarketingPlan struct {
	Channels []string          `json:"channels"`
	Cadence  map[string]string `json:"cadence"`
}

type AccessLinks struct {
	Booking    string `json:"booking"`
	Admin      string `json:"admin"`
	Website    string `json:"website,omitempty"`
	ChatWidget string `json:"chat_widget,omitempty"`
}
