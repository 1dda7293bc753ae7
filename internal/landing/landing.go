// Package landing holds the product copy shown on the home screen and by
// `givepool about`.
package landing

// Item is a titled blurb: a feature, a step, or a security guarantee.
type Item struct {
	Title       string
	Description string
}

// Stat is a headline figure such as "0.1% Avg Fee".
type Stat struct {
	Value string
	Label string
}

// Section is one block of the landing page.
type Section struct {
	ID       string
	Heading  string
	Subtitle string
	Items    []Item
	Stats    []Stat
	Numbered bool
}

// Hero is the page header.
var Hero = Section{
	ID:      "hero",
	Heading: "Secure, Transparent Donation Pools on Stellar",
	Subtitle: "Empower collective giving with blockchain transparency. Create donation " +
		"pools that generate yield, minimize costs, and ensure every dollar counts.",
	Stats: []Stat{
		{Value: "100%", Label: "Transparent"},
		{Value: "0.1%", Label: "Avg Fee"},
		{Value: "Instant", Label: "Settlement"},
	},
}

// Features lists what the product offers.
var Features = Section{
	ID:       "features",
	Heading:  "Powerful Features",
	Subtitle: "Everything you need for trustworthy collective giving",
	Items: []Item{
		{"Secure Donation Pools", "Smart contracts ensure funds are secure and can only be used as intended. Immutable audit trails on blockchain."},
		{"Multi-Asset Support", "Accept XLM, USDC, and custom assets. Flexible donation options for your contributors."},
		{"DeFi Yield Generation", "Generate passive yield on pooled donations. Increase impact without additional fundraising."},
		{"Transparent Tracking", "Real-time dashboard showing pool balance, contributions, and fund utilization. Full blockchain transparency."},
		{"Ultra-Low Costs", "Stellar's efficient network means near-zero fees. More donations reach your cause."},
		{"Community Trust", "Verified contributors and transparent governance. Build confidence in your cause."},
	},
}

// HowItWorks is the numbered onboarding flow.
var HowItWorks = Section{
	ID:       "how-it-works",
	Heading:  "How It Works",
	Subtitle: "Simple steps to create and manage your donation pool",
	Numbered: true,
	Items: []Item{
		{"Create Pool", "Set up your donation pool with pool name, description, and fund allocation strategy."},
		{"Share & Invite", "Invite contributors to your pool. Share via link or QR code for easy onboarding."},
		{"Collect Funds", "Contributors donate XLM, USDC, or custom assets. Funds pool securely on Stellar."},
		{"Earn & Impact", "Generate yield on pooled funds while maintaining full transparency and control."},
	},
}

// Security lists the trust guarantees.
var Security = Section{
	ID:       "security",
	Heading:  "Trust & Security Built In",
	Subtitle: "Your donations are protected by industry-leading security measures and blockchain transparency.",
	Items: []Item{
		{"Stellar Blockchain", "All transactions recorded immutably on one of the most trusted blockchains"},
		{"Smart Contract Audited", "All contracts are audited and open-source for community verification"},
		{"Multi-Sig Protection", "Critical operations require multiple signatures for enhanced security"},
		{"Real-Time Monitoring", "24/7 monitoring for suspicious activity and anomalies"},
	},
	Stats: []Stat{
		{Value: "256-bit", Label: "Encryption Standard"},
		{Value: "0", Label: "Breaches Ever"},
		{Value: "100%", Label: "Transparent"},
		{Value: "<3s", Label: "Load Time"},
	},
}

// CTA closes the page.
var CTA = Section{
	ID:       "cta",
	Heading:  "Ready to Make Impact?",
	Subtitle: "Start creating transparent donation pools today. Join the future of collective giving.",
}

// Sections returns the landing page in display order.
func Sections() []Section {
	return []Section{Hero, Features, HowItWorks, Security, CTA}
}

// ByID returns the section with the given anchor id.
func ByID(id string) (Section, bool) {
	for _, s := range Sections() {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
