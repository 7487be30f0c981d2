// Package lexicon holds the keyword and pattern catalogue consulted by the
// segmenter, classifier, scorer and contract-type matcher. The catalogue is
// a versioned configuration table: the lists and weights below are part of
// the scoring contract and changing them changes every score.
package lexicon

import "regexp"

// Version identifies the catalogue revision embedded in reports
const Version = "2024.1"

// Tier weights applied per keyword occurrence
const (
	WeightEnglishHigh   = 0.12
	WeightEnglishMedium = 0.06
	WeightEnglishLow    = 0.02
	WeightHindiHigh     = 0.15
	WeightHindiMedium   = 0.08

	WeightJurisdiction = 0.25
	WeightOneSided     = 0.15
	WeightAmbiguous    = 0.08
	WeightDeadline     = 0.10

	// ShortDeadlineDays is the threshold below which a numeric deadline is flagged
	ShortDeadlineDays = 7

	// TypeMultiplier is applied to Indemnity and Liability clauses
	TypeMultiplier = 1.3
)

// RiskTier groups keywords that share a weight
type RiskTier struct {
	High   []string
	Medium []string
	Low    []string
}

// ClauseTypeEntry is one (label, keywords) pair of the classifier priority list
type ClauseTypeEntry struct {
	Label    string
	Keywords []string
}

// ContractTypeEntry is one entry of the contract-type catalogue
type ContractTypeEntry struct {
	Label    string
	Triggers []string
}

// HeadingFamily is one clause-heading pattern family for the segmenter.
// The pattern captures the clause number in group 1.
type HeadingFamily struct {
	Name    string
	Pattern *regexp.Regexp
}

// Lexicon is the immutable catalogue. Construct once with New and inject by
// reference; never mutate after construction.
type Lexicon struct {
	EnglishRisk RiskTier
	HindiRisk   RiskTier // Low tier unused for Hindi

	JurisdictionMarkers []string
	ComplianceActs      []string

	OneSidedPatterns []*regexp.Regexp
	AmbiguousTerms   []string

	// DeadlinePatterns include non-numeric urgency words. Those match but
	// carry no capture group, so they add no score and no flag; the numeric
	// patterns capture the day/hour count in group 1.
	DeadlinePatterns []*regexp.Regexp

	ClauseTypes      []ClauseTypeEntry
	DefaultClauseType string

	ContractTypes []ContractTypeEntry

	HeadingFamilies []HeadingFamily
}

// New builds the catalogue. All patterns are compiled here so a malformed
// pattern fails at startup, not mid-analysis.
func New() *Lexicon {
	return &Lexicon{
		EnglishRisk: RiskTier{
			High: []string{
				"indemnify", "hold harmless", "unlimited liability",
				"penalty", "liquidated damages", "irrevocable",
				"non-compete", "non-solicit", "assignment without consent",
				"sole discretion", "unilateral", "automatic renewal",
				"confidential information forever", "proprietary information",
				"joint and several liability", "consequential damages",
				"punitive damages", "waiver of rights",
			},
			Medium: []string{
				"termination for convenience", "governing law",
				"jurisdiction", "arbitration", "force majeure",
				"limitation of liability", "warranty", "representation",
				"insurance", "subcontract", "change of control",
				"intellectual property rights", "survival",
			},
			Low: []string{
				"notice", "amendment", "severability",
				"entire agreement", "counterparts", "headings",
				"relationship of parties", "publicity", "assignment",
			},
		},
		HindiRisk: RiskTier{
			High: []string{
				"क्षतिपूर्ति", "असीमित दायित्व", "जुर्माना",
				"अपरिवर्तनीय", "गैर-प्रतिस्पर्धा", "एकतरफा",
				"स्वचालित नवीनीकरण", "संयुक्त दायित्व",
			},
			Medium: []string{
				"समाप्ति", "क्षेत्राधिकार", "मध्यस्थता",
				"अप्रत्याशित घटना", "दायित्व सीमा", "वारंटी",
			},
		},
		JurisdictionMarkers: []string{
			"foreign jurisdiction", "foreign law", "overseas jurisdiction",
			"dispute resolution outside india", "non-indian arbitration",
			"payment in foreign currency", "offshore account",
			"lcia", "siac", "hkiac", "icc arbitration",
			"new york law", "english law", "singapore law",
		},
		ComplianceActs: []string{
			"indian contract act", "companies act", "gst",
			"income tax act", "arbitration and conciliation act",
			"consumer protection act", "competition act",
		},
		OneSidedPatterns: []*regexp.Regexp{
			regexp.MustCompile(`sole\s+discretion`),
			regexp.MustCompile(`exclusive\s+right`),
			regexp.MustCompile(`unilateral\s+(?:right|termination|amendment)`),
			regexp.MustCompile(`at its\s+(?:option|discretion)`),
			regexp.MustCompile(`may in its discretion`),
		},
		AmbiguousTerms: []string{
			"reasonable", "best efforts", "as soon as practicable",
			"commercially reasonable", "substantially",
		},
		DeadlinePatterns: []*regexp.Regexp{
			regexp.MustCompile(`within\s+(\d+)\s+(?:hour|day)s?\b`),
			regexp.MustCompile(`(\d+)\s+(?:hour|day)s?\s+notice`),
			regexp.MustCompile(`immediately`),
			regexp.MustCompile(`forthwith`),
			regexp.MustCompile(`without delay`),
		},
		ClauseTypes: []ClauseTypeEntry{
			{Label: "Indemnity Clause", Keywords: []string{
				"indemnif", "hold harmless", "defend", "क्षतिपूर्ति",
				"protect from loss", "make whole",
			}},
			{Label: "Termination Clause", Keywords: []string{
				"terminat", "expir", "end of agreement", "समाप्ति",
				"cancellation", "wind up",
			}},
			{Label: "Jurisdiction Clause", Keywords: []string{
				"jurisdiction", "governing law", "venue", "क्षेत्राधिकार",
				"applicable law", "न्यायालय",
			}},
			{Label: "Arbitration Clause", Keywords: []string{
				"arbitration", "dispute resolution", "मध्यस्थता",
				"mediation", "conciliation",
			}},
			{Label: "Confidentiality Clause", Keywords: []string{
				"confidential", "nda", "non-disclosure", "गोपनीयता",
				"proprietary information", "trade secret",
			}},
			{Label: "Payment Clause", Keywords: []string{
				"payment", "fee", "price", "consideration", "भुगतान",
				"compensation", "remuneration",
			}},
			{Label: "IP Rights Clause", Keywords: []string{
				"intellectual property", "ip", "copyright", "patent",
				"बौद्धिक संपदा", "trademark", "invention",
			}},
			{Label: "Warranty Clause", Keywords: []string{
				"warrant", "represent", "guarantee", "वारंटी",
				"assure", "certify",
			}},
			{Label: "Liability Clause", Keywords: []string{
				"liability", "damage", "compensation", "दायित्व",
				"loss", "claim",
			}},
			{Label: "Force Majeure Clause", Keywords: []string{
				"force majeure", "act of god", "अप्रत्याशित घटना",
				"unforeseen circumstances",
			}},
		},
		DefaultClauseType: "General Clause",
		ContractTypes: []ContractTypeEntry{
			{Label: "Employment Agreement", Triggers: []string{"employee", "employer", "salary", "termination"}},
			{Label: "Vendor Agreement", Triggers: []string{"vendor", "supplier", "purchase", "goods"}},
			{Label: "Lease Agreement", Triggers: []string{"lease", "rent", "premises", "landlord"}},
			{Label: "Partnership Deed", Triggers: []string{"partner", "partnership", "profit sharing"}},
			{Label: "Service Agreement", Triggers: []string{"services", "scope of work", "deliverables"}},
		},
		HeadingFamilies: []HeadingFamily{
			{
				Name:    "worded",
				Pattern: regexp.MustCompile(`(?i)(?:clause|section|article|खंड|अनुच्छेद)\s+(\d+(?:\.\d+)*)[.\s]+`),
			},
			{
				Name:    "numbered",
				Pattern: regexp.MustCompile(`(?:^|\s)(\d+(?:\.\d+)*)\.\s+`),
			},
			{
				Name:    "hindi",
				Pattern: regexp.MustCompile(`(?:प्रावधान|धारा)\s+(\d+)[\s.]+`),
			},
		},
	}
}

// RiskTierFor returns the risk tier lists for a language tag
func (l *Lexicon) RiskTierFor(hindi bool) RiskTier {
	if hindi {
		return l.HindiRisk
	}
	return l.EnglishRisk
}
