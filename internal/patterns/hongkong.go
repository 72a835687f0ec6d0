package patterns

import "regexp"

// Hong Kong overlay: the generic registry plus local vocabulary. Regional
// salary patterns are ordered ahead of the generic ones so they win when both
// could match the same span.

var hongKongTechKeywords = []string{
	"Murex", "Avaloq", "Temenos", "T24", "COBOL", "Mainframe", "AS400",
	"FIX Protocol", "SWIFT", "Bloomberg Terminal", "MT4", "KDB+",
}

var hongKongSalaryPatterns = []SalaryPattern{
	// "HK$20,000 - HK$40,000"
	{Re: regexp.MustCompile(`(?i)HK\$\s?([\d,]+)\s*(?:-|–|—|to|至)\s*(?:HK\$)?\s?([\d,]+)`), Multiplier: 1, Currency: "HKD"},
	// "HK$20k - HK$40k"
	{Re: regexp.MustCompile(`(?i)HK\$\s?(\d+(?:\.\d+)?)k\s*(?:-|–|—|to|至)\s*(?:HK\$)?\s?(\d+(?:\.\d+)?)k`), Multiplier: 1000, Currency: "HKD"},
	// "月薪: 20,000 - 40,000" (full-width colon folded to ":" during cleaning)
	{Re: regexp.MustCompile(`(?i)(?:月薪|monthly\s+salary)\s*[:：]?\s*(?:HK\$)?\s?([\d,]+)\s*(?:-|–|—|to|至)\s*(?:HK\$)?\s?([\d,]+)`), Multiplier: 1, Currency: "HKD"},
}

var hongKongDistricts = []string{
	"Central", "Admiralty", "Sheung Wan", "Wan Chai", "Causeway Bay",
	"North Point", "Quarry Bay", "Tai Koo", "Tsim Sha Tsui", "Jordan",
	"Mong Kok", "Kowloon Bay", "Ngau Tau Kok", "Kwun Tong", "Lai Chi Kok",
	"Cheung Sha Wan", "Hung Hom", "Sha Tin", "Fo Tan", "Tsuen Wan",
	"Kwai Chung", "Tuen Mun", "Yuen Long", "Tseung Kwan O", "Tai Po",
	"Cyberport", "Science Park",
}

var hongKongDistrictAliases = []DistrictAlias{
	{Alias: "Taikoo", District: "Tai Koo"},
	{Alias: "TST", District: "Tsim Sha Tsui"},
	{Alias: "CWB", District: "Causeway Bay"},
	{Alias: "TKO", District: "Tseung Kwan O"},
	{Alias: "中環", District: "Central"},
	{Alias: "金鐘", District: "Admiralty"},
	{Alias: "灣仔", District: "Wan Chai"},
	{Alias: "銅鑼灣", District: "Causeway Bay"},
	{Alias: "鰂魚涌", District: "Quarry Bay"},
	{Alias: "尖沙咀", District: "Tsim Sha Tsui"},
	{Alias: "旺角", District: "Mong Kok"},
	{Alias: "觀塘", District: "Kwun Tong"},
	{Alias: "沙田", District: "Sha Tin"},
	{Alias: "荃灣", District: "Tsuen Wan"},
	{Alias: "將軍澳", District: "Tseung Kwan O"},
	{Alias: "數碼港", District: "Cyberport"},
}

var hongKongLanguagePatterns = []LabelPattern{
	// English requires a proficiency phrasing, not mere presence of English text.
	{Label: "English", Re: regexp.MustCompile(`(?i)(?:fluent|proficient|good\s+command\s+of|excellent)\s+(?:in\s+)?(?:spoken\s+and\s+written\s+)?english|english\s+(?:is\s+)?(?:required|preferred|a\s+must|proficiency)`)},
	{Label: "Cantonese", Re: regexp.MustCompile(`(?i)cantonese|廣東話|粵語`)},
	{Label: "Mandarin", Re: regexp.MustCompile(`(?i)mandarin|putonghua|普通話|國語`)},
	{Label: "Chinese", Re: regexp.MustCompile(`(?i)written\s+chinese|chinese\s+writing|中文`)},
	{Label: "Japanese", Re: regexp.MustCompile(`(?i)japanese|日本語|日語`)},
}

// Evaluated in order; Banking & Finance deliberately precedes Technology so a
// fintech posting resolves to the finance category.
var hongKongIndustries = []IndustryPattern{
	{Label: "Banking & Finance", Keywords: []string{
		"bank", "finance", "financial", "investment", "asset management",
		"hedge fund", "securities", "fintech", "wealth management",
		"private equity", "brokerage", "銀行", "金融",
	}},
	{Label: "Insurance", Keywords: []string{
		"insurance", "actuarial", "insurtech", "保險",
	}},
	{Label: "Technology", Keywords: []string{
		"software house", "technology company", "tech company", "saas",
		"it solutions", "startup", "internet company", "科技",
	}},
	{Label: "Retail & E-commerce", Keywords: []string{
		"retail", "e-commerce", "ecommerce", "online store", "零售",
	}},
	{Label: "Logistics & Trading", Keywords: []string{
		"logistics", "supply chain", "freight", "shipping", "trading company", "物流",
	}},
	{Label: "Property & Construction", Keywords: []string{
		"property", "real estate", "construction", "地產", "建築",
	}},
	{Label: "Telecommunications", Keywords: []string{
		"telecom", "telecommunications", "電訊",
	}},
	{Label: "Government & Public Sector", Keywords: []string{
		"government", "public sector", "statutory body", "政府",
	}},
	{Label: "Education", Keywords: []string{
		"university", "school", "education centre", "education institute", "教育",
	}},
	{Label: "Healthcare", Keywords: []string{
		"hospital", "clinic", "healthcare", "medical centre", "醫療",
	}},
}

var hongKongBenefitPatterns = []LabelPattern{
	{Label: "Medical Insurance", Re: regexp.MustCompile(`(?i)medical\s+(?:insurance|coverage|benefits)|health\s+insurance|醫療保險`)},
	{Label: "Dental Insurance", Re: regexp.MustCompile(`(?i)dental|牙科`)},
	{Label: "Performance Bonus", Re: regexp.MustCompile(`(?i)(?:performance|discretionary|year-?end)\s+bonus|double\s+pay|花紅|雙糧`)},
	{Label: "Five-Day Week", Re: regexp.MustCompile(`(?i)5-?day\s+work|five-?day\s+work|5天工作`)},
	{Label: "Flexible Hours", Re: regexp.MustCompile(`(?i)flexible\s+(?:working\s+)?hours|flexi-?time|彈性上班`)},
	{Label: "Work From Home", Re: regexp.MustCompile(`(?i)work\s+from\s+home|\bwfh\b|home\s+office`)},
	{Label: "Annual Leave", Re: regexp.MustCompile(`(?i)annual\s+leave|paid\s+leave|有薪年假`)},
	{Label: "Education Allowance", Re: regexp.MustCompile(`(?i)(?:education|training|tuition)\s+(?:allowance|subsidy|sponsorship)|進修津貼`)},
}

var hongKongPermanentResidentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:hong\s+kong\s+)?permanent\s+resident`),
	regexp.MustCompile(`(?i)right\s+of\s+abode`),
	regexp.MustCompile(`(?i)\bHKID\b`),
	regexp.MustCompile(`香港永久居民`),
}

var hongKongSponsorshipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)visa\s+sponsorship`),
	regexp.MustCompile(`(?i)sponsor\s+(?:work(?:ing)?\s+|employment\s+)?visa`),
	regexp.MustCompile(`(?i)provide\s+visa`),
	regexp.MustCompile(`簽證贊助`),
}

var hongKongWorkVisaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:valid\s+)?work(?:ing)?\s+visa`),
	regexp.MustCompile(`(?i)employment\s+visa`),
	regexp.MustCompile(`(?i)\bIANG\b`),
	regexp.MustCompile(`工作簽證`),
}

var hongKong = &Registry{
	TechKeywords:       append(append([]string{}, genericTechKeywords...), hongKongTechKeywords...),
	ExperiencePatterns: genericExperiencePatterns,
	VisaNegative:       genericVisaNegative,
	VisaPositive:       genericVisaPositive,
	ClearancePatterns:  genericClearancePatterns,
	EducationPatterns:  genericEducationPatterns,
	SalaryPatterns:     append(append([]SalaryPattern{}, hongKongSalaryPatterns...), genericSalaryPatterns...),
	DefaultCurrency:    "HKD",
	RemoteTerms:        genericRemoteTerms,
	HybridTerms:        genericHybridTerms,

	Districts:        hongKongDistricts,
	DistrictAliases:  hongKongDistrictAliases,
	LanguagePatterns: hongKongLanguagePatterns,
	Industries:       hongKongIndustries,
	BenefitPatterns:  hongKongBenefitPatterns,

	PermanentResidentPatterns: hongKongPermanentResidentPatterns,
	SponsorshipPatterns:       hongKongSponsorshipPatterns,
	WorkVisaPatterns:          hongKongWorkVisaPatterns,

	SummaryVerbs: genericSummaryVerbs,
}

// HongKong returns the Hong Kong market registry. The returned value is
// shared and must not be mutated.
func HongKong() *Registry {
	return hongKong
}
