// Package patterns holds the static keyword and regex registries that drive
// annotation extraction. Registries are compiled once at package init and are
// read-only afterwards; extractors receive them by shared reference.
package patterns

import "regexp"

// SalaryPattern is one entry in the ordered salary pattern list. The regex
// must expose two capture groups (min, max). Multiplier scales the captured
// numbers ("k" shorthand uses 1000); Currency is the currency implied by the
// pattern, empty for market-local.
type SalaryPattern struct {
	Re         *regexp.Regexp
	Multiplier int
	Currency   string
}

// LabelPattern pairs an output label with the regex that detects it. Used for
// education, language, and benefit dimensions where several labels can
// co-occur; the slice order fixes the output order.
type LabelPattern struct {
	Label string
	Re    *regexp.Regexp
}

// IndustryPattern pairs an industry label with its keyword vocabulary.
// Industries are evaluated in list order and the first match wins.
type IndustryPattern struct {
	Label    string
	Keywords []string
}

// DistrictAlias maps an alternate spelling, MTR station name, or Chinese
// name onto a canonical district label.
type DistrictAlias struct {
	Alias    string
	District string
}

// Registry is the full pattern set for one market profile. A regional
// registry is the generic registry plus overlay vocabulary; overlay entries
// are ordered ahead of generic ones wherever precedence matters.
type Registry struct {
	TechKeywords []string

	// Ordered; first match wins.
	ExperiencePatterns []*regexp.Regexp

	// Negative patterns are evaluated first and win outright.
	VisaNegative []*regexp.Regexp
	VisaPositive []*regexp.Regexp

	ClearancePatterns []*regexp.Regexp

	EducationPatterns []LabelPattern

	// Ordered; first successful parse wins.
	SalaryPatterns []SalaryPattern

	// Default currency applied when a matching salary pattern carries none.
	DefaultCurrency string

	RemoteTerms []string
	HybridTerms []string

	// Regional-only dimensions; empty in the generic registry.
	Districts        []string
	DistrictAliases  []DistrictAlias
	LanguagePatterns []LabelPattern
	Industries       []IndustryPattern
	BenefitPatterns  []LabelPattern

	PermanentResidentPatterns []*regexp.Regexp
	SponsorshipPatterns       []*regexp.Regexp
	WorkVisaPatterns          []*regexp.Regexp

	SummaryVerbs []string
}

var genericTechKeywords = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Golang", "C#", "C++",
	"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "Objective-C",
	"React", "Angular", "Vue", "Next.js", "Node.js", "Express", "Django",
	"Flask", "FastAPI", "Spring", ".NET", "Rails", "Laravel", "GraphQL",
	"REST API", "gRPC", "HTML", "CSS", "SASS", "jQuery", "Flutter",
	"React Native", "PostgreSQL", "MySQL", "SQL Server", "Oracle",
	"MongoDB", "Redis", "Elasticsearch", "DynamoDB", "Kafka", "RabbitMQ",
	"Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "CI/CD",
	"AWS", "Azure", "GCP", "Linux", "Git", "Microservices",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Spark",
	"Hadoop", "Airflow", "Tableau", "Power BI", "Unity", "Solidity",
}

var genericExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?professional`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+in\b`),
	regexp.MustCompile(`(?i)minimum\s+(?:of\s+)?(\d+)\s*years?`),
	regexp.MustCompile(`(?i)at\s+least\s+(\d+)\s*years?`),
}

var genericVisaNegative = []*regexp.Regexp{
	regexp.MustCompile(`(?i)no\s+visa\s+sponsorship`),
	regexp.MustCompile(`(?i)(?:unable|not\s+able)\s+to\s+sponsor`),
	regexp.MustCompile(`(?i)(?:cannot|can\s+not|will\s+not|won't)\s+(?:provide\s+)?sponsor`),
	regexp.MustCompile(`(?i)sponsorship\s+is\s+not\s+available`),
	regexp.MustCompile(`(?i)without\s+(?:visa\s+)?sponsorship`),
	regexp.MustCompile(`(?i)no\s+sponsorship`),
}

var genericVisaPositive = []*regexp.Regexp{
	regexp.MustCompile(`(?i)visa\s+sponsorship\s+(?:is\s+)?available`),
	regexp.MustCompile(`(?i)(?:we|company)\s+(?:will\s+)?sponsor`),
	regexp.MustCompile(`(?i)will\s+sponsor`),
	regexp.MustCompile(`(?i)sponsorship\s+(?:is\s+)?(?:available|provided|offered)`),
	regexp.MustCompile(`(?i)h-?1b\s+sponsorship`),
	regexp.MustCompile(`(?i)visa\s+support`),
}

var genericClearancePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)security\s+clearance`),
	regexp.MustCompile(`(?i)secret\s+clearance`),
	regexp.MustCompile(`(?i)top\s+secret`),
	regexp.MustCompile(`(?i)ts/sci`),
	regexp.MustCompile(`(?i)government\s+clearance`),
}

var genericEducationPatterns = []LabelPattern{
	{Label: "Bachelor's", Re: regexp.MustCompile(`(?i)bachelor|\bb\.?sc?\.?\b|undergraduate\s+degree|degree\s+holder|學士`)},
	{Label: "Master's", Re: regexp.MustCompile(`(?i)master(?:'s)?\s+degree|master\s+of|\bm\.?sc\.?\b|postgraduate|碩士`)},
	{Label: "PhD", Re: regexp.MustCompile(`(?i)ph\.?\s?d|doctorate|doctoral|博士`)},
	{Label: "Computer Science", Re: regexp.MustCompile(`(?i)computer\s+science|comp\.?\s*sci|計算機科學|電腦科學`)},
	{Label: "Engineering", Re: regexp.MustCompile(`(?i)\bengineering\b|工程學`)},
	{Label: "Mathematics", Re: regexp.MustCompile(`(?i)mathematics|\bmaths?\b|數學`)},
}

var genericSalaryPatterns = []SalaryPattern{
	// "$120,000 - $160,000"
	{Re: regexp.MustCompile(`\$\s?([\d,]{4,})\s*(?:-|–|—|to)\s*\$?\s?([\d,]{4,})`), Multiplier: 1},
	// "$120k - $160k"
	{Re: regexp.MustCompile(`(?i)\$?\s?(\d+(?:\.\d+)?)k\s*(?:-|–|—|to)\s*\$?\s?(\d+(?:\.\d+)?)k`), Multiplier: 1000},
	// "120,000 - 160,000 per year"
	{Re: regexp.MustCompile(`(?i)([\d,]{4,})\s*(?:-|–|—|to)\s*([\d,]{4,})\s*(?:per\s+year|per\s+annum|annually|/\s*year)`), Multiplier: 1},
}

var genericRemoteTerms = []string{
	"remote", "work from anywhere", "fully distributed", "在家工作",
}

var genericHybridTerms = []string{
	"hybrid", "flexible work arrangement", "partially remote", "混合辦公",
}

var genericSummaryVerbs = []string{
	"design", "develop", "implement", "build", "maintain", "lead",
	"manage", "collaborate", "create", "deliver", "support", "analyze",
	"optimize", "architect", "drive", "own", "review", "mentor",
}

var generic = &Registry{
	TechKeywords:       genericTechKeywords,
	ExperiencePatterns: genericExperiencePatterns,
	VisaNegative:       genericVisaNegative,
	VisaPositive:       genericVisaPositive,
	ClearancePatterns:  genericClearancePatterns,
	EducationPatterns:  genericEducationPatterns,
	SalaryPatterns:     genericSalaryPatterns,
	RemoteTerms:        genericRemoteTerms,
	HybridTerms:        genericHybridTerms,
	SummaryVerbs:       genericSummaryVerbs,
}

// Generic returns the market-neutral registry. The returned value is shared
// and must not be mutated.
func Generic() *Registry {
	return generic
}
