package models

// Insight is a BDR-facing observation derived from traffic data.
type Insight struct {
	Type       string `json:"type" bson:"type"`             // traffic_volume | international_traffic | engagement | business_type
	Message    string `json:"message" bson:"message"`       // human readable text for the BDR
	Priority   string `json:"priority" bson:"priority"`     // high | medium | low
	Actionable string `json:"actionable" bson:"actionable"` // suggested next move
}

// Insight types.
const (
	InsightTrafficVolume        = "traffic_volume"
	InsightInternationalTraffic = "international_traffic"
	InsightEngagement           = "engagement"
	InsightBusinessType         = "business_type"
)

// Insight priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// BasicInfo identifies the analyzed site.
type BasicInfo struct {
	URL         string `json:"url" bson:"url"`
	SiteName    string `json:"siteName" bson:"siteName"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Category    string `json:"category" bson:"category"`
	ScrapedAt   string `json:"scrapedAt" bson:"scrapedAt"`
}

// RankingInfo groups the rank figures.
type RankingInfo struct {
	GlobalRank   int64                 `json:"globalRank" bson:"globalRank"`
	CountryRank  *ProviderCountryRank  `json:"countryRank,omitempty" bson:"countryRank,omitempty"`
	CategoryRank *ProviderCategoryRank `json:"categoryRank,omitempty" bson:"categoryRank,omitempty"`
}

// TrafficInfo groups the volume and engagement figures.
// TimeOnSite is in whole minutes, BounceRate is a percentage.
type TrafficInfo struct {
	TotalVisits            int64            `json:"totalVisits" bson:"totalVisits"`
	TimeOnSite             int64            `json:"timeOnSite" bson:"timeOnSite"`
	PagePerVisit           float64          `json:"pagePerVisit" bson:"pagePerVisit"`
	BounceRate             int64            `json:"bounceRate" bson:"bounceRate"`
	EstimatedMonthlyVisits map[string]int64 `json:"estimatedMonthlyVisits,omitempty" bson:"estimatedMonthlyVisits,omitempty"`
}

// SourcesInfo groups traffic source percentages (0-100).
type SourcesInfo struct {
	Direct        int64 `json:"direct" bson:"direct"`
	Search        int64 `json:"search" bson:"search"`
	Social        int64 `json:"social" bson:"social"`
	Referrals     int64 `json:"referrals" bson:"referrals"`
	PaidReferrals int64 `json:"paidReferrals" bson:"paidReferrals"`
	Mail          int64 `json:"mail" bson:"mail"`
}

// CountryShare is one entry of the normalized top-countries list.
// VisitsShare is a percentage, EstimatedVisits an absolute count.
type CountryShare struct {
	CountryCode     string `json:"countryCode" bson:"countryCode"`
	CountryName     string `json:"countryName" bson:"countryName"`
	VisitsShare     int64  `json:"visitsShare" bson:"visitsShare"`
	EstimatedVisits int64  `json:"estimatedVisits" bson:"estimatedVisits"`
}

// GeographyInfo groups the geographic distribution of traffic.
type GeographyInfo struct {
	TopCountries []CountryShare `json:"topCountries" bson:"topCountries"`
}

// KeywordInfo is one entry of the normalized top-keywords list.
type KeywordInfo struct {
	Name           string  `json:"name" bson:"name"`
	EstimatedValue float64 `json:"estimatedValue" bson:"estimatedValue"`
	Volume         int64   `json:"volume" bson:"volume"`
}

// KeywordsInfo groups the search keyword data.
type KeywordsInfo struct {
	TopKeywords []KeywordInfo `json:"topKeywords" bson:"topKeywords"`
}

// TrafficAnalysis is the normalized analysis assembled from a provider
// payload, with the insights derived for the BDR.
type TrafficAnalysis struct {
	Basic       BasicInfo     `json:"basic" bson:"basic"`
	Ranking     RankingInfo   `json:"ranking" bson:"ranking"`
	Traffic     TrafficInfo   `json:"traffic" bson:"traffic"`
	Sources     SourcesInfo   `json:"sources" bson:"sources"`
	Geography   GeographyInfo `json:"geography" bson:"geography"`
	Keywords    KeywordsInfo  `json:"keywords" bson:"keywords"`
	BdrInsights []Insight     `json:"bdrInsights" bson:"bdrInsights"`
}

// BusinessEstimates projects shipping-relevant business figures from the
// analyzed traffic.
type BusinessEstimates struct {
	EstimatedMonthlyVisits  int64    `json:"estimatedMonthlyVisits" bson:"estimatedMonthlyVisits"`
	ConversionRate          float64  `json:"conversionRate" bson:"conversionRate"`                   // percent
	MonthlyOrders           int64    `json:"monthlyOrders" bson:"monthlyOrders"`                     // visits x conversion
	MonthlyShipments        int64    `json:"monthlyShipments" bson:"monthlyShipments"`               // orders + returns/splits
	AverageOrderValue       float64  `json:"averageOrderValue" bson:"averageOrderValue"`             // EUR
	EstimatedMonthlyRevenue float64  `json:"estimatedMonthlyRevenue" bson:"estimatedMonthlyRevenue"` // EUR
	CurrentShippingCosts    float64  `json:"currentShippingCosts" bson:"currentShippingCosts"`       // EUR, estimated
	MainDestinations        []string `json:"mainDestinations" bson:"mainDestinations"`               // top country codes
	CompanySize             string   `json:"companySize" bson:"companySize"`                         // startup .. enterprise
}

// Company size tiers derived from monthly traffic.
const (
	SizeStartup    = "startup"
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeEnterprise = "enterprise"
)
