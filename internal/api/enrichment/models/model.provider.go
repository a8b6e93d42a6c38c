// Package models - typed shapes for the traffic enrichment domain: the raw
// provider payload (every field optional) and the normalized analysis built
// from it.
package models

// ProviderRank is a rank value nested in the provider payload.
type ProviderRank struct {
	Rank int64 `json:"rank,omitempty" bson:"rank,omitempty"`
}

// ProviderCountryRank is the country rank block of the provider payload.
type ProviderCountryRank struct {
	Country     string `json:"country,omitempty" bson:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty" bson:"countryCode,omitempty"`
	Rank        int64  `json:"rank,omitempty" bson:"rank,omitempty"`
}

// ProviderCategoryRank is the category rank block of the provider payload.
type ProviderCategoryRank struct {
	Category string `json:"category,omitempty" bson:"category,omitempty"`
	Rank     int64  `json:"rank,omitempty" bson:"rank,omitempty"`
}

// ProviderEngagements holds the engagement metrics of the provider payload.
// Fractions are in [0,1], timeOnSite is in seconds.
type ProviderEngagements struct {
	Visits       float64 `json:"visits,omitempty" bson:"visits,omitempty"`
	TimeOnSite   float64 `json:"timeOnSite,omitempty" bson:"timeOnSite,omitempty"`
	PagePerVisit float64 `json:"pagePerVisit,omitempty" bson:"pagePerVisit,omitempty"`
	BounceRate   float64 `json:"bounceRate,omitempty" bson:"bounceRate,omitempty"`
}

// ProviderTrafficSources holds traffic source fractions in [0,1].
type ProviderTrafficSources struct {
	Direct        float64 `json:"direct,omitempty" bson:"direct,omitempty"`
	Search        float64 `json:"search,omitempty" bson:"search,omitempty"`
	Social        float64 `json:"social,omitempty" bson:"social,omitempty"`
	Referrals     float64 `json:"referrals,omitempty" bson:"referrals,omitempty"`
	PaidReferrals float64 `json:"paidReferrals,omitempty" bson:"paidReferrals,omitempty"`
	Mail          float64 `json:"mail,omitempty" bson:"mail,omitempty"`
}

// ProviderCountry is one entry of the provider's top-countries list.
// VisitsShare is a fraction in [0,1].
type ProviderCountry struct {
	CountryCode string  `json:"countryCode,omitempty" bson:"countryCode,omitempty"`
	CountryName string  `json:"countryName,omitempty" bson:"countryName,omitempty"`
	VisitsShare float64 `json:"visitsShare,omitempty" bson:"visitsShare,omitempty"`
}

// ProviderKeyword is one entry of the provider's top-keywords list.
type ProviderKeyword struct {
	Name           string  `json:"name,omitempty" bson:"name,omitempty"`
	EstimatedValue float64 `json:"estimatedValue,omitempty" bson:"estimatedValue,omitempty"`
	Volume         int64   `json:"volume,omitempty" bson:"volume,omitempty"`
}

// ProviderPayload is the raw dataset item returned by the traffic provider.
// Every nested block is optional; normalization tolerates absence everywhere.
type ProviderPayload struct {
	URL         string `json:"url,omitempty" bson:"url,omitempty"`
	Name        string `json:"name,omitempty" bson:"name,omitempty"`
	Title       string `json:"title,omitempty" bson:"title,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Category    string `json:"category,omitempty" bson:"category,omitempty"`
	ScrapedAt   string `json:"scrapedAt,omitempty" bson:"scrapedAt,omitempty"`

	GlobalRank   *ProviderRank         `json:"globalRank,omitempty" bson:"globalRank,omitempty"`
	CountryRank  *ProviderCountryRank  `json:"countryRank,omitempty" bson:"countryRank,omitempty"`
	CategoryRank *ProviderCategoryRank `json:"categoryRank,omitempty" bson:"categoryRank,omitempty"`

	Engagements            *ProviderEngagements    `json:"engagements,omitempty" bson:"engagements,omitempty"`
	EstimatedMonthlyVisits map[string]int64        `json:"estimatedMonthlyVisits,omitempty" bson:"estimatedMonthlyVisits,omitempty"`
	TrafficSources         *ProviderTrafficSources `json:"trafficSources,omitempty" bson:"trafficSources,omitempty"`
	TopCountries           []ProviderCountry       `json:"topCountries,omitempty" bson:"topCountries,omitempty"`
	TopKeywords            []ProviderKeyword       `json:"topKeywords,omitempty" bson:"topKeywords,omitempty"`
}
