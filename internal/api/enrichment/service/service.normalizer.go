package enrichsvc

import (
	"math"

	enrichmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/models"
)

// maxTopKeywords caps the normalized keyword list.
const maxTopKeywords = 5

// NormalizeSiteData converts a raw provider payload into the normalized
// analysis: seconds to minutes, fractions to percentages, shares to absolute
// visit counts, keywords capped. Every provider block may be missing; absent
// blocks normalize to zero values.
func NormalizeSiteData(p *enrichmodels.ProviderPayload) *enrichmodels.TrafficAnalysis {
	analysis := &enrichmodels.TrafficAnalysis{
		Basic: enrichmodels.BasicInfo{
			URL:         p.URL,
			SiteName:    p.Name,
			Title:       p.Title,
			Description: p.Description,
			Category:    p.Category,
			ScrapedAt:   p.ScrapedAt,
		},
		Ranking: enrichmodels.RankingInfo{
			CountryRank:  p.CountryRank,
			CategoryRank: p.CategoryRank,
		},
		Geography: enrichmodels.GeographyInfo{TopCountries: []enrichmodels.CountryShare{}},
		Keywords:  enrichmodels.KeywordsInfo{TopKeywords: []enrichmodels.KeywordInfo{}},
	}

	if p.GlobalRank != nil {
		analysis.Ranking.GlobalRank = p.GlobalRank.Rank
	}

	var totalVisits float64
	if p.Engagements != nil {
		totalVisits = p.Engagements.Visits
		analysis.Traffic = enrichmodels.TrafficInfo{
			TotalVisits:  roundInt(totalVisits),
			TimeOnSite:   roundInt(p.Engagements.TimeOnSite / 60),
			PagePerVisit: math.Round(p.Engagements.PagePerVisit*10) / 10,
			BounceRate:   roundInt(p.Engagements.BounceRate * 100),
		}
	}
	analysis.Traffic.EstimatedMonthlyVisits = p.EstimatedMonthlyVisits

	if p.TrafficSources != nil {
		analysis.Sources = enrichmodels.SourcesInfo{
			Direct:        roundInt(p.TrafficSources.Direct * 100),
			Search:        roundInt(p.TrafficSources.Search * 100),
			Social:        roundInt(p.TrafficSources.Social * 100),
			Referrals:     roundInt(p.TrafficSources.Referrals * 100),
			PaidReferrals: roundInt(p.TrafficSources.PaidReferrals * 100),
			Mail:          roundInt(p.TrafficSources.Mail * 100),
		}
	}

	for _, country := range p.TopCountries {
		analysis.Geography.TopCountries = append(analysis.Geography.TopCountries, enrichmodels.CountryShare{
			CountryCode:     country.CountryCode,
			CountryName:     country.CountryName,
			VisitsShare:     roundInt(country.VisitsShare * 100),
			EstimatedVisits: roundInt(totalVisits * country.VisitsShare),
		})
	}

	for i, kw := range p.TopKeywords {
		if i >= maxTopKeywords {
			break
		}
		analysis.Keywords.TopKeywords = append(analysis.Keywords.TopKeywords, enrichmodels.KeywordInfo{
			Name:           kw.Name,
			EstimatedValue: kw.EstimatedValue,
			Volume:         kw.Volume,
		})
	}

	analysis.BdrInsights = deriveInsights(p, analysis.Traffic.TotalVisits)
	return analysis
}

func roundInt(f float64) int64 {
	return int64(math.Round(f))
}
