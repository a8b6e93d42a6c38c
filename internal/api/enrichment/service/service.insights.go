package enrichsvc

import (
	"fmt"
	"strings"

	enrichmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/models"
)

// Insight thresholds.
const (
	volumeEnterprise = 100000 // monthly visits
	volumeMidMarket  = 10000
	volumeEntryLevel = 1000

	intlShareFloor   = 0.05 // a country counts as significant above 5% share
	intlStrongFloor  = 3    // countries for a strong international presence
	intlPresentFloor = 1

	engagedBounceCeil = 0.4
	engagedPagesFloor = 3.0
)

// deriveInsights builds the BDR-facing reading of the traffic data. The
// volume tiers are exclusive; the other rules are independent.
func deriveInsights(p *enrichmodels.ProviderPayload, totalVisits int64) []enrichmodels.Insight {
	insights := []enrichmodels.Insight{}

	switch {
	case totalVisits > volumeEnterprise:
		insights = append(insights, enrichmodels.Insight{
			Type:       enrichmodels.InsightTrafficVolume,
			Message:    fmt.Sprintf("Sito ad alto traffico: %d visite mensili. Potenziale cliente enterprise.", totalVisits),
			Priority:   enrichmodels.PriorityHigh,
			Actionable: "Prioritizza questo prospect: i volumi di spedizione saranno elevati",
		})
	case totalVisits > volumeMidMarket:
		insights = append(insights, enrichmodels.Insight{
			Type:       enrichmodels.InsightTrafficVolume,
			Message:    fmt.Sprintf("Buon volume di traffico: %d visite mensili. Potenziale mid-market.", totalVisits),
			Priority:   enrichmodels.PriorityMedium,
			Actionable: "Proponi un piano con tariffe scalabili sul volume",
		})
	case totalVisits > volumeEntryLevel:
		insights = append(insights, enrichmodels.Insight{
			Type:       enrichmodels.InsightTrafficVolume,
			Message:    fmt.Sprintf("Traffico contenuto: %d visite mensili. Potenziale entry-level.", totalVisits),
			Priority:   enrichmodels.PriorityLow,
			Actionable: "Proponi il piano base, con margine di crescita",
		})
	}

	intlCountries := 0
	for _, country := range p.TopCountries {
		if country.VisitsShare > intlShareFloor && country.CountryCode != "IT" {
			intlCountries++
		}
	}
	if intlCountries > intlStrongFloor {
		insights = append(insights, enrichmodels.Insight{
			Type:       enrichmodels.InsightInternationalTraffic,
			Message:    fmt.Sprintf("Forte presenza internazionale: %d paesi con traffico significativo.", intlCountries),
			Priority:   enrichmodels.PriorityHigh,
			Actionable: "Punta sulle spedizioni internazionali e sui listini multi-paese",
		})
	} else if intlCountries > intlPresentFloor {
		insights = append(insights, enrichmodels.Insight{
			Type:       enrichmodels.InsightInternationalTraffic,
			Message:    fmt.Sprintf("Presenza internazionale: %d paesi esteri con traffico significativo.", intlCountries),
			Priority:   enrichmodels.PriorityMedium,
			Actionable: "Valuta opzioni di spedizione internazionale",
		})
	}

	if p.Engagements != nil &&
		p.Engagements.BounceRate < engagedBounceCeil &&
		p.Engagements.PagePerVisit > engagedPagesFloor {
		insights = append(insights, enrichmodels.Insight{
			Type:       enrichmodels.InsightEngagement,
			Message:    "Utenti molto coinvolti: bounce rate basso e molte pagine per visita.",
			Priority:   enrichmodels.PriorityMedium,
			Actionable: "Il sito converte bene, le stime sugli ordini sono affidabili",
		})
	}

	if strings.Contains(strings.ToLower(p.Category), "ecommerce") {
		insights = append(insights, enrichmodels.Insight{
			Type:       enrichmodels.InsightBusinessType,
			Message:    "Sito e-commerce confermato dalla categoria del provider.",
			Priority:   enrichmodels.PriorityHigh,
			Actionable: "Prospect in target: proponi una demo della piattaforma",
		})
	}

	return insights
}
