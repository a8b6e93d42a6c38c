package knowledgesvc

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	knowledgemodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/knowledge/models"
	"github.com/Mbenve9198/bdr-tool-backend/internal/common"
)

// fallbackDeliveryTime is used when a carrier/zone/service combination has no
// entry in the delivery matrix.
const fallbackDeliveryTime = "2-5 giorni lavorativi"

// euCountryNames lists destination spellings (Italian and English) for the EU
// zone. Everything not Italian and not listed here is International.
var euCountryNames = []string{"francia", "germany", "germania", "spagna", "spain", "france"}

var italyNames = []string{"italia", "italy", "it"}

// deliveryTimes is the delivery estimate matrix: carrier -> zone -> service.
var deliveryTimes = map[string]map[string]map[string]string{
	"DHL": {
		knowledgemodels.ZoneItaly: {
			knowledgemodels.ServiceStandard: "1-2 giorni lavorativi",
			knowledgemodels.ServiceExpress:  "1 giorno lavorativo",
		},
		knowledgemodels.ZoneEU: {
			knowledgemodels.ServiceStandard: "2-3 giorni lavorativi",
			knowledgemodels.ServiceExpress:  "1-2 giorni lavorativi",
		},
		knowledgemodels.ZoneInternational: {
			knowledgemodels.ServiceStandard: "3-5 giorni lavorativi",
			knowledgemodels.ServiceExpress:  "2-3 giorni lavorativi",
		},
	},
	"UPS": {
		knowledgemodels.ZoneItaly: {
			knowledgemodels.ServiceStandard: "1-3 giorni lavorativi",
			knowledgemodels.ServiceExpress:  "1 giorno lavorativo",
		},
		knowledgemodels.ZoneEU: {
			knowledgemodels.ServiceStandard: "2-4 giorni lavorativi",
			knowledgemodels.ServiceExpress:  "1-2 giorni lavorativi",
		},
		knowledgemodels.ZoneInternational: {
			knowledgemodels.ServiceStandard: "4-6 giorni lavorativi",
			knowledgemodels.ServiceExpress:  "2-4 giorni lavorativi",
		},
	},
}

// DetermineZone maps a user-entered destination to a shipping zone. The match
// is by substring, so "Milano, Italia" or "Lyon, France" resolve too.
func DetermineZone(destination string) string {
	d := strings.ToLower(strings.TrimSpace(destination))
	for _, name := range italyNames {
		if strings.Contains(d, name) {
			return knowledgemodels.ZoneItaly
		}
	}
	for _, name := range euCountryNames {
		if strings.Contains(d, name) {
			return knowledgemodels.ZoneEU
		}
	}
	return knowledgemodels.ZoneInternational
}

// DeliveryTimeFor returns the delivery estimate for a carrier/zone/service
// combination, falling back to a generic estimate.
func DeliveryTimeFor(carrier, zone, service string) string {
	if zones, ok := deliveryTimes[carrier]; ok {
		if services, ok := zones[zone]; ok {
			if estimate, ok := services[service]; ok {
				return estimate
			}
		}
	}
	return fallbackDeliveryTime
}

// RateCardPrice applies the rate card formula to a weight.
func RateCardPrice(info *knowledgemodels.CarrierInfo, weight float64) float64 {
	price := info.BasePrice + weight*info.WeightMultiplier
	return math.Round(price*100) / 100
}

// RateOption is one priced carrier option.
type RateOption struct {
	Carrier      string  `json:"carrier"`
	Service      string  `json:"service"`
	Zone         string  `json:"zone"`
	Price        float64 `json:"price"`
	DeliveryTime string  `json:"deliveryTime"`
	Source       string  `json:"source"` // knowledge item title
}

// RateCalculation is the outcome of a rate calculation.
type RateCalculation struct {
	Destination        string       `json:"destination"`
	Zone               string       `json:"zone"`
	Weight             float64      `json:"weight"`
	Service            string       `json:"service"`
	Options            []RateOption `json:"options"`
	RecommendedCarrier string       `json:"recommendedCarrier,omitempty"`
}

// ListRates returns the active carrier rate cards, optionally filtered by
// carrier (case-insensitive), zone and service.
func (s *KnowledgeService) ListRates(ctx context.Context, carrier, zone, service string) ([]knowledgemodels.KnowledgeItem, error) {
	filter := bson.M{
		"isActive": true,
		"category": knowledgemodels.CategoryCarrierRates,
	}
	if carrier != "" {
		filter["carrierInfo.carrier"] = bson.M{"$regex": carrier, "$options": "i"}
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "carrierInfo.carrier", Value: 1}})
	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	// zone and service are nested enum fields; filtering in memory keeps the
	// query simple
	filtered := []knowledgemodels.KnowledgeItem{}
	for _, item := range items {
		if item.CarrierInfo == nil {
			continue
		}
		if zone != "" && item.CarrierInfo.Zone != zone {
			continue
		}
		if service != "" && item.CarrierInfo.Service != service {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

// CalculateRates prices all rate cards matching the destination zone and
// service, cheapest first.
func (s *KnowledgeService) CalculateRates(ctx context.Context, destination string, weight float64, service string) (*RateCalculation, error) {
	if service == "" {
		service = knowledgemodels.ServiceStandard
	}
	zone := DetermineZone(destination)

	cards, err := s.ListRates(ctx, "", zone, service)
	if err != nil {
		return nil, err
	}

	options := []RateOption{}
	for _, card := range cards {
		info := card.CarrierInfo
		if info.MaxWeight > 0 && weight > info.MaxWeight {
			continue
		}
		deliveryTime := info.DeliveryTime
		if deliveryTime == "" {
			deliveryTime = DeliveryTimeFor(info.Carrier, zone, service)
		}
		options = append(options, RateOption{
			Carrier:      info.Carrier,
			Service:      service,
			Zone:         zone,
			Price:        RateCardPrice(info, weight),
			DeliveryTime: deliveryTime,
			Source:       card.Title,
		})
	}

	sort.Slice(options, func(i, j int) bool { return options[i].Price < options[j].Price })

	result := &RateCalculation{
		Destination: destination,
		Zone:        zone,
		Weight:      weight,
		Service:     service,
		Options:     options,
	}
	if len(options) > 0 {
		result.RecommendedCarrier = options[0].Carrier
	}
	return result, nil
}

// CarrierComparison is the outcome of a carrier comparison.
type CarrierComparison struct {
	Destination string       `json:"destination"`
	Zone        string       `json:"zone"`
	Weight      float64      `json:"weight"`
	Options     []RateOption `json:"options"`
	BestOption  *RateOption  `json:"bestOption,omitempty"`
	Savings     float64      `json:"savings"` // most vs least expensive option
}

// CompareCarriers prices the standard service of the requested carriers for
// one destination and weight, and reports the possible savings.
func (s *KnowledgeService) CompareCarriers(ctx context.Context, carriers []string, destination string, weight float64) (*CarrierComparison, error) {
	if len(carriers) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput,
			"At least one carrier is required", common.StatusBadRequest, nil)
	}

	calculation, err := s.CalculateRates(ctx, destination, weight, knowledgemodels.ServiceStandard)
	if err != nil {
		return nil, err
	}

	options, best, savings := SelectCarrierOptions(calculation.Options, carriers)

	return &CarrierComparison{
		Destination: destination,
		Zone:        calculation.Zone,
		Weight:      weight,
		Options:     options,
		BestOption:  best,
		Savings:     savings,
	}, nil
}

// SelectCarrierOptions keeps the options of the requested carriers
// (case-insensitive) and reports the best one plus the savings over the most
// expensive kept option. Options must already be sorted cheapest first.
func SelectCarrierOptions(all []RateOption, carriers []string) ([]RateOption, *RateOption, float64) {
	requested := map[string]bool{}
	for _, carrier := range carriers {
		requested[strings.ToLower(strings.TrimSpace(carrier))] = true
	}

	options := []RateOption{}
	for _, option := range all {
		if requested[strings.ToLower(option.Carrier)] {
			options = append(options, option)
		}
	}

	if len(options) == 0 {
		return options, nil, 0
	}
	best := options[0]
	savings := math.Round((options[len(options)-1].Price-best.Price)*100) / 100
	return options, &best, savings
}

// FormatRatesTable renders rate cards as a plain text table for embedding in
// emails and scripts.
func FormatRatesTable(cards []knowledgemodels.KnowledgeItem, weight float64) string {
	if len(cards) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Corriere | Zona | Servizio | Prezzo | Consegna\n")
	for _, card := range cards {
		info := card.CarrierInfo
		if info == nil {
			continue
		}
		deliveryTime := info.DeliveryTime
		if deliveryTime == "" {
			deliveryTime = DeliveryTimeFor(info.Carrier, info.Zone, info.Service)
		}
		b.WriteString(fmt.Sprintf("%s | %s | %s | %.2f EUR | %s\n",
			info.Carrier, info.Zone, info.Service, RateCardPrice(info, weight), deliveryTime))
	}
	return b.String()
}
