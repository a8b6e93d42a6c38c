package enrichsvc

import (
	"math"

	enrichmodels "github.com/Mbenve9198/bdr-tool-backend/internal/api/enrichment/models"
)

// Estimation model for an average e-commerce shop.
const (
	conversionRate    = 0.02 // visits that become orders
	shipmentsPerOrder = 1.05 // returns and split shipments
	costPerShipment   = 3.50 // EUR
	averageOrderValue = 75.0 // EUR
	maxDestinations   = 3
)

// Company size thresholds on monthly visits.
const (
	sizeEnterpriseFloor = 500000
	sizeLargeFloor      = 100000
	sizeMediumFloor     = 10000
	sizeSmallFloor      = 1000
)

// EstimateBusiness projects shipping-relevant business figures from the
// normalized analysis.
func EstimateBusiness(analysis *enrichmodels.TrafficAnalysis) *enrichmodels.BusinessEstimates {
	visits := analysis.Traffic.TotalVisits

	orders := roundInt(float64(visits) * conversionRate)
	shipments := roundInt(float64(orders) * shipmentsPerOrder)
	shippingCosts := math.Round(float64(shipments) * costPerShipment)
	revenue := float64(orders) * averageOrderValue

	destinations := []string{}
	for i, country := range analysis.Geography.TopCountries {
		if i >= maxDestinations {
			break
		}
		destinations = append(destinations, country.CountryCode)
	}

	return &enrichmodels.BusinessEstimates{
		EstimatedMonthlyVisits:  visits,
		ConversionRate:          conversionRate * 100,
		MonthlyOrders:           orders,
		MonthlyShipments:        shipments,
		AverageOrderValue:       averageOrderValue,
		EstimatedMonthlyRevenue: revenue,
		CurrentShippingCosts:    shippingCosts,
		MainDestinations:        destinations,
		CompanySize:             companySizeForVisits(visits),
	}
}

// companySizeForVisits maps monthly visits to a size tier.
func companySizeForVisits(visits int64) string {
	switch {
	case visits > sizeEnterpriseFloor:
		return enrichmodels.SizeEnterprise
	case visits > sizeLargeFloor:
		return enrichmodels.SizeLarge
	case visits > sizeMediumFloor:
		return enrichmodels.SizeMedium
	case visits > sizeSmallFloor:
		return enrichmodels.SizeSmall
	default:
		return enrichmodels.SizeStartup
	}
}
