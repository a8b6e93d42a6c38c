package models

// Score bonus per company size tier.
var sizeScoreBonus = map[string]int{
	"startup":    5,
	"small":      10,
	"medium":     15,
	"large":      20,
	"enterprise": 25,
}

// ComputeScore derives the prospect priority score (0-100).
//
// Base 50, plus contact completeness (email, phone, website), shipping
// volume, company size and interaction history. Positive interactions raise
// the score, negative ones lower it. The result is clamped to [0,100].
func (p *Prospect) ComputeScore() int {
	score := 50

	if p.Contact.Email != "" {
		score += 10
	}
	if p.Contact.Phone != "" {
		score += 10
	}
	if p.BusinessInfo.MonthlyShipments > 0 {
		score += 15
	}
	if p.Company.Website != "" || p.Website != "" {
		score += 5
	}

	score += sizeScoreBonus[p.Company.Size]

	for _, it := range p.Interactions {
		switch it.Outcome {
		case OutcomePositive:
			score += 5
		case OutcomeNegative:
			score -= 10
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
