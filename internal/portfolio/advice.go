package portfolio

// Allocation recommendations by risk level. Any value outside the enum,
// including "high", lands on the aggressive mix; the fulfillment phase trusts
// prior dialog-turn validation and never rejects here.
const (
	adviceNone    = "100% bonds (AGG), 0% equities (SPY)"
	adviceLow     = "60% bonds (ACG), 40% equities (SPY)"
	adviceMedium  = "40% bonds (ACG), 60% equities (SPY)"
	adviceDefault = "20% bonds (ACG), 80% equities (SPY)"
)

// Advice maps a risk level to its fixed allocation recommendation.
func Advice(riskLevel string) string {
	switch riskLevel {
	case "none":
		return adviceNone
	case "low":
		return adviceLow
	case "medium":
		return adviceMedium
	default:
		return adviceDefault
	}
}
