// Package portfolio implements the recommendPortfolio intent: slot
// validation during dialog turns and a canned allocation recommendation at
// fulfillment.
package portfolio

import (
	"strconv"

	"github.com/fintwin/lexhook/internal/lex"
)

// Slot names of the recommendPortfolio intent.
const (
	SlotFirstName        = "firstname"
	SlotAge              = "age"
	SlotInvestmentAmount = "investmentAmount"
	SlotRiskLevel        = "riskLevel"
)

// Validation bounds.
const (
	minAge              = 0
	maxAge              = 65
	minInvestmentAmount = 5000
)

// Re-prompt messages. The age copy says "between 1 and 65" while the check
// accepts 0; the mismatch ships in production today and stays until product
// clarifies which side is right.
const (
	msgInvalidAge       = "You entered an age that does not fall within the age range for this utility. Please enter an age between 1 and 65."
	msgInvalidAmount    = "You must enter an investment amount greater than or equal to $5000."
	msgInvalidRiskLevel = "You did not enter a valid risk level for this utility. Please enter either none or low or medium or high."
)

// riskLevels is the accepted enum, matched case-sensitively.
var riskLevels = map[string]struct{}{
	"none":   {},
	"low":    {},
	"medium": {},
	"high":   {},
}

// Result reports the first slot violation found, if any. ViolatedSlot and
// Message are both set iff Valid is false.
type Result struct {
	Valid        bool
	ViolatedSlot string
	Message      *lex.Message
}

func invalid(slot, message string) Result {
	return Result{ViolatedSlot: slot, Message: lex.PlainText(message)}
}

// parseInt converts a slot value to an integer. A failed parse is folded into
// the slot's range violation rather than reported separately, matching the
// prompts users see today.
func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// Validate checks the three constrained slots in fixed order (age,
// investmentAmount, riskLevel) and short-circuits on the first violation.
// Unfilled (nil) slots are skipped: the platform is still mid-elicitation.
func Validate(age, investmentAmount, riskLevel *string) Result {
	if age != nil {
		n, ok := parseInt(*age)
		if !ok || n < minAge || n > maxAge {
			return invalid(SlotAge, msgInvalidAge)
		}
	}

	if investmentAmount != nil {
		n, ok := parseInt(*investmentAmount)
		if !ok || n < minInvestmentAmount {
			return invalid(SlotInvestmentAmount, msgInvalidAmount)
		}
	}

	if riskLevel != nil {
		if _, ok := riskLevels[*riskLevel]; !ok {
			return invalid(SlotRiskLevel, msgInvalidRiskLevel)
		}
	}

	return Result{Valid: true}
}
