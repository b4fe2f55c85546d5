// Package split implements the share and settlement calculations for
// hangouts. Every function is a pure computation over the resolved
// participant and expense lists: no I/O, no stored state, and no error
// returns. Degenerate input (nil lists, unknown split methods, missing
// percentage or fixed-amount overrides) degrades to zero-valued results so
// render paths consuming the engine never fail on partial data.
package split

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/domain/entity"
)

// Total sums the amounts of all expenses. Negative amounts are rejected
// before they reach the engine; if one slips through it counts as zero so
// the total stays monotonic in the expense list.
func Total(expenses []*entity.HangoutExpense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e == nil || e.Amount.IsNegative() {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

// PerPerson returns the descriptive "per person" average: total divided by
// the participant count, floored at 1. It is the same figure for every
// split method and distinct from the per-participant owed share.
func PerPerson(total decimal.Decimal, participantCount int) decimal.Decimal {
	if participantCount < 1 {
		participantCount = 1
	}
	return total.Div(decimal.NewFromInt(int64(participantCount)))
}

// OwedShares computes each participant's owed share of the hangout total
// under the given split method:
//
//   - equal: total / participant count, the same for everyone
//   - treat: the owner owes the full total, everyone else owes zero
//   - percentage: total * sharePercentage/100; no percentage means zero
//   - manual: the participant's fixed amount, or zero when unset
//
// Percentage and manual overrides are not validated against 100% or the
// total; an unknown method yields zero for every participant.
func OwedShares(method entity.SplitMethod, ownerID uuid.UUID, total decimal.Decimal, participants []*entity.HangoutParticipant) map[uuid.UUID]decimal.Decimal {
	shares := make(map[uuid.UUID]decimal.Decimal, len(participants))
	for _, p := range participants {
		if p == nil {
			continue
		}
		shares[p.UserID] = decimal.Zero
	}

	switch method {
	case entity.SplitMethodEqual:
		count := len(shares)
		if count < 1 {
			count = 1
		}
		each := total.Div(decimal.NewFromInt(int64(count)))
		for userID := range shares {
			shares[userID] = each
		}

	case entity.SplitMethodTreat:
		if _, ok := shares[ownerID]; ok {
			shares[ownerID] = total
		}

	case entity.SplitMethodPercentage:
		for _, p := range participants {
			if p == nil || p.SharePercentage == nil {
				continue
			}
			pct := decimal.NewFromFloat(*p.SharePercentage)
			shares[p.UserID] = total.Mul(pct).Div(decimal.NewFromInt(100))
		}

	case entity.SplitMethodManual:
		for _, p := range participants {
			if p == nil || p.FixedAmount == nil {
				continue
			}
			shares[p.UserID] = *p.FixedAmount
		}
	}

	return shares
}

// PaidTotals sums each payer's expense amounts. Every expense is credited
// entirely to its payer; a single expense is never split across payers.
func PaidTotals(expenses []*entity.HangoutExpense) map[uuid.UUID]decimal.Decimal {
	paid := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range expenses {
		if e == nil || e.Amount.IsNegative() {
			continue
		}
		paid[e.PaidByID] = paid[e.PaidByID].Add(e.Amount)
	}
	return paid
}

// Balance is one participant's position toward the hangout total.
type Balance struct {
	Owed decimal.Decimal // share of the total under the active split method
	Paid decimal.Decimal // sum of expenses this participant paid for
	Net  decimal.Decimal // Paid - Owed; positive means the group owes them
}

// Summary is the full derived state for one hangout.
type Summary struct {
	Total            decimal.Decimal
	PerPerson        decimal.Decimal
	ParticipantCount int
	ExpenseCount     int
	Shares           map[uuid.UUID]decimal.Decimal
	Balances         map[uuid.UUID]Balance
}

// Summarize derives the complete settlement view for a hangout from its
// resolved participants and expenses. It is recomputed from the live lists
// on every read; nothing here is persisted.
func Summarize(h *entity.Hangout, participants []*entity.HangoutParticipant, expenses []*entity.HangoutExpense) Summary {
	total := Total(expenses)

	var method entity.SplitMethod
	var ownerID uuid.UUID
	if h != nil {
		method = h.SplitMethod
		ownerID = h.OwnerID
	}

	shares := OwedShares(method, ownerID, total, participants)
	paid := PaidTotals(expenses)

	balances := make(map[uuid.UUID]Balance, len(shares))
	for userID, owed := range shares {
		p := paid[userID]
		balances[userID] = Balance{
			Owed: owed,
			Paid: p,
			Net:  p.Sub(owed),
		}
	}

	return Summary{
		Total:            total,
		PerPerson:        PerPerson(total, len(participants)),
		ParticipantCount: len(participants),
		ExpenseCount:     len(expenses),
		Shares:           shares,
		Balances:         balances,
	}
}
