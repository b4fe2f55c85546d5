package split

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/domain/entity"
)

func participant(userID uuid.UUID) *entity.HangoutParticipant {
	return &entity.HangoutParticipant{ID: uuid.New(), UserID: userID}
}

func expense(paidBy uuid.UUID, amount int64) *entity.HangoutExpense {
	return &entity.HangoutExpense{
		ID:       uuid.New(),
		PaidByID: paidBy,
		Amount:   decimal.NewFromInt(amount),
	}
}

func hangout(ownerID uuid.UUID, method entity.SplitMethod) *entity.Hangout {
	return &entity.Hangout{ID: uuid.New(), OwnerID: ownerID, SplitMethod: method}
}

func TestSummarize_EmptyExpenseList(t *testing.T) {
	owner := uuid.New()
	participants := []*entity.HangoutParticipant{participant(owner), participant(uuid.New())}

	s := Summarize(hangout(owner, entity.SplitMethodEqual), participants, nil)

	if !s.Total.IsZero() {
		t.Errorf("expected total 0, got %s", s.Total)
	}
	if !s.PerPerson.IsZero() {
		t.Errorf("expected per-person 0, got %s", s.PerPerson)
	}
	for userID, share := range s.Shares {
		if !share.IsZero() {
			t.Errorf("expected zero share for %s, got %s", userID, share)
		}
	}
}

func TestOwedShares_Equal(t *testing.T) {
	owner := uuid.New()
	other1, other2 := uuid.New(), uuid.New()
	participants := []*entity.HangoutParticipant{
		participant(owner), participant(other1), participant(other2),
	}
	expenses := []*entity.HangoutExpense{
		expense(owner, 30000),
		expense(other1, 60000),
	}

	s := Summarize(hangout(owner, entity.SplitMethodEqual), participants, expenses)

	if want := decimal.NewFromInt(90000); !s.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, s.Total)
	}

	each := decimal.NewFromInt(30000)
	sum := decimal.Zero
	for userID, share := range s.Shares {
		if !share.Equal(each) {
			t.Errorf("expected share %s for %s, got %s", each, userID, share)
		}
		sum = sum.Add(share)
	}

	// Sum of shares equals the total within tolerance.
	if diff := sum.Sub(s.Total).Abs(); diff.GreaterThan(decimal.NewFromFloat(0.01)) {
		t.Errorf("shares sum %s deviates from total %s", sum, s.Total)
	}

	if !s.PerPerson.Equal(each) {
		t.Errorf("expected per-person %s, got %s", each, s.PerPerson)
	}
}

func TestOwedShares_Treat(t *testing.T) {
	owner := uuid.New()
	u2, u3 := uuid.New(), uuid.New()
	participants := []*entity.HangoutParticipant{
		participant(owner), participant(u2), participant(u3),
	}
	expenses := []*entity.HangoutExpense{expense(owner, 45000)}

	shares := OwedShares(entity.SplitMethodTreat, owner, Total(expenses), participants)

	if want := decimal.NewFromInt(45000); !shares[owner].Equal(want) {
		t.Errorf("expected owner share %s, got %s", want, shares[owner])
	}
	for _, userID := range []uuid.UUID{u2, u3} {
		if !shares[userID].IsZero() {
			t.Errorf("expected zero share for non-owner %s, got %s", userID, shares[userID])
		}
	}
}

func TestOwedShares_Percentage(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	sixty, forty := 60.0, 40.0

	t.Run("splits by configured percentages", func(t *testing.T) {
		p1 := participant(owner)
		p1.SharePercentage = &sixty
		p2 := participant(other)
		p2.SharePercentage = &forty

		shares := OwedShares(entity.SplitMethodPercentage, owner, decimal.NewFromInt(100000), []*entity.HangoutParticipant{p1, p2})

		if want := decimal.NewFromInt(60000); !shares[owner].Equal(want) {
			t.Errorf("expected %s, got %s", want, shares[owner])
		}
		if want := decimal.NewFromInt(40000); !shares[other].Equal(want) {
			t.Errorf("expected %s, got %s", want, shares[other])
		}
	})

	t.Run("missing percentage owes zero", func(t *testing.T) {
		p1 := participant(owner)
		p1.SharePercentage = &sixty
		p2 := participant(other) // no percentage configured

		shares := OwedShares(entity.SplitMethodPercentage, owner, decimal.NewFromInt(100000), []*entity.HangoutParticipant{p1, p2})

		if !shares[other].IsZero() {
			t.Errorf("expected zero share without percentage, got %s", shares[other])
		}
	})
}

func TestOwedShares_Manual(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	fixed := decimal.NewFromInt(25000)

	p1 := participant(owner)
	p1.FixedAmount = &fixed
	p2 := participant(other) // no fixed amount configured

	shares := OwedShares(entity.SplitMethodManual, owner, decimal.NewFromInt(90000), []*entity.HangoutParticipant{p1, p2})

	if !shares[owner].Equal(fixed) {
		t.Errorf("expected fixed amount %s, got %s", fixed, shares[owner])
	}
	if !shares[other].IsZero() {
		t.Errorf("expected zero share without fixed amount, got %s", shares[other])
	}
}

func TestOwedShares_UnknownMethod(t *testing.T) {
	owner := uuid.New()
	participants := []*entity.HangoutParticipant{participant(owner), participant(uuid.New())}

	shares := OwedShares(entity.SplitMethod("unknown"), owner, decimal.NewFromInt(50000), participants)

	for userID, share := range shares {
		if !share.IsZero() {
			t.Errorf("expected zero share under unknown method for %s, got %s", userID, share)
		}
	}
}

func TestTotal_Monotonic(t *testing.T) {
	owner := uuid.New()
	expenses := []*entity.HangoutExpense{expense(owner, 30000)}

	before := Total(expenses)
	expenses = append(expenses, expense(owner, 12500))
	after := Total(expenses)

	if want := before.Add(decimal.NewFromInt(12500)); !after.Equal(want) {
		t.Errorf("expected total to grow by exactly the new amount: %s -> %s", before, after)
	}
	if after.LessThan(before) {
		t.Error("adding an expense decreased the total")
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	h := hangout(owner, entity.SplitMethodEqual)
	participants := []*entity.HangoutParticipant{participant(owner), participant(other)}
	expenses := []*entity.HangoutExpense{expense(owner, 30000), expense(other, 60000)}

	first := Summarize(h, participants, expenses)
	second := Summarize(h, participants, expenses)

	if !first.Total.Equal(second.Total) {
		t.Errorf("totals differ: %s vs %s", first.Total, second.Total)
	}
	for userID, share := range first.Shares {
		if !share.Equal(second.Shares[userID]) {
			t.Errorf("share for %s differs: %s vs %s", userID, share, second.Shares[userID])
		}
	}
}

func TestSummarize_Balances(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	participants := []*entity.HangoutParticipant{participant(owner), participant(other)}
	expenses := []*entity.HangoutExpense{expense(owner, 80000)}

	s := Summarize(hangout(owner, entity.SplitMethodEqual), participants, expenses)

	ownerBal := s.Balances[owner]
	if want := decimal.NewFromInt(80000); !ownerBal.Paid.Equal(want) {
		t.Errorf("expected owner paid %s, got %s", want, ownerBal.Paid)
	}
	if want := decimal.NewFromInt(40000); !ownerBal.Net.Equal(want) {
		t.Errorf("expected owner net %s, got %s", want, ownerBal.Net)
	}

	otherBal := s.Balances[other]
	if !otherBal.Paid.IsZero() {
		t.Errorf("expected other paid 0, got %s", otherBal.Paid)
	}
	if want := decimal.NewFromInt(-40000); !otherBal.Net.Equal(want) {
		t.Errorf("expected other net %s, got %s", want, otherBal.Net)
	}
}

func TestSummarize_DegenerateInput(t *testing.T) {
	t.Run("nil hangout", func(t *testing.T) {
		s := Summarize(nil, nil, nil)
		if !s.Total.IsZero() || !s.PerPerson.IsZero() {
			t.Errorf("expected zero summary, got total=%s perPerson=%s", s.Total, s.PerPerson)
		}
	})

	t.Run("missing participant list divides by one", func(t *testing.T) {
		owner := uuid.New()
		expenses := []*entity.HangoutExpense{expense(owner, 45000)}
		s := Summarize(hangout(owner, entity.SplitMethodEqual), nil, expenses)
		if want := decimal.NewFromInt(45000); !s.PerPerson.Equal(want) {
			t.Errorf("expected per-person %s with no participants, got %s", want, s.PerPerson)
		}
	})

	t.Run("negative amount counts as zero", func(t *testing.T) {
		owner := uuid.New()
		expenses := []*entity.HangoutExpense{
			expense(owner, 30000),
			expense(owner, -5000),
		}
		if want := decimal.NewFromInt(30000); !Total(expenses).Equal(want) {
			t.Errorf("expected total %s, got %s", want, Total(expenses))
		}
	})
}
