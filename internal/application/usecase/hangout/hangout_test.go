// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// fakeHangoutRepo is an in-memory HangoutRepository for use case tests.
type fakeHangoutRepo struct {
	hangouts     map[uuid.UUID]*entity.Hangout
	participants map[uuid.UUID]*entity.HangoutParticipant
	expenses     map[uuid.UUID]*entity.HangoutExpense
}

func newFakeHangoutRepo() *fakeHangoutRepo {
	return &fakeHangoutRepo{
		hangouts:     make(map[uuid.UUID]*entity.Hangout),
		participants: make(map[uuid.UUID]*entity.HangoutParticipant),
		expenses:     make(map[uuid.UUID]*entity.HangoutExpense),
	}
}

func (f *fakeHangoutRepo) CreateHangout(_ context.Context, h *entity.Hangout) error {
	f.hangouts[h.ID] = h
	return nil
}

func (f *fakeHangoutRepo) FindHangoutByID(_ context.Context, id uuid.UUID) (*entity.Hangout, error) {
	return f.hangouts[id], nil
}

func (f *fakeHangoutRepo) FindHangoutByJoinCode(_ context.Context, joinCode string) (*entity.Hangout, error) {
	for _, h := range f.hangouts {
		if h.JoinCode == joinCode && h.IsActive {
			return h, nil
		}
	}
	return nil, nil
}

func (f *fakeHangoutRepo) FindHangoutsByUserID(_ context.Context, userID uuid.UUID) ([]*entity.HangoutListItem, error) {
	var items []*entity.HangoutListItem
	for _, h := range f.hangouts {
		member := h.OwnerID == userID
		for _, p := range f.participants {
			if p.HangoutID == h.ID && p.UserID == userID {
				member = true
			}
		}
		if member {
			items = append(items, &entity.HangoutListItem{
				ID: h.ID, Title: h.Title, OwnerID: h.OwnerID,
				IsActive: h.IsActive, IsSettled: h.IsSettled, JoinCode: h.JoinCode,
			})
		}
	}
	return items, nil
}

func (f *fakeHangoutRepo) UpdateHangout(_ context.Context, h *entity.Hangout) error {
	f.hangouts[h.ID] = h
	return nil
}

func (f *fakeHangoutRepo) DeleteHangout(_ context.Context, id uuid.UUID) error {
	delete(f.hangouts, id)
	return nil
}

func (f *fakeHangoutRepo) ExistsByJoinCode(_ context.Context, joinCode string) (bool, error) {
	for _, h := range f.hangouts {
		if h.JoinCode == joinCode && h.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHangoutRepo) CreateParticipant(_ context.Context, p *entity.HangoutParticipant) error {
	f.participants[p.ID] = p
	return nil
}

func (f *fakeHangoutRepo) FindParticipantByID(_ context.Context, id uuid.UUID) (*entity.HangoutParticipant, error) {
	return f.participants[id], nil
}

func (f *fakeHangoutRepo) FindParticipantByHangoutAndUser(_ context.Context, hangoutID, userID uuid.UUID) (*entity.HangoutParticipant, error) {
	for _, p := range f.participants {
		if p.HangoutID == hangoutID && p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeHangoutRepo) FindParticipantsByHangoutID(_ context.Context, hangoutID uuid.UUID) ([]*entity.HangoutParticipant, error) {
	var out []*entity.HangoutParticipant
	for _, p := range f.participants {
		if p.HangoutID == hangoutID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeHangoutRepo) CountParticipantsByHangoutID(ctx context.Context, hangoutID uuid.UUID) (int, error) {
	ps, _ := f.FindParticipantsByHangoutID(ctx, hangoutID)
	return len(ps), nil
}

func (f *fakeHangoutRepo) UpdateParticipant(_ context.Context, p *entity.HangoutParticipant) error {
	f.participants[p.ID] = p
	return nil
}

func (f *fakeHangoutRepo) DeleteParticipant(_ context.Context, id uuid.UUID) error {
	delete(f.participants, id)
	return nil
}

func (f *fakeHangoutRepo) IsUserParticipant(ctx context.Context, hangoutID, userID uuid.UUID) (bool, error) {
	p, _ := f.FindParticipantByHangoutAndUser(ctx, hangoutID, userID)
	return p != nil, nil
}

func (f *fakeHangoutRepo) CreateExpense(_ context.Context, e *entity.HangoutExpense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeHangoutRepo) FindExpenseByID(_ context.Context, id uuid.UUID) (*entity.HangoutExpense, error) {
	return f.expenses[id], nil
}

func (f *fakeHangoutRepo) FindExpensesByHangoutID(_ context.Context, hangoutID uuid.UUID) ([]*entity.HangoutExpense, error) {
	var out []*entity.HangoutExpense
	for _, e := range f.expenses {
		if e.HangoutID == hangoutID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeHangoutRepo) UpdateExpense(_ context.Context, e *entity.HangoutExpense) error {
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeHangoutRepo) DeleteExpense(_ context.Context, id uuid.UUID) error {
	delete(f.expenses, id)
	return nil
}

func (f *fakeHangoutRepo) GetHangoutWithDetails(ctx context.Context, hangoutID uuid.UUID) (*entity.HangoutWithDetails, error) {
	h := f.hangouts[hangoutID]
	if h == nil {
		return nil, nil
	}
	ps, _ := f.FindParticipantsByHangoutID(ctx, hangoutID)
	es, _ := f.FindExpensesByHangoutID(ctx, hangoutID)
	return &entity.HangoutWithDetails{Hangout: h, Participants: ps, Expenses: es}, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := f.FindByEmail(ctx, email)
	return u != nil, nil
}

var _ adapter.HangoutRepository = (*fakeHangoutRepo)(nil)
var _ adapter.UserRepository = (*fakeUserRepo)(nil)

func TestGenerateJoinCode_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := generateJoinCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != joinCodeLength {
			t.Fatalf("expected %d characters, got %q", joinCodeLength, code)
		}
		for _, r := range code {
			if !strings.ContainsRune(joinCodeAlphabet, r) {
				t.Fatalf("unexpected character %q in join code %q", r, code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("expected join codes to vary across generations")
	}
}

func TestCreateHangout(t *testing.T) {
	owner := entity.NewUser("dinda@example.com", "Dinda Putri", "hash")
	repo := newFakeHangoutRepo()
	uc := NewCreateHangoutUseCase(repo, newFakeUserRepo(owner), nil)

	t.Run("creates active hangout with confirmed owner", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), CreateHangoutInput{
			OwnerID:     owner.ID,
			Title:       "Karaoke night",
			SplitMethod: entity.SplitMethodEqual,
			Date:        time.Now(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Hangout.IsActive || out.Hangout.IsSettled {
			t.Error("expected a new hangout to be active and unsettled")
		}
		if len(out.Hangout.JoinCode) != joinCodeLength {
			t.Errorf("expected a %d-character join code, got %q", joinCodeLength, out.Hangout.JoinCode)
		}
		if !out.Participant.HasConfirmed {
			t.Error("expected the owner to join pre-confirmed")
		}
		if out.Participant.DisplayName != "Dinda" {
			t.Errorf("expected display name from first name, got %q", out.Participant.DisplayName)
		}
	})

	t.Run("percentage method gives the owner the full share", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), CreateHangoutInput{
			OwnerID:     owner.ID,
			Title:       "Dinner",
			SplitMethod: entity.SplitMethodPercentage,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Participant.SharePercentage == nil || *out.Participant.SharePercentage != 100 {
			t.Error("expected the owner to start at 100% under the percentage method")
		}
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateHangoutInput{
			OwnerID:     owner.ID,
			Title:       "   ",
			SplitMethod: entity.SplitMethodEqual,
		})
		var hangoutErr *domainerror.HangoutError
		if !errors.As(err, &hangoutErr) || hangoutErr.Code != domainerror.ErrCodeHangoutTitleRequired {
			t.Errorf("expected title-required error, got %v", err)
		}
	})

	t.Run("rejects unknown split method", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), CreateHangoutInput{
			OwnerID:     owner.ID,
			Title:       "Movie",
			SplitMethod: entity.SplitMethod("roulette"),
		})
		var hangoutErr *domainerror.HangoutError
		if !errors.As(err, &hangoutErr) || hangoutErr.Code != domainerror.ErrCodeInvalidSplitMethod {
			t.Errorf("expected invalid-split-method error, got %v", err)
		}
	})
}

func TestJoinHangout(t *testing.T) {
	owner := entity.NewUser("dinda@example.com", "Dinda Putri", "hash")
	joiner := entity.NewUser("raka@example.com", "Raka Wijaya", "hash")
	users := newFakeUserRepo(owner, joiner)

	setup := func(t *testing.T, maxParticipants *int) (*fakeHangoutRepo, *entity.Hangout) {
		t.Helper()
		repo := newFakeHangoutRepo()
		create := NewCreateHangoutUseCase(repo, users, nil)
		out, err := create.Execute(context.Background(), CreateHangoutInput{
			OwnerID:         owner.ID,
			Title:           "Beach trip",
			SplitMethod:     entity.SplitMethodEqual,
			MaxParticipants: maxParticipants,
		})
		if err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		return repo, out.Hangout
	}

	t.Run("joins by code case-insensitively", func(t *testing.T) {
		repo, h := setup(t, nil)
		uc := NewJoinHangoutUseCase(repo, users, nil)

		out, err := uc.Execute(context.Background(), JoinHangoutInput{
			UserID:   joiner.ID,
			JoinCode: strings.ToLower(h.JoinCode),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Participant.HasConfirmed {
			t.Error("expected a joiner to start unconfirmed")
		}
		if out.Participant.DisplayName != "Raka" {
			t.Errorf("expected display name from first name, got %q", out.Participant.DisplayName)
		}
	})

	t.Run("rejects duplicate join", func(t *testing.T) {
		repo, h := setup(t, nil)
		uc := NewJoinHangoutUseCase(repo, users, nil)

		if _, err := uc.Execute(context.Background(), JoinHangoutInput{UserID: joiner.ID, JoinCode: h.JoinCode}); err != nil {
			t.Fatalf("first join failed: %v", err)
		}
		_, err := uc.Execute(context.Background(), JoinHangoutInput{UserID: joiner.ID, JoinCode: h.JoinCode})
		var hangoutErr *domainerror.HangoutError
		if !errors.As(err, &hangoutErr) || hangoutErr.Code != domainerror.ErrCodeAlreadyParticipant {
			t.Errorf("expected already-participant error, got %v", err)
		}
	})

	t.Run("rejects join when full", func(t *testing.T) {
		one := 1 // owner alone fills the hangout
		repo, h := setup(t, &one)
		uc := NewJoinHangoutUseCase(repo, users, nil)

		_, err := uc.Execute(context.Background(), JoinHangoutInput{UserID: joiner.ID, JoinCode: h.JoinCode})
		var hangoutErr *domainerror.HangoutError
		if !errors.As(err, &hangoutErr) || hangoutErr.Code != domainerror.ErrCodeHangoutFull {
			t.Errorf("expected hangout-full error, got %v", err)
		}
	})

	t.Run("rejects unknown code", func(t *testing.T) {
		repo, _ := setup(t, nil)
		uc := NewJoinHangoutUseCase(repo, users, nil)

		_, err := uc.Execute(context.Background(), JoinHangoutInput{UserID: joiner.ID, JoinCode: "ZZZZZZ"})
		var hangoutErr *domainerror.HangoutError
		if !errors.As(err, &hangoutErr) || hangoutErr.Code != domainerror.ErrCodeInvalidJoinCode {
			t.Errorf("expected invalid-join-code error, got %v", err)
		}
	})
}

func TestSettleHangout(t *testing.T) {
	owner := entity.NewUser("dinda@example.com", "Dinda Putri", "hash")
	users := newFakeUserRepo(owner)
	repo := newFakeHangoutRepo()

	create := NewCreateHangoutUseCase(repo, users, nil)
	created, err := create.Execute(context.Background(), CreateHangoutInput{
		OwnerID:     owner.ID,
		Title:       "Farewell dinner",
		SplitMethod: entity.SplitMethodEqual,
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	addExpense := NewAddExpenseUseCase(repo)
	if _, err := addExpense.Execute(context.Background(), AddExpenseInput{
		HangoutID: created.Hangout.ID,
		UserID:    owner.ID,
		Amount:    decimal.NewFromInt(120000),
	}); err != nil {
		t.Fatalf("failed to add expense: %v", err)
	}

	uc := NewSettleHangoutUseCase(repo, users, nil, nil)

	t.Run("only the owner can settle", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), SettleHangoutInput{
			HangoutID: created.Hangout.ID,
			UserID:    uuid.New(),
		})
		var hangoutErr *domainerror.HangoutError
		if !errors.As(err, &hangoutErr) || hangoutErr.Code != domainerror.ErrCodeNotHangoutOwner {
			t.Errorf("expected not-owner error, got %v", err)
		}
	})

	t.Run("settling closes the hangout and returns the summary", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), SettleHangoutInput{
			HangoutID: created.Hangout.ID,
			UserID:    owner.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Hangout.IsSettled || out.Hangout.IsActive {
			t.Error("expected the hangout to be settled and inactive")
		}
		if want := decimal.NewFromInt(120000); !out.Summary.Total.Equal(want) {
			t.Errorf("expected total %s, got %s", want, out.Summary.Total)
		}
	})

	t.Run("settling twice fails", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), SettleHangoutInput{
			HangoutID: created.Hangout.ID,
			UserID:    owner.ID,
		})
		var hangoutErr *domainerror.HangoutError
		if !errors.As(err, &hangoutErr) || hangoutErr.Code != domainerror.ErrCodeHangoutSettled {
			t.Errorf("expected settled error, got %v", err)
		}
	})
}
