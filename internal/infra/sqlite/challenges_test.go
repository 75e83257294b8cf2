package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sprout-app/sprout/internal/domain"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t.Fatalf("parse day %q: %v", s, err)
	}
	return d
}

func sampleChallenge(t *testing.T, id string) domain.Challenge {
	return domain.Challenge{
		ID:            id,
		CategoryID:    "food",
		StartDate:     day(t, "2026-03-02"),
		EndDate:       day(t, "2026-03-08"),
		Duration:      domain.DurationWeek,
		SpendingLimit: 100000,
		TargetFruits:  2,
		RequiredSeeds: 10,
		Status:        domain.StatusProgress,
	}
}

func TestChallenges_CreateGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	want := sampleChallenge(t, "c1")

	if err := db.Create(ctx, want); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	got, err := db.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if got.ID != want.ID || got.CategoryID != want.CategoryID {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
	if !got.StartDate.Equal(want.StartDate) || !got.EndDate.Equal(want.EndDate) {
		t.Errorf("dates = %v..%v, want %v..%v", got.StartDate, got.EndDate, want.StartDate, want.EndDate)
	}
	if got.Duration != domain.DurationWeek || got.Status != domain.StatusProgress {
		t.Errorf("enums not round-tripped: %+v", got)
	}
	if got.SpendingLimit != 100000 || got.TargetFruits != 2 || got.RequiredSeeds != 10 {
		t.Errorf("amounts not round-tripped: %+v", got)
	}
	if got.CurrentSpending != 0 {
		t.Errorf("CurrentSpending = %d, want 0 (never persisted)", got.CurrentSpending)
	}
}

func TestChallenges_Get_NotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := db.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrChallengeNotFound) {
		t.Errorf("error = %v, want ErrChallengeNotFound", err)
	}
}

func TestChallenges_Update(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := sampleChallenge(t, "c1")
	if err := db.Create(ctx, c); err != nil {
		t.Fatal(err)
	}

	c.Status = domain.StatusSuccess
	c.IsCompleted = true
	if err := db.Update(ctx, c); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	got, err := db.Get(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.StatusSuccess || !got.IsCompleted {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestChallenges_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	err := db.Update(context.Background(), sampleChallenge(t, "ghost"))
	if !errors.Is(err, domain.ErrChallengeNotFound) {
		t.Errorf("error = %v, want ErrChallengeNotFound", err)
	}
}

func TestChallenges_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	if err := db.Create(ctx, sampleChallenge(t, "c1")); err != nil {
		t.Fatal(err)
	}
	if err := db.Delete(ctx, "c1"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := db.Get(ctx, "c1"); !errors.Is(err, domain.ErrChallengeNotFound) {
		t.Errorf("challenge still present after delete: %v", err)
	}
}

func TestChallenges_ListActive(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	active := sampleChallenge(t, "c1")
	done := sampleChallenge(t, "c2")
	done.CategoryID = "travel"
	done.Status = domain.StatusSuccess
	done.IsCompleted = true

	for _, c := range []domain.Challenge{active, done} {
		if err := db.Create(ctx, c); err != nil {
			t.Fatal(err)
		}
	}

	got, err := db.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive() error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("ListActive() = %+v, want only c1", got)
	}

	all, err := db.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List() returned %d, want 2", len(all))
	}
}
