package listing

import (
	"testing"
	"time"

	"gestao_servicos/internal/domain/entities"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilterByStatus(t *testing.T) {
	launches := []entities.Launch{
		{ID: "a", Status: entities.LaunchStatusCompleted},
		{ID: "b", Status: entities.LaunchStatusInProgress},
		{ID: "c", Status: entities.LaunchStatusInProgress},
	}

	t.Run("all is identity", func(t *testing.T) {
		if got := FilterByStatus(launches, StatusFilterAll); len(got) != 3 {
			t.Fatalf("expected 3, got %d", len(got))
		}
		if got := FilterByStatus(launches, ""); len(got) != 3 {
			t.Fatalf("expected 3 for empty filter, got %d", len(got))
		}
	})

	t.Run("exact status match", func(t *testing.T) {
		got := FilterByStatus(launches, "2")
		if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := FilterByStatus(launches, "2")
		twice := FilterByStatus(once, "2")
		if len(once) != len(twice) {
			t.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
		}
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Fatalf("filter not idempotent at %d", i)
			}
		}
	})
}

func TestSortLaunchesDefault(t *testing.T) {
	t.Run("in progress always first", func(t *testing.T) {
		launches := []entities.Launch{
			{ID: "done", Status: entities.LaunchStatusCompleted, ProcessedDate: date(2024, 6, 1), Request: date(2024, 1, 1)},
			{ID: "wip", Status: entities.LaunchStatusInProgress, Request: date(2024, 5, 1)},
		}
		got := SortLaunches(launches, SortDefault)
		if got[0].ID != "wip" {
			t.Fatalf("expected in-progress first, got %s", got[0].ID)
		}
	})

	t.Run("in progress ordered by request ascending", func(t *testing.T) {
		launches := []entities.Launch{
			{ID: "newer", Status: entities.LaunchStatusInProgress, Request: date(2024, 5, 1)},
			{ID: "older", Status: entities.LaunchStatusInProgress, Request: date(2024, 2, 1)},
			{ID: "undated", Status: entities.LaunchStatusInProgress},
		}
		got := SortLaunches(launches, SortDefault)
		// Missing request sorts as the earliest possible value.
		if got[0].ID != "undated" || got[1].ID != "older" || got[2].ID != "newer" {
			t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("pending processed date before processed", func(t *testing.T) {
		launches := []entities.Launch{
			{ID: "paid", Status: entities.LaunchStatusCompleted, ProcessedDate: date(2024, 6, 1)},
			{ID: "pending-b", Status: entities.LaunchStatusCompleted, Request: date(2024, 4, 1)},
			{ID: "pending-a", Status: entities.LaunchStatusCompleted, Request: date(2024, 3, 1)},
		}
		got := SortLaunches(launches, SortDefault)
		if got[0].ID != "pending-a" || got[1].ID != "pending-b" || got[2].ID != "paid" {
			t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("processed launches by processed date descending", func(t *testing.T) {
		launches := []entities.Launch{
			{ID: "old", Status: entities.LaunchStatusCompleted, ProcessedDate: date(2024, 1, 10)},
			{ID: "new", Status: entities.LaunchStatusCompleted, ProcessedDate: date(2024, 6, 10)},
		}
		got := SortLaunches(launches, SortDefault)
		if got[0].ID != "new" || got[1].ID != "old" {
			t.Fatalf("unexpected order: %s %s", got[0].ID, got[1].ID)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		launches := []entities.Launch{
			{ID: "b", Status: entities.LaunchStatusCompleted, ProcessedDate: date(2024, 1, 1)},
			{ID: "a", Status: entities.LaunchStatusInProgress},
		}
		_ = SortLaunches(launches, SortDefault)
		if launches[0].ID != "b" {
			t.Fatalf("input slice mutated")
		}
	})
}

func TestSortLaunchesSingleKeyModes(t *testing.T) {
	launches := []entities.Launch{
		{ID: "a", Customer: "Érica", Request: date(2024, 3, 1), Delivery: date(2024, 3, 5), ProcessedDate: date(2024, 3, 9)},
		{ID: "b", Customer: "Bruno", Request: date(2024, 1, 1), Delivery: date(2024, 4, 5), ProcessedDate: date(2024, 4, 9)},
		{ID: "c", Customer: "Fábio", Request: date(2024, 2, 1), Delivery: date(2024, 2, 5)},
	}

	cases := []struct {
		mode SortMode
		want []string
	}{
		{SortProcessedDateAsc, []string{"c", "a", "b"}},
		{SortProcessedDateDesc, []string{"b", "a", "c"}},
		{SortRequestAsc, []string{"b", "c", "a"}},
		{SortRequestDesc, []string{"a", "c", "b"}},
		{SortDeliveryAsc, []string{"c", "a", "b"}},
		{SortDeliveryDesc, []string{"b", "a", "c"}},
		{SortCustomerAsc, []string{"b", "a", "c"}},
		{SortCustomerDesc, []string{"c", "a", "b"}},
		{SortMode("bogus"), []string{"b", "a", "c"}}, // falls back to processed desc
	}

	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			got := SortLaunches(launches, tc.mode)
			for i, want := range tc.want {
				if got[i].ID != want {
					t.Fatalf("position %d: got %s, want %s", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestTruncateLaunches(t *testing.T) {
	t.Run("under the cap", func(t *testing.T) {
		page := TruncateLaunches(make([]entities.Launch, 4))
		if page.Shown != 4 || page.Total != 4 {
			t.Fatalf("unexpected counts: %+v", page)
		}
	})

	t.Run("over the cap", func(t *testing.T) {
		page := TruncateLaunches(make([]entities.Launch, 23))
		if page.Shown != DisplayMax || page.Total != 23 || len(page.Items) != DisplayMax {
			t.Fatalf("unexpected counts: shown=%d total=%d items=%d", page.Shown, page.Total, len(page.Items))
		}
	})
}

func TestSortAndTruncateWithdrawals(t *testing.T) {
	withdrawals := []entities.Withdrawal{
		{ID: "old", WithdrawalDate: date(2024, 1, 1)},
		{ID: "new", WithdrawalDate: date(2024, 7, 1)},
		{ID: "mid", WithdrawalDate: date(2024, 3, 1)},
	}

	got := SortWithdrawals(withdrawals)
	if got[0].ID != "new" || got[1].ID != "mid" || got[2].ID != "old" {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}

	page := TruncateWithdrawals(make([]entities.Withdrawal, 15))
	if page.Shown != DisplayMax || page.Total != 15 {
		t.Fatalf("unexpected counts: %+v", page)
	}
}

func TestMonthTotal(t *testing.T) {
	ref := date(2024, 5, 20)
	withdrawals := []entities.Withdrawal{
		{Amount: 100, WithdrawalDate: date(2024, 5, 1)},
		{Amount: 50, WithdrawalDate: date(2024, 5, 31)},
		{Amount: 999, WithdrawalDate: date(2024, 4, 30)},
		{Amount: 999}, // undated, skipped
	}
	if got := MonthTotal(withdrawals, ref); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
}
