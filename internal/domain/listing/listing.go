// Package listing orders, filters, truncates and aggregates the in-memory
// launch and withdrawal collections for display. All functions are pure: they
// copy their input slices and leave the caller's data untouched.
package listing

import (
	"sort"
	"time"

	"gestao_servicos/internal/domain/entities"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DisplayMax caps how many records a list screen shows at once.
const DisplayMax = 10

// SortMode selects the list comparator. Unknown modes fall back to
// SortProcessedDateDesc.

type SortMode string

const (
	SortDefault           SortMode = "default"
	SortProcessedDateAsc  SortMode = "processedDateAsc"
	SortProcessedDateDesc SortMode = "processedDateDesc"
	SortRequestAsc        SortMode = "requestAsc"
	SortRequestDesc       SortMode = "requestDesc"
	SortDeliveryAsc       SortMode = "deliveryAsc"
	SortDeliveryDesc      SortMode = "deliveryDesc"
	SortCustomerAsc       SortMode = "customerAsc"
	SortCustomerDesc      SortMode = "customerDesc"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

// FilterByStatus keeps only launches whose status code matches the filter.
// "all" (or empty) is the identity.
func FilterByStatus(launches []entities.Launch, statusFilter string) []entities.Launch {
	if statusFilter == "" || statusFilter == StatusFilterAll {
		return launches
	}
	out := make([]entities.Launch, 0, len(launches))
	for _, l := range launches {
		if string(l.Status) == statusFilter {
			out = append(out, l)
		}
	}
	return out
}

// SortLaunches returns a sorted copy. The default mode is a three-tier
// cascade, each tier consulted only when the previous one does not
// discriminate:
//
//  1. in-progress launches first, oldest request first among them;
//  2. then launches still missing a processed date, oldest request first;
//  3. then everything else by processed date, most recent first.
//
// A missing date always compares as the earliest possible value.
func SortLaunches(launches []entities.Launch, mode SortMode) []entities.Launch {
	out := make([]entities.Launch, len(launches))
	copy(out, launches)

	var less func(a, b entities.Launch) bool
	switch mode {
	case SortDefault:
		less = defaultLess
	case SortProcessedDateAsc:
		less = func(a, b entities.Launch) bool { return a.ProcessedDate.Before(b.ProcessedDate) }
	case SortRequestAsc:
		less = func(a, b entities.Launch) bool { return a.Request.Before(b.Request) }
	case SortRequestDesc:
		less = func(a, b entities.Launch) bool { return b.Request.Before(a.Request) }
	case SortDeliveryAsc:
		less = func(a, b entities.Launch) bool { return a.Delivery.Before(b.Delivery) }
	case SortDeliveryDesc:
		less = func(a, b entities.Launch) bool { return b.Delivery.Before(a.Delivery) }
	case SortCustomerAsc, SortCustomerDesc:
		// Operator names are pt-BR; collate so that accented names land where
		// the operator expects them, not at the end of the byte order.
		col := collate.New(language.BrazilianPortuguese)
		if mode == SortCustomerAsc {
			less = func(a, b entities.Launch) bool { return col.CompareString(a.Customer, b.Customer) < 0 }
		} else {
			less = func(a, b entities.Launch) bool { return col.CompareString(b.Customer, a.Customer) < 0 }
		}
	default: // SortProcessedDateDesc and anything unknown
		less = func(a, b entities.Launch) bool { return b.ProcessedDate.Before(a.ProcessedDate) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func defaultLess(a, b entities.Launch) bool {
	aInProgress := a.Status == entities.LaunchStatusInProgress
	bInProgress := b.Status == entities.LaunchStatusInProgress
	if aInProgress != bInProgress {
		return aInProgress
	}
	if aInProgress {
		return a.Request.Before(b.Request)
	}

	aPending := a.ProcessedDate.IsZero()
	bPending := b.ProcessedDate.IsZero()
	if aPending != bPending {
		return aPending
	}
	if aPending {
		return a.Request.Before(b.Request)
	}

	return b.ProcessedDate.Before(a.ProcessedDate)
}

// LaunchPage is a truncated list plus the counts a screen needs to render a
// "showing N of M" notice.

type LaunchPage struct {
	Items []entities.Launch
	Shown int
	Total int
}

// TruncateLaunches caps an already filtered and sorted list to DisplayMax.
func TruncateLaunches(launches []entities.Launch) LaunchPage {
	total := len(launches)
	if total > DisplayMax {
		launches = launches[:DisplayMax]
	}
	return LaunchPage{Items: launches, Shown: len(launches), Total: total}
}

// SortWithdrawals returns a copy ordered by withdrawal date, most recent
// first.
func SortWithdrawals(withdrawals []entities.Withdrawal) []entities.Withdrawal {
	out := make([]entities.Withdrawal, len(withdrawals))
	copy(out, withdrawals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].WithdrawalDate.Before(out[i].WithdrawalDate)
	})
	return out
}

type WithdrawalPage struct {
	Items []entities.Withdrawal
	Shown int
	Total int
}

func TruncateWithdrawals(withdrawals []entities.Withdrawal) WithdrawalPage {
	total := len(withdrawals)
	if total > DisplayMax {
		withdrawals = withdrawals[:DisplayMax]
	}
	return WithdrawalPage{Items: withdrawals, Shown: len(withdrawals), Total: total}
}

// MonthTotal sums the withdrawals dated in the same calendar month as ref.
func MonthTotal(withdrawals []entities.Withdrawal, ref time.Time) float64 {
	var total float64
	for _, w := range withdrawals {
		if w.WithdrawalDate.IsZero() {
			continue
		}
		if w.WithdrawalDate.Year() == ref.Year() && w.WithdrawalDate.Month() == ref.Month() {
			total += w.Amount
		}
	}
	return total
}
