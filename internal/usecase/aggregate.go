package usecase

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/bluestock/ipoboard"
)

// Aggregates are pure functions over a collection snapshot, recomputed on
// demand. Collections are small, so there is no incremental bookkeeping.

// Count is the total number of records.
func Count[T any](records []T) int {
	return len(records)
}

// SumCurrency sums a display-formatted currency field and reformats the
// total with the dashboard's currency conventions. Unparseable entries
// contribute zero.
func SumCurrency[T any](records []T, field func(T) string) string {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(ipoboard.ParseAmount(field(r)))
	}
	return ipoboard.FormatAmount(sum)
}

// SumInt sums an integer field.
func SumInt[T any](records []T, field func(T) int) int {
	sum := 0
	for _, r := range records {
		sum += field(r)
	}
	return sum
}

// SuccessRate is the rounded percentage of records matching isSuccess,
// and 0 for an empty snapshot.
func SuccessRate[T any](records []T, isSuccess func(T) bool) int {
	if len(records) == 0 {
		return 0
	}
	successes := 0
	for _, r := range records {
		if isSuccess(r) {
			successes++
		}
	}
	return int(math.Round(100 * float64(successes) / float64(len(records))))
}

// SubscriptionSummary is the stat-card block of the subscription page.
type SubscriptionSummary struct {
	TotalInvestments   string `json:"totalInvestments"`
	ActiveApplications int    `json:"activeApplications"`
	SuccessRate        int    `json:"successRate"`
}

func SummarizeSubscriptions(records []ipoboard.Subscription) SubscriptionSummary {
	return SubscriptionSummary{
		TotalInvestments:   SumCurrency(records, func(s ipoboard.Subscription) string { return s.Amount }),
		ActiveApplications: Count(records),
		SuccessRate: SuccessRate(records, func(s ipoboard.Subscription) bool {
			return s.Status == ipoboard.SubscriptionStatusSuccessful
		}),
	}
}

// AllotmentSummary is the stat-card block of the allotment page.
type AllotmentSummary struct {
	TotalApplications int    `json:"totalApplications"`
	SharesAllotted    int    `json:"sharesAllotted"`
	TotalRefund       string `json:"totalRefund"`
}

func SummarizeAllotments(records []ipoboard.Allotment) AllotmentSummary {
	return AllotmentSummary{
		TotalApplications: Count(records),
		SharesAllotted:    SumInt(records, func(a ipoboard.Allotment) int { return a.SharesAllotted }),
		TotalRefund:       SumCurrency(records, func(a ipoboard.Allotment) string { return a.RefundAmount }),
	}
}
