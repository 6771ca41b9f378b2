package repository

import "github.com/bluestock/ipoboard"

// Seed data matching the rows the dashboard ships with.

func SeedIPOs() []ipoboard.IPO {
	return []ipoboard.IPO{
		{
			ID:          1,
			Company:     "Adani Power",
			PriceBand:   "₹329 - 136",
			OpenDate:    "2023-06-03",
			CloseDate:   "2024-06-06",
			IssueSize:   "45530.15 Cr",
			IssueType:   "Book Built",
			ListingDate: "2023-06-10",
			Status:      ipoboard.IPOStatusOngoing,
		},
		{
			ID:          2,
			Company:     "Tata Technologies",
			PriceBand:   "₹475 - 500",
			OpenDate:    "2024-07-10",
			CloseDate:   "2024-07-12",
			IssueSize:   "30750.00 Cr",
			IssueType:   "Book Built",
			ListingDate: "2024-07-15",
			Status:      ipoboard.IPOStatusUpcoming,
		},
	}
}

func SeedSubscriptions() []ipoboard.Subscription {
	return []ipoboard.Subscription{
		{
			ID:       1,
			Company:  "Adani Power",
			Category: "Energy",
			BidPrice: "₹329",
			Quantity: 150,
			Amount:   "₹49,350",
			Status:   ipoboard.SubscriptionStatusPending,
		},
		{
			ID:       2,
			Company:  "Tata Technologies",
			Category: "Technology",
			BidPrice: "₹500",
			Quantity: 200,
			Amount:   "₹100,000",
			Status:   ipoboard.SubscriptionStatusSuccessful,
		},
	}
}

func SeedAllotments() []ipoboard.Allotment {
	return []ipoboard.Allotment{
		{
			ID:             1,
			Company:        "Adani Power",
			AllotmentDate:  "2024-06-15",
			SharesApplied:  150,
			SharesAllotted: 75,
			RefundAmount:   "₹24,675",
			Status:         ipoboard.AllotmentStatusPartial,
		},
		{
			ID:             2,
			Company:        "Tata Technologies",
			AllotmentDate:  "2024-07-20",
			SharesApplied:  200,
			SharesAllotted: 200,
			RefundAmount:   "₹0",
			Status:         ipoboard.AllotmentStatusFull,
		},
	}
}

func SeedFAQs() []ipoboard.FAQ {
	return []ipoboard.FAQ{
		{
			ID:       1,
			Question: "How do I apply for an IPO?",
			Answer:   "Navigate to the IPO Subscription page, select the desired IPO, enter the number of shares you wish to apply for, and submit your application.",
			Status:   ipoboard.FAQStatusPublished,
		},
		{
			ID:       2,
			Question: "How can I check my allotment status?",
			Answer:   "The IPO Allotment page lists your applications, including the number of shares allotted and refund status if applicable.",
			Status:   ipoboard.FAQStatusPublished,
		},
		{
			ID:       3,
			Question: "What happens if I'm not allotted shares?",
			Answer:   "If you're not allotted shares or are partially allotted, the excess amount is refunded to your bank account within 5-6 working days from the allotment date.",
			Status:   ipoboard.FAQStatusPublished,
		},
	}
}

func SeedResources() []ipoboard.ResourceLink {
	return []ipoboard.ResourceLink{
		{
			ID:          1,
			Title:       "User Guide",
			Description: "Comprehensive user guide covering the platform end to end.",
			URL:         "https://bluestock.com/docs/user-guide.pdf",
			Status:      ipoboard.ResourceStatusActive,
		},
		{
			ID:          2,
			Title:       "Video Tutorials",
			Description: "Step-by-step video guidance on the platform's features.",
			URL:         "https://bluestock.com/tutorials",
			Status:      ipoboard.ResourceStatusActive,
		},
	}
}
