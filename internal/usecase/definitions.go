package usecase

import "github.com/bluestock/ipoboard"

// Definitions for the five entity collections. Each draft default carries
// the first enumerated status and zero values everywhere else.

func IPODefinition() Definition[ipoboard.IPO] {
	return Definition[ipoboard.IPO]{
		Name:     ipoboard.CollectionIPOs,
		Statuses: ipoboard.IPOStatuses,
		Defaults: func() ipoboard.IPO {
			return ipoboard.IPO{Status: ipoboard.IPOStatuses[0]}
		},
		WithID: func(r ipoboard.IPO, id int) ipoboard.IPO {
			r.ID = id
			return r
		},
		StatusOf: func(r ipoboard.IPO) string { return r.Status },
	}
}

func SubscriptionDefinition() Definition[ipoboard.Subscription] {
	return Definition[ipoboard.Subscription]{
		Name:     ipoboard.CollectionSubscriptions,
		Statuses: ipoboard.SubscriptionStatuses,
		Defaults: func() ipoboard.Subscription {
			return ipoboard.Subscription{Status: ipoboard.SubscriptionStatuses[0]}
		},
		WithID: func(r ipoboard.Subscription, id int) ipoboard.Subscription {
			r.ID = id
			return r
		},
		StatusOf: func(r ipoboard.Subscription) string { return r.Status },
	}
}

func AllotmentDefinition() Definition[ipoboard.Allotment] {
	return Definition[ipoboard.Allotment]{
		Name:     ipoboard.CollectionAllotments,
		Statuses: ipoboard.AllotmentStatuses,
		Defaults: func() ipoboard.Allotment {
			return ipoboard.Allotment{Status: ipoboard.AllotmentStatuses[0]}
		},
		WithID: func(r ipoboard.Allotment, id int) ipoboard.Allotment {
			r.ID = id
			return r
		},
		StatusOf: func(r ipoboard.Allotment) string { return r.Status },
	}
}

func FAQDefinition() Definition[ipoboard.FAQ] {
	return Definition[ipoboard.FAQ]{
		Name:     ipoboard.CollectionFAQs,
		Statuses: ipoboard.FAQStatuses,
		Defaults: func() ipoboard.FAQ {
			return ipoboard.FAQ{Status: ipoboard.FAQStatuses[0]}
		},
		WithID: func(r ipoboard.FAQ, id int) ipoboard.FAQ {
			r.ID = id
			return r
		},
		StatusOf: func(r ipoboard.FAQ) string { return r.Status },
	}
}

func ResourceDefinition() Definition[ipoboard.ResourceLink] {
	return Definition[ipoboard.ResourceLink]{
		Name:     ipoboard.CollectionResources,
		Statuses: ipoboard.ResourceStatuses,
		Defaults: func() ipoboard.ResourceLink {
			return ipoboard.ResourceLink{Status: ipoboard.ResourceStatuses[0]}
		},
		WithID: func(r ipoboard.ResourceLink, id int) ipoboard.ResourceLink {
			r.ID = id
			return r
		},
		StatusOf: func(r ipoboard.ResourceLink) string { return r.Status },
	}
}
