package ipoboard

// Session identifies the currently logged-in user. A session exists iff
// the requester is authenticated.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IPO statuses.
const (
	IPOStatusUpcoming = "Upcoming"
	IPOStatusOngoing  = "Ongoing"
	IPOStatusClosed   = "Closed"
	IPOStatusListed   = "Listed"
)

// Subscription statuses.
const (
	SubscriptionStatusPending    = "Pending"
	SubscriptionStatusSuccessful = "Successful"
	SubscriptionStatusFailed     = "Failed"
)

// Allotment statuses.
const (
	AllotmentStatusPending = "Pending"
	AllotmentStatusPartial = "Partial"
	AllotmentStatusFull    = "Full"
	AllotmentStatusNone    = "None"
)

// FAQ statuses.
const (
	FAQStatusDraft     = "Draft"
	FAQStatusPublished = "Published"
)

// ResourceLink statuses.
const (
	ResourceStatusActive   = "Active"
	ResourceStatusArchived = "Archived"
)

// Status enumerations per record type. The first entry is the default for
// new drafts.
var (
	IPOStatuses          = []string{IPOStatusUpcoming, IPOStatusOngoing, IPOStatusClosed, IPOStatusListed}
	SubscriptionStatuses = []string{SubscriptionStatusPending, SubscriptionStatusSuccessful, SubscriptionStatusFailed}
	AllotmentStatuses    = []string{AllotmentStatusPending, AllotmentStatusPartial, AllotmentStatusFull, AllotmentStatusNone}
	FAQStatuses          = []string{FAQStatusDraft, FAQStatusPublished}
	ResourceStatuses     = []string{ResourceStatusActive, ResourceStatusArchived}
)

// IPO is one tracked public offering. Dates are held as the yyyy-mm-dd
// strings the admin forms produce; currency fields keep their display
// formatting (see money.go for parsing).
type IPO struct {
	ID          int    `json:"id"`
	Company     string `json:"company"`
	PriceBand   string `json:"priceBand"`
	OpenDate    string `json:"openDate"`
	CloseDate   string `json:"closeDate"`
	IssueSize   string `json:"issueSize"`
	IssueType   string `json:"issueType"`
	ListingDate string `json:"listingDate"`
	Status      string `json:"status"`
}

// Subscription is a bid/application against an IPO.
type Subscription struct {
	ID       int    `json:"id"`
	Company  string `json:"company"`
	Category string `json:"category"`
	BidPrice string `json:"bidPrice"`
	Quantity int    `json:"quantity"`
	Amount   string `json:"amount"`
	Status   string `json:"status"`
}

// Allotment is the outcome of a subscription.
type Allotment struct {
	ID             int    `json:"id"`
	Company        string `json:"company"`
	AllotmentDate  string `json:"allotmentDate"`
	SharesApplied  int    `json:"sharesApplied"`
	SharesAllotted int    `json:"sharesAllotted"`
	RefundAmount   string `json:"refundAmount"`
	Status         string `json:"status"`
}

// FAQ is a help-page question/answer pair.
type FAQ struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Status   string `json:"status"`
}

// ResourceLink is a help-page pointer to an external document.
type ResourceLink struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Status      string `json:"status"`
}

func (r IPO) RecordID() int          { return r.ID }
func (r Subscription) RecordID() int { return r.ID }
func (r Allotment) RecordID() int    { return r.ID }
func (r FAQ) RecordID() int          { return r.ID }
func (r ResourceLink) RecordID() int { return r.ID }

// Record is implemented by every entity record kept in a collection.
type Record interface {
	RecordID() int
}

// Event announces a collection mutation to realtime subscribers.
type Event struct {
	Collection string `json:"collection"`
	Action     string `json:"action"` // create, update, delete
	ID         int    `json:"id"`
}

// Collection names used in routes, storage keys and events.
const (
	CollectionIPOs          = "ipos"
	CollectionSubscriptions = "subscriptions"
	CollectionAllotments    = "allotments"
	CollectionFAQs          = "faqs"
	CollectionResources     = "resources"
)
