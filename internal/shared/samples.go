package shared

// SampleFeedback is one seed item for the seeder binary.
type SampleFeedback struct {
	Feedback          string
	CustomerID        string
	Category          string
	ExpectedSentiment string
}

// Samples spans categories, customers and sentiments so a freshly seeded
// table produces a non-trivial analytics snapshot.
var Samples = []SampleFeedback{
	{"The checkout flow is fantastic now, payment went through in seconds!", "CUST-1001", "product", "POSITIVE"},
	{"Support resolved my billing issue within an hour. Really impressed.", "CUST-1002", "support", "POSITIVE"},
	{"Love the new dashboard design, everything is so much easier to find.", "CUST-1001", "product", "POSITIVE"},
	{"Delivery arrived two days early and the packaging was perfect.", "CUST-1003", "shipping", "POSITIVE"},
	{"The app crashes every time I try to upload a photo. Unusable.", "CUST-1004", "product", "NEGATIVE"},
	{"Waited 45 minutes on hold and then got disconnected. Terrible service.", "CUST-1005", "support", "NEGATIVE"},
	{"My order arrived damaged and the replacement was also damaged.", "CUST-1003", "shipping", "NEGATIVE"},
	{"Subscription renewed at a higher price with no warning. Not okay.", "CUST-1006", "billing", "NEGATIVE"},
	{"The product works as described. Nothing special, nothing broken.", "CUST-1007", "product", "NEUTRAL"},
	{"Received the invoice for this month.", "CUST-1008", "billing", "NEUTRAL"},
	{"Great hardware but the companion app is slow and buggy.", "CUST-1009", "product", "MIXED"},
	{"Fast shipping, but the box was missing the charging cable.", "CUST-1010", "shipping", "MIXED"},
	{"The onboarding emails were helpful, though a bit too frequent.", "CUST-1002", "marketing", "MIXED"},
	{"Honestly the best customer experience I have had this year.", "CUST-1001", "support", "POSITIVE"},
	{"Cancelling my account. Three outages in one week is too many.", "CUST-1011", "reliability", "NEGATIVE"},
}
