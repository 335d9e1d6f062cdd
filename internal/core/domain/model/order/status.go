package order

// Status is the lifecycle state of an order as recorded by the marketplace.
//
//	created ─> approved ─> invoiced ─> processing ─> shipped ─> delivered
//	                 └──────────────> canceled / unavailable
//
// Only Delivered orders have a customer delivery date in general, which is why the
// delivery-time metric filters on it by default.
type Status int

const (
	// Unknown is any status string the data set does not define.
	Unknown Status = iota
	Created
	Approved
	Invoiced
	Processing
	Shipped
	Delivered
	Unavailable
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Created:     "created",
		Approved:    "approved",
		Invoiced:    "invoiced",
		Processing:  "processing",
		Shipped:     "shipped",
		Delivered:   "delivered",
		Unavailable: "unavailable",
		Canceled:    "canceled",
	}
}

// ParseStatus maps the raw order_status column to a Status.
// Matching is exact, so "Delivered" or " delivered" map to Unknown like any
// other unrecognised value.
func ParseStatus(raw string) Status {
	for s, str := range getStatusStrings() {
		if str == raw {
			return s
		}
	}
	return Unknown
}

// String returns the raw column value of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsDelivered reports whether the order reached the customer.
func (s Status) IsDelivered() bool {
	return s == Delivered
}
