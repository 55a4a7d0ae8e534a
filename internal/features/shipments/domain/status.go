package domain

// Status represents the lifecycle status of a shipment.
// The vocabulary is closed: admin flows only ever write these values,
// but unknown strings coming from legacy rows must never break progress
// computation, so lookups fail open instead of erroring.
type Status string

const (
	StatusPending                     Status = "Pending"
	StatusAwaitingPayment             Status = "Awaiting Payment"
	StatusPaymentConfirmed            Status = "Payment Confirmed"
	StatusProcessing                  Status = "Processing"
	StatusReadyForPickup              Status = "Ready for Pickup"
	StatusDriverEnRoute               Status = "Driver En Route"
	StatusPickedUp                    Status = "Picked Up"
	StatusAtWarehouse                 Status = "At Warehouse"
	StatusInTransit                   Status = "In Transit"
	StatusDepartedFacility            Status = "Departed Facility"
	StatusArrivedAtFacility           Status = "Arrived at Facility"
	StatusOutForDelivery              Status = "Out for Delivery"
	StatusDelivered                   Status = "Delivered"
	StatusReturnedToSender            Status = "Returned to Sender"
	StatusCancelled                   Status = "Cancelled"
	StatusOnHold                      Status = "On Hold"
	StatusDelayed                     Status = "Delayed"
	StatusWeatherDelay                Status = "Weather Delay"
	StatusAddressIssue                Status = "Address Issue"
	StatusCustomsHold                 Status = "Customs Hold"
	StatusInspectionRequired          Status = "Inspection Required"
	StatusPaymentVerificationRequired Status = "Payment Verification Required"
	StatusLostPackage                 Status = "Lost Package"
	StatusDamagedPackage              Status = "Damaged Package"
)

// statusProgress is the fixed status-to-progress table. These literal values
// are load-bearing: the tracking page and stored event snapshots both depend
// on them, so they must not be changed casually.
var statusProgress = map[Status]int{
	StatusPending:                     5,
	StatusAwaitingPayment:             10,
	StatusPaymentConfirmed:            20,
	StatusProcessing:                  30,
	StatusReadyForPickup:              35,
	StatusDriverEnRoute:               40,
	StatusPickedUp:                    45,
	StatusAtWarehouse:                 50,
	StatusInTransit:                   60,
	StatusDepartedFacility:            65,
	StatusArrivedAtFacility:           70,
	StatusOutForDelivery:              85,
	StatusDelivered:                   100,
	StatusReturnedToSender:            0,
	StatusCancelled:                   0,
	StatusOnHold:                      15,
	StatusDelayed:                     25,
	StatusWeatherDelay:                25,
	StatusAddressIssue:                25,
	StatusCustomsHold:                 35,
	StatusInspectionRequired:          45,
	StatusPaymentVerificationRequired: 15,
	StatusLostPackage:                 0,
	StatusDamagedPackage:              0,
}

// ProgressForStatus returns the progress percentage for a status.
// Unmapped statuses yield 0 rather than an error.
func ProgressForStatus(s Status) int {
	return statusProgress[s]
}

// IsKnownStatus reports whether s belongs to the closed status vocabulary.
func IsKnownStatus(s Status) bool {
	_, ok := statusProgress[s]
	return ok
}

// AllStatuses returns every recognized status value.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusAwaitingPayment,
		StatusPaymentConfirmed,
		StatusProcessing,
		StatusReadyForPickup,
		StatusDriverEnRoute,
		StatusPickedUp,
		StatusAtWarehouse,
		StatusInTransit,
		StatusDepartedFacility,
		StatusArrivedAtFacility,
		StatusOutForDelivery,
		StatusDelivered,
		StatusReturnedToSender,
		StatusCancelled,
		StatusOnHold,
		StatusDelayed,
		StatusWeatherDelay,
		StatusAddressIssue,
		StatusCustomsHold,
		StatusInspectionRequired,
		StatusPaymentVerificationRequired,
		StatusLostPackage,
		StatusDamagedPackage,
	}
}

// liveStatuses are statuses of shipments actively moving through the network.
var liveStatuses = map[Status]struct{}{
	StatusInTransit:         {},
	StatusOutForDelivery:    {},
	StatusPickedUp:          {},
	StatusAtWarehouse:       {},
	StatusDepartedFacility:  {},
	StatusArrivedAtFacility: {},
}

// exceptionStatuses are statuses of shipments needing manual attention.
var exceptionStatuses = map[Status]struct{}{
	StatusOnHold:             {},
	StatusDelayed:            {},
	StatusWeatherDelay:       {},
	StatusAddressIssue:       {},
	StatusCustomsHold:        {},
	StatusInspectionRequired: {},
	StatusLostPackage:        {},
	StatusDamagedPackage:     {},
}

// IsLive reports whether the status indicates active movement.
func (s Status) IsLive() bool {
	_, ok := liveStatuses[s]
	return ok
}

// IsException reports whether the status indicates the shipment needs attention.
func (s Status) IsException() bool {
	_, ok := exceptionStatuses[s]
	return ok
}

// Classification buckets a status for dashboard aggregation.
type Classification string

const (
	ClassificationLive      Classification = "LIVE"
	ClassificationException Classification = "EXCEPTION"
	ClassificationNone      Classification = "NONE"
)

// Classify returns the dashboard bucket for a status. The live and exception
// sets are disjoint; everything else falls into neither.
func Classify(s Status) Classification {
	switch {
	case s.IsLive():
		return ClassificationLive
	case s.IsException():
		return ClassificationException
	default:
		return ClassificationNone
	}
}
