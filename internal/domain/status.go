package domain

// OrderStatus is the staff-facing order lifecycle vocabulary. It is the
// canonical representation; the older customer-app vocabulary is handled
// by the LegacyStatus shim below.
type OrderStatus string

const (
	StatusCreated          OrderStatus = "CREATED"
	StatusAwaitingPickup   OrderStatus = "AWAITING_PICKUP"
	StatusPickedUp         OrderStatus = "PICKED_UP"
	StatusInCleaning       OrderStatus = "IN_CLEANING"
	StatusReadyForDelivery OrderStatus = "READY_FOR_DELIVERY"
	StatusOutForDelivery   OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered        OrderStatus = "DELIVERED"
	StatusCanceled         OrderStatus = "CANCELED"
	StatusReturned         OrderStatus = "RETURNED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusCreated, StatusAwaitingPickup, StatusPickedUp, StatusInCleaning,
		StatusReadyForDelivery, StatusOutForDelivery, StatusDelivered,
		StatusCanceled, StatusReturned:
		return true
	default:
		return false
	}
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusCanceled, StatusReturned:
		return true
	default:
		return false
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

// nextStatus maps each actionable status to the single status a staff member
// may push it to. CREATED is absent on purpose: a CREATED order moves to
// AWAITING_PICKUP through the accept flow, never through a direct status push.
var nextStatus = map[OrderStatus]OrderStatus{
	StatusAwaitingPickup:   StatusPickedUp,
	StatusPickedUp:         StatusInCleaning,
	StatusInCleaning:       StatusReadyForDelivery,
	StatusReadyForDelivery: StatusOutForDelivery,
	StatusOutForDelivery:   StatusDelivered,
}

// NextStatus returns the single status transition offered to staff for an
// order currently in s, or false if the order is not actionable (unclaimed,
// terminal, or unknown).
func NextStatus(s OrderStatus) (OrderStatus, bool) {
	next, ok := nextStatus[s]
	return next, ok
}

// CanTransition reports whether pushing an order from one status to another
// is a legal staff action. The backend stays authoritative; this only gates
// what the gateway is willing to dispatch.
func CanTransition(from, to OrderStatus) bool {
	next, ok := nextStatus[from]
	return ok && next == to
}

// LegacyStatus is the shorter vocabulary still served to the customer order
// views. Both vocabularies describe the same server resource under different
// serializations; the staff vocabulary is canonical and this shim is the only
// place the two meet.
type LegacyStatus string

const (
	LegacyPending    LegacyStatus = "pending"
	LegacyConfirmed  LegacyStatus = "confirmed"
	LegacyInProgress LegacyStatus = "in_progress"
	LegacyReady      LegacyStatus = "ready"
	LegacyDelivered  LegacyStatus = "delivered"
)

// ToLegacy projects a canonical status onto the legacy vocabulary. The
// projection is lossy: two cleaning stages collapse into in_progress and two
// delivery stages into ready. CANCELED and RETURNED have no legacy
// counterpart and report false.
func (s OrderStatus) ToLegacy() (LegacyStatus, bool) {
	switch s {
	case StatusCreated:
		return LegacyPending, true
	case StatusAwaitingPickup:
		return LegacyConfirmed, true
	case StatusPickedUp, StatusInCleaning:
		return LegacyInProgress, true
	case StatusReadyForDelivery, StatusOutForDelivery:
		return LegacyReady, true
	case StatusDelivered:
		return LegacyDelivered, true
	default:
		return "", false
	}
}

// FromLegacy lifts a legacy status into the canonical vocabulary. Where the
// legacy value covers several canonical stages the earliest one is chosen,
// so a round trip never skips an order ahead of where the server put it.
func FromLegacy(l LegacyStatus) (OrderStatus, bool) {
	switch l {
	case LegacyPending:
		return StatusCreated, true
	case LegacyConfirmed:
		return StatusAwaitingPickup, true
	case LegacyInProgress:
		return StatusPickedUp, true
	case LegacyReady:
		return StatusReadyForDelivery, true
	case LegacyDelivered:
		return StatusDelivered, true
	default:
		return "", false
	}
}
