package models

// ReservationDraft accumulates booking details over several turns. The dialog
// flow fills the fields in order and never reaches confirmation with one
// missing. OrderType is reused by the ordering flow to tag delivery vs pickup.
type ReservationDraft struct {
	City       string
	Restaurant string
	Date       string
	Time       string
	Guests     string
	Requests   string
	OrderType  string
}
