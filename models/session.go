package models

// Intent is the top-level conversational goal.
type Intent string

const (
	IntentNone           Intent = ""
	IntentAwaitOption    Intent = "await_option_selection"
	IntentFindRestaurant Intent = "find_restaurant"
	IntentViewMenu       Intent = "view_menu"
	IntentPlaceOrder     Intent = "place_order"
	IntentBookTable      Intent = "book_table"
)

// SubIntent is the fine-grained step inside an intent's multi-turn flow.
// A sub-intent is only meaningful relative to its owning intent.
type SubIntent string

const (
	SubNone SubIntent = ""

	SubAwaitSearchCriteria SubIntent = "await_search_criteria"
	SubAwaitCityForSearch  SubIntent = "await_city_for_search"
	SubAwaitCuisineSearch  SubIntent = "await_cuisine_for_search"
	SubAwaitRatingSearch   SubIntent = "await_rating_for_search"

	SubAwaitCityForMenu    SubIntent = "await_city_for_menu"
	SubAwaitRestaurantMenu SubIntent = "await_restaurant_name_for_menu"
	SubDisplayMenu         SubIntent = "display_menu_and_await_action"

	SubAwaitOrderType       SubIntent = "await_order_type"
	SubAwaitLocation        SubIntent = "await_location_for_order"
	SubAwaitPhoneOrder      SubIntent = "await_user_phone_order"
	SubAwaitRestaurantOrder SubIntent = "await_restaurant_name_for_order"
	SubAwaitPickupRest      SubIntent = "await_pickup_restaurant"
	SubAwaitPhonePickup     SubIntent = "await_user_phone_order_pickup"
	SubAwaitAddItems        SubIntent = "await_add_items_to_cart"
	SubAwaitOrderAction     SubIntent = "await_order_action"
	SubAwaitPayment         SubIntent = "await_payment_confirmation"

	SubAwaitResCity         SubIntent = "await_reservation_city"
	SubAwaitResRestaurant   SubIntent = "await_reservation_restaurant"
	SubAwaitResDetails      SubIntent = "await_reservation_details"
	SubAwaitResPhone        SubIntent = "await_reservation_phone"
	SubAwaitResConfirmation SubIntent = "await_reservation_confirmation"
)

// Session is the mutable per-conversation record. Exactly one Session exists
// per active conversation; the session store keys them by conversation id and
// the dialog engine only ever works on the one it is handed.
type Session struct {
	Intent             Intent
	SubIntent          SubIntent
	UserCity           string
	UserAddress        string
	UserPhone          string
	SelectedRestaurant string
	CurrentMenu        []MenuItem
	Cart               Cart
	Reservation        ReservationDraft
	Filtered           []Restaurant
}

func NewSession() *Session {
	return &Session{}
}

// Reset returns the session to the initial (none, none) state and clears the
// cart, reservation draft and every captured slot.
func (s *Session) Reset() {
	*s = Session{}
}
