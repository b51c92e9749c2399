package services

import "testing"

func newSlotService() *SlotService {
	return NewSlotService(NewCatalogService(testCatalog()))
}

func TestExtractReservationDetails(t *testing.T) {
	slots := newSlotService()
	msg := "july 25, 7 pm, 4 people"

	date, ok := slots.ExtractDate(msg)
	if !ok || date != "july 25" {
		t.Errorf("date: got %q (%v), want \"july 25\"", date, ok)
	}

	timeSlot, ok := slots.ExtractTime(msg)
	if !ok || timeSlot != "7 pm" {
		t.Errorf("time: got %q (%v), want \"7 pm\"", timeSlot, ok)
	}

	if guests := slots.ExtractGuests(msg); guests != "4" {
		t.Errorf("guests: got %q, want \"4\"", guests)
	}
	if requests := slots.ExtractRequests(msg); requests != "None" {
		t.Errorf("requests: got %q, want \"None\"", requests)
	}
}

func TestExtractDateVariants(t *testing.T) {
	slots := newSlotService()

	cases := map[string]string{
		"tomorrow at 8pm for 2": "tomorrow",
		"today please":          "today",
		"12/25 at noon":         "12/25",
		"dinner on friday":      "friday",
	}
	for msg, want := range cases {
		date, ok := slots.ExtractDate(msg)
		if !ok || date != want {
			t.Errorf("ExtractDate(%q) = %q (%v), want %q", msg, date, ok, want)
		}
	}

	if _, ok := slots.ExtractDate("sometime soonish"); ok {
		t.Error("expected no date in a dateless message")
	}
}

func TestExtractTimeVariants(t *testing.T) {
	slots := newSlotService()

	cases := map[string]string{
		"tomorrow at 8pm for 2": "8pm",
		"see you at noon":       "noon",
		"7:30 works":            "7:30",
		"at 8":                  "8",
	}
	for msg, want := range cases {
		timeSlot, ok := slots.ExtractTime(msg)
		if !ok || timeSlot != want {
			t.Errorf("ExtractTime(%q) = %q (%v), want %q", msg, timeSlot, ok, want)
		}
	}

	// A bare day number must never be mistaken for a time.
	if timeSlot, ok := slots.ExtractTime("on july 25"); ok {
		t.Errorf("got time %q from a date-only message", timeSlot)
	}
}

func TestExtractGuestsDefaultsToOne(t *testing.T) {
	slots := newSlotService()

	if guests := slots.ExtractGuests("tomorrow at 8pm for 2"); guests != "1" {
		// "for" precedes the digits here, so the pattern misses and the
		// default applies.
		t.Errorf("got %q, want \"1\"", guests)
	}
	if guests := slots.ExtractGuests("2 guests at 8pm"); guests != "2" {
		t.Errorf("got %q, want \"2\"", guests)
	}
}

func TestExtractRequests(t *testing.T) {
	slots := newSlotService()

	if got := slots.ExtractRequests("note: window seat"); got != "window seat" {
		t.Errorf("got %q, want \"window seat\"", got)
	}
	if got := slots.ExtractRequests("special requests: no nuts"); got != "no nuts" {
		t.Errorf("got %q, want \"no nuts\"", got)
	}
}

func TestExtractPhone(t *testing.T) {
	slots := newSlotService()

	if phone, ok := slots.ExtractPhone("9876543210"); !ok || phone != "9876543210" {
		t.Errorf("got %q (%v), want the ten digits accepted", phone, ok)
	}

	for _, msg := range []string{"12345", "98765432101", "98765 43210", "call 9876543210"} {
		if _, ok := slots.ExtractPhone(msg); ok {
			t.Errorf("ExtractPhone(%q) accepted, want rejection", msg)
		}
	}
}

func TestExtractRating(t *testing.T) {
	slots := newSlotService()

	if rating, ok := slots.ExtractRating("restaurants with rating 4.5"); !ok || rating != 4.5 {
		t.Errorf("got %v (%v), want 4.5", rating, ok)
	}
	if rating, ok := slots.ExtractRating("at least 4"); !ok || rating != 4 {
		t.Errorf("got %v (%v), want 4", rating, ok)
	}
	if _, ok := slots.ExtractRating("6"); ok {
		t.Error("ratings above 5 must be rejected")
	}
	if _, ok := slots.ExtractRating("pretty good"); ok {
		t.Error("a message without a number has no rating")
	}
}

func TestCommandMatchers(t *testing.T) {
	slots := newSlotService()

	if idx, ok := slots.MatchOrderCommand("order 3"); !ok || idx != 2 {
		t.Errorf("order command: got %d (%v), want index 2", idx, ok)
	}
	if _, ok := slots.MatchOrderCommand("order one"); ok {
		t.Error("non-numeric order command must not match")
	}

	if name, ok := slots.MatchMenuOfCommand("menu of royal tandoor"); !ok || name != "royal tandoor" {
		t.Errorf("menu-of command: got %q (%v)", name, ok)
	}

	if idx, ok := slots.MatchRemoveCommand("remove 1"); !ok || idx != 0 {
		t.Errorf("remove command: got %d (%v), want index 0", idx, ok)
	}

	for _, msg := range []string{"find restaurants", "search restaurants", "restaurants near me"} {
		if !slots.IsFindCommand(msg) {
			t.Errorf("IsFindCommand(%q) = false", msg)
		}
	}
	for _, msg := range []string{"book a table", "reserve a table", "make a reservation"} {
		if !slots.IsBookCommand(msg) {
			t.Errorf("IsBookCommand(%q) = false", msg)
		}
	}
	for _, msg := range []string{"place an order", "i want to order", "order food", "can i book food online"} {
		if !slots.IsPlaceOrderCommand(msg) {
			t.Errorf("IsPlaceOrderCommand(%q) = false", msg)
		}
	}
	for _, msg := range []string{"list all restaurants", "show all restaurants", "all restaurants", "provide me all restaurant name"} {
		if !slots.IsListAllCommand(msg) {
			t.Errorf("IsListAllCommand(%q) = false", msg)
		}
	}
	for _, msg := range []string{"hi", "hello", "hey", "start over", "main menu"} {
		if !slots.IsGreeting(msg) {
			t.Errorf("IsGreeting(%q) = false", msg)
		}
	}
	if slots.IsGreeting("hiya") {
		t.Error("greetings are exact phrases")
	}
}

func TestCityAndCuisineMembership(t *testing.T) {
	slots := newSlotService()

	if city, ok := slots.MatchCity("Mumbai"); !ok || city != "mumbai" {
		t.Errorf("got %q (%v), want \"mumbai\"", city, ok)
	}
	if _, ok := slots.MatchCity("paris"); ok {
		t.Error("unknown city must not match")
	}
	if cuisine, ok := slots.MatchCuisine("italian"); !ok || cuisine != "italian" {
		t.Errorf("got %q (%v), want \"italian\"", cuisine, ok)
	}
	if _, ok := slots.MatchCuisine("fusion"); ok {
		t.Error("unknown cuisine must not match")
	}
}
