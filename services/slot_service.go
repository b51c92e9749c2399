package services

import (
	"regexp"
	"strconv"
	"strings"
)

// SlotService turns the lowercased, trimmed message text into typed slot
// values. Every extractor is total: it reports success instead of failing,
// and the dialog engine decides what a miss means for the current state.
var (
	orderCmdPattern      = regexp.MustCompile(`^order (\d+)$`)
	menuOfCmdPattern     = regexp.MustCompile(`^menu of (.+)$`)
	removeCmdPattern     = regexp.MustCompile(`^remove (\d+)$`)
	findCmdPattern       = regexp.MustCompile(`^(find restaurants|search restaurants|restaurants near me)$`)
	bookCmdPattern       = regexp.MustCompile(`^(book a table|reserve a table|make a reservation)$`)
	placeOrderCmdPattern = regexp.MustCompile(`^(place an order|i want to order|order food|can i book food online)$`)
	listAllCmdPattern    = regexp.MustCompile(`^(provide me all restaurant name|list all restaurants|show all restaurants|all restaurants)$`)

	ratingPattern = regexp.MustCompile(`(\d+\.?\d*)`)
	phonePattern  = regexp.MustCompile(`^\d{10}$`)

	// Word-plus-day is tried before bare month names so "july 25" captures
	// the full phrase rather than just the month.
	datePattern = regexp.MustCompile(`(\w+ \d{1,2}(?:st|nd|rd|th)?|\d{1,2}/\d{1,2}|today|tomorrow|january|february|march|april|may|june|july|august|september|october|november|december|on \w+)`)

	// A bare number only counts as a time behind "at"; otherwise it needs
	// minutes or an am/pm suffix, so day numbers cannot win as the time.
	timePattern = regexp.MustCompile(`(\d{1,2}:\d{2}\s*(?:am|pm)?|\d{1,2}\s*(?:am|pm)|noon|midnight|at \d{1,2}(?::\d{2})?(?:am|pm)?)`)

	guestsPattern   = regexp.MustCompile(`(\d+)\s*(?:people|person|guests|for)`)
	requestsPattern = regexp.MustCompile(`(?:special requests|request|note):? (.+)`)
)

var greetingPhrases = map[string]bool{
	"hi":         true,
	"hello":      true,
	"hey":        true,
	"start over": true,
	"main menu":  true,
}

type SlotService struct {
	Catalog *CatalogService
}

func NewSlotService(catalog *CatalogService) *SlotService {
	return &SlotService{Catalog: catalog}
}

// MatchCity accepts the message only when it names a known city exactly.
func (s *SlotService) MatchCity(msg string) (string, bool) {
	city := strings.ToLower(strings.TrimSpace(msg))
	if s.Catalog.HasCity(city) {
		return city, true
	}
	return "", false
}

// MatchCuisine accepts the message only when it names a known cuisine exactly.
func (s *SlotService) MatchCuisine(msg string) (string, bool) {
	cuisine := strings.ToLower(strings.TrimSpace(msg))
	if s.Catalog.HasCuisine(cuisine) {
		return cuisine, true
	}
	return "", false
}

// ExtractRating takes the first numeric token and accepts it only in [0,5].
func (s *SlotService) ExtractRating(msg string) (float64, bool) {
	match := ratingPattern.FindString(msg)
	if match == "" {
		return 0, false
	}
	rating, err := strconv.ParseFloat(match, 64)
	if err != nil || rating < 0 || rating > 5 {
		return 0, false
	}
	return rating, true
}

// ExtractPhone accepts exactly ten digits spanning the whole message.
func (s *SlotService) ExtractPhone(msg string) (string, bool) {
	msg = strings.TrimSpace(msg)
	if phonePattern.MatchString(msg) {
		return msg, true
	}
	return "", false
}

// ExtractDate returns the first date-like phrase with any leading "on "
// stripped off.
func (s *SlotService) ExtractDate(msg string) (string, bool) {
	match := datePattern.FindString(msg)
	if match == "" {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(match, "on ")), true
}

// ExtractTime returns the first time-like phrase with any leading "at "
// stripped off.
func (s *SlotService) ExtractTime(msg string) (string, bool) {
	match := timePattern.FindString(msg)
	if match == "" {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(match, "at ")), true
}

// ExtractGuests returns the digits preceding a guest keyword, or "1".
func (s *SlotService) ExtractGuests(msg string) string {
	match := guestsPattern.FindStringSubmatch(msg)
	if match == nil {
		return "1"
	}
	return match[1]
}

// ExtractRequests returns the text after a special-request marker, or "None".
func (s *SlotService) ExtractRequests(msg string) string {
	match := requestsPattern.FindStringSubmatch(msg)
	if match == nil {
		return "None"
	}
	return strings.TrimSpace(match[1])
}

func (s *SlotService) IsGreeting(msg string) bool {
	return greetingPhrases[msg]
}

func (s *SlotService) IsCancel(msg string) bool {
	return msg == "cancel"
}

func (s *SlotService) IsFindCommand(msg string) bool {
	return findCmdPattern.MatchString(msg)
}

func (s *SlotService) IsBookCommand(msg string) bool {
	return bookCmdPattern.MatchString(msg)
}

func (s *SlotService) IsPlaceOrderCommand(msg string) bool {
	return placeOrderCmdPattern.MatchString(msg)
}

func (s *SlotService) IsListAllCommand(msg string) bool {
	return listAllCmdPattern.MatchString(msg)
}

// MatchOrderCommand returns the zero-based item index of an "order <n>"
// message.
func (s *SlotService) MatchOrderCommand(msg string) (int, bool) {
	match := orderCmdPattern.FindStringSubmatch(msg)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n - 1, true
}

// MatchRemoveCommand returns the zero-based cart index of a "remove <n>"
// message.
func (s *SlotService) MatchRemoveCommand(msg string) (int, bool) {
	match := removeCmdPattern.FindStringSubmatch(msg)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n - 1, true
}

// MatchMenuOfCommand returns the restaurant name of a "menu of <name>"
// message.
func (s *SlotService) MatchMenuOfCommand(msg string) (string, bool) {
	match := menuOfCmdPattern.FindStringSubmatch(msg)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}
