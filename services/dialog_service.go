package services

import (
	"TandoorMate/models"
	"fmt"
	"strings"
)

// DialogService is the per-turn state machine. It is a function of
// (session, input): the caller owns the session, the engine mutates it and
// returns the reply text. Rule order matters: global resets pre-empt global
// commands, which pre-empt the intent-scoped sub-state handlers, and an
// unrecognized input always gets a contextual help reply.
type DialogService struct {
	Catalog *CatalogService
	Slots   *SlotService
}

func NewDialogService(catalog *models.Catalog) *DialogService {
	catalogService := NewCatalogService(catalog)
	return &DialogService{
		Catalog: catalogService,
		Slots:   NewSlotService(catalogService),
	}
}

const (
	cancelReply          = "Okay, I've reset our conversation. Type 'hi' to start over."
	orderTypePrompt      = "Would you like this order for 'delivery' or 'pickup'?"
	reservationPrompt    = "Great! For your reservation, please tell me the city."
	invalidPhonePrompt   = "Please enter a valid 10-digit mobile number, or 'cancel'."
	searchCriteriaPrompt = "How would you like to find a restaurant?\n1. By City\n2. By Cuisine\n3. By Rating (e.g., 'restaurants with rating 4.5')\n\nType a number (1-3) or 'cancel'."
)

// HandleMessage advances the session by one turn and returns the reply.
func (s *DialogService) HandleMessage(sess *models.Session, raw string) string {
	msg := strings.ToLower(strings.TrimSpace(raw))

	if s.Slots.IsGreeting(msg) {
		sess.Reset()
		sess.Intent = models.IntentAwaitOption
		return renderMainMenu()
	}
	if s.Slots.IsCancel(msg) {
		sess.Reset()
		return cancelReply
	}

	if reply, handled := s.handleGlobalCommands(sess, msg); handled {
		return reply
	}

	switch sess.Intent {
	case models.IntentAwaitOption:
		return s.handleOptionSelection(sess, msg)
	case models.IntentFindRestaurant:
		if reply, handled := s.handleFindRestaurant(sess, msg); handled {
			return reply
		}
	case models.IntentViewMenu:
		if reply, handled := s.handleViewMenu(sess, msg); handled {
			return reply
		}
	case models.IntentPlaceOrder:
		if reply, handled := s.handlePlaceOrder(sess, msg); handled {
			return reply
		}
	case models.IntentBookTable:
		if reply, handled := s.handleBookTable(sess, msg); handled {
			return reply
		}
	}

	return s.fallback(sess)
}

// handleGlobalCommands matches the phrase sets recognized regardless of
// state. "place an order" is suppressed mid-flow while the order type is
// being asked, and "order <n>" only succeeds with a selected restaurant and
// a current menu.
func (s *DialogService) handleGlobalCommands(sess *models.Session, msg string) (string, bool) {
	if s.Slots.IsListAllCommand(msg) {
		if len(s.Catalog.All()) == 0 {
			return "Sorry, I don't have any restaurant data loaded right now. Please try again later.", true
		}
		return renderAllRestaurants(s.Catalog.All()), true
	}

	if name, ok := s.Slots.MatchMenuOfCommand(msg); ok {
		restaurant, found := s.Catalog.FindByName(name)
		if !found {
			return fmt.Sprintf("Restaurant %q not found.\nIf you don't know the exact name, you can type 'list all restaurants' or 'find restaurants' to search. Or 'hi' to see main options.",
				capitalize(name)), true
		}
		sess.CurrentMenu = restaurant.Menu
		sess.SelectedRestaurant = restaurant.Name
		sess.Intent = models.IntentViewMenu
		sess.SubIntent = models.SubDisplayMenu
		return renderMenu(restaurant.Name, restaurant.Menu), true
	}

	if idx, ok := s.Slots.MatchOrderCommand(msg); ok {
		return s.addMenuItemToCart(sess, idx), true
	}

	if s.Slots.IsFindCommand(msg) {
		sess.Intent = models.IntentFindRestaurant
		sess.SubIntent = models.SubAwaitSearchCriteria
		return searchCriteriaPrompt, true
	}

	if s.Slots.IsBookCommand(msg) {
		sess.Intent = models.IntentBookTable
		sess.SubIntent = models.SubAwaitResCity
		return reservationPrompt, true
	}

	if s.Slots.IsPlaceOrderCommand(msg) && sess.SubIntent != models.SubAwaitOrderType {
		sess.Intent = models.IntentPlaceOrder
		sess.SubIntent = models.SubAwaitOrderType
		return orderTypePrompt, true
	}

	return "", false
}

// addMenuItemToCart backs the global "order <n>" command. Without a selected
// restaurant, a current menu and a valid index it only returns guidance and
// leaves the state alone.
func (s *DialogService) addMenuItemToCart(sess *models.Session, idx int) string {
	if sess.SelectedRestaurant == "" || len(sess.CurrentMenu) == 0 || idx < 0 || idx >= len(sess.CurrentMenu) {
		return "To order an item, please first select a restaurant to order from (option 3 from main menu), or view a restaurant's menu (e.g., 'menu of Royal Tandoor') and then type 'order <item number>'. Or type 'hi' for main menu."
	}

	item := sess.CurrentMenu[idx]
	sess.Cart.Add(item)
	sess.Intent = models.IntentPlaceOrder
	sess.SubIntent = models.SubAwaitOrderAction
	return fmt.Sprintf("Added %q to your cart. Your cart now has %d unique items.\nType 'order <item number>' to add more, 'view cart' to see your order, or 'checkout' to finalize.",
		item.Name, sess.Cart.Size())
}

func (s *DialogService) handleOptionSelection(sess *models.Session, msg string) string {
	switch msg {
	case "1":
		sess.Intent = models.IntentFindRestaurant
		sess.SubIntent = models.SubAwaitSearchCriteria
		return "How would you like to find a restaurant?\n1. By City\n2. By Cuisine\n3. By Rating (e.g., 'restaurants with rating 4.5')\n\nType a number (1-3) to continue, or 'cancel'."
	case "2":
		sess.Intent = models.IntentViewMenu
		sess.SubIntent = models.SubAwaitCityForMenu
		return "To view a menu, please tell me the city where the restaurant is located."
	case "3":
		sess.Intent = models.IntentPlaceOrder
		sess.SubIntent = models.SubAwaitOrderType
		return orderTypePrompt
	case "4":
		sess.Intent = models.IntentBookTable
		sess.SubIntent = models.SubAwaitResCity
		return reservationPrompt
	default:
		return "Invalid option. Please type 1, 2, 3, or 4, or 'cancel'."
	}
}

func (s *DialogService) handleFindRestaurant(sess *models.Session, msg string) (string, bool) {
	switch sess.SubIntent {
	case models.SubAwaitSearchCriteria:
		switch msg {
		case "1":
			sess.SubIntent = models.SubAwaitCityForSearch
			return "Please enter the city name.", true
		case "2":
			sess.SubIntent = models.SubAwaitCuisineSearch
			return fmt.Sprintf("What cuisine are you looking for? (e.g., Indian, Japanese, Italian)\nAvailable cuisines: %s",
				capitalizedJoin(s.Catalog.Cuisines())), true
		case "3":
			sess.SubIntent = models.SubAwaitRatingSearch
			return "What minimum rating are you looking for? (e.g., '4.5' or 'at least 4')", true
		default:
			return "Invalid choice. Please type 1, 2, or 3, or 'cancel'.", true
		}

	case models.SubAwaitCityForSearch:
		city, ok := s.Slots.MatchCity(msg)
		if !ok {
			return fmt.Sprintf("Sorry, we don't have restaurants listed in %q. Please enter a valid city, or 'cancel' to return to main menu.", msg), true
		}
		sess.Filtered = s.Catalog.FilterByCity(city)
		sess.UserCity = capitalize(city)
		var reply string
		if len(sess.Filtered) > 0 {
			reply = renderRestaurantsByCity(sess.UserCity, sess.Filtered)
		} else {
			reply = fmt.Sprintf("No restaurants found in %s. Try another city, 'find restaurants' to search differently, or 'hi' to go back.", sess.UserCity)
		}
		sess.Intent = models.IntentNone
		sess.SubIntent = models.SubNone
		return reply, true

	case models.SubAwaitCuisineSearch:
		cuisine, ok := s.Slots.MatchCuisine(msg)
		if !ok {
			return fmt.Sprintf("Sorry, I don't recognize %q as a cuisine. Please try one of these: %s, or 'cancel'.",
				msg, capitalizedJoin(s.Catalog.Cuisines())), true
		}
		sess.Filtered = s.Catalog.FilterByCuisine(cuisine)
		var reply string
		if len(sess.Filtered) > 0 {
			reply = renderRestaurantsByCuisine(capitalize(cuisine), sess.Filtered)
		} else {
			reply = fmt.Sprintf("No %s restaurants found. Try another cuisine, 'find restaurants' to search differently, or 'hi' to go back.", capitalize(cuisine))
		}
		sess.Intent = models.IntentNone
		sess.SubIntent = models.SubNone
		return reply, true

	case models.SubAwaitRatingSearch:
		minRating, ok := s.Slots.ExtractRating(msg)
		if !ok {
			return "Please provide a valid minimum rating between 0 and 5, e.g., '4.5', or 'cancel'.", true
		}
		sess.Filtered = s.Catalog.FilterByMinRating(minRating)
		var reply string
		if len(sess.Filtered) > 0 {
			reply = renderRestaurantsByRating(minRating, sess.Filtered)
		} else {
			reply = fmt.Sprintf("No restaurants found with a rating of %s or higher. Try a lower rating, 'find restaurants' to search differently, or 'hi' to go back.", formatRating(minRating))
		}
		sess.Intent = models.IntentNone
		sess.SubIntent = models.SubNone
		return reply, true
	}

	return "", false
}

func (s *DialogService) handleViewMenu(sess *models.Session, msg string) (string, bool) {
	switch sess.SubIntent {
	case models.SubAwaitCityForMenu:
		city, ok := s.Slots.MatchCity(msg)
		if !ok {
			return fmt.Sprintf("Sorry, we don't have restaurants listed in %q. Please enter a valid city, or 'cancel'.", msg), true
		}
		sess.UserCity = capitalize(city)
		sess.SubIntent = models.SubAwaitRestaurantMenu
		inCity := s.Catalog.FilterByCity(city)
		if len(inCity) == 0 {
			return fmt.Sprintf("No restaurants found in %s. Please enter a valid city, or 'cancel'.", sess.UserCity), true
		}
		return fmt.Sprintf("Great! Here are the restaurants in %s:\n%s\n\nPlease enter the name of the restaurant whose menu you'd like to view.",
			sess.UserCity, renderNameCuisineList(inCity)), true

	case models.SubAwaitRestaurantMenu:
		if strings.Contains(msg, "near me") || strings.Contains(msg, "find restaurants") {
			sess.Intent = models.IntentFindRestaurant
			sess.SubIntent = models.SubAwaitSearchCriteria
			return "It looks like you want to *find* restaurants, not just view a menu. How would you like to search?\n1. By City\n2. By Cuisine\n3. By Rating\n\nType a number (1-3) or 'cancel'.", true
		}
		restaurant, found := s.Catalog.FindInCity(msg, sess.UserCity)
		if !found {
			inCity := s.Catalog.FilterByCity(sess.UserCity)
			return fmt.Sprintf("Restaurant %q not found in %s. Please choose from the available restaurants:\n%s\n\nPlease enter a valid restaurant name, or type 'cancel' to go back.",
				capitalize(msg), sess.UserCity, renderNameCuisineList(inCity)), true
		}
		sess.CurrentMenu = restaurant.Menu
		sess.SelectedRestaurant = restaurant.Name
		sess.SubIntent = models.SubDisplayMenu
		return renderMenu(restaurant.Name, restaurant.Menu), true
	}

	return "", false
}

func (s *DialogService) handlePlaceOrder(sess *models.Session, msg string) (string, bool) {
	switch sess.SubIntent {
	case models.SubAwaitOrderType:
		switch msg {
		case "delivery":
			sess.Reservation.OrderType = "delivery"
			sess.SubIntent = models.SubAwaitLocation
			return "Please provide your delivery location in this format: City, Full Address (e.g., 'Mumbai, 123 Main St')", true
		case "pickup":
			sess.Reservation.OrderType = "pickup"
			sess.SubIntent = models.SubAwaitPickupRest
			return "For pickup, which restaurant are you ordering from?", true
		default:
			return "Please specify 'delivery' or 'pickup', or 'cancel'.", true
		}

	case models.SubAwaitLocation:
		parts := strings.Split(msg, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) < 2 {
			return "Please provide location in format: City, Full Address (e.g., 'Mumbai, 123 Main St'), or 'cancel'.", true
		}
		sess.UserCity = capitalize(parts[0])
		sess.UserAddress = strings.Join(parts[1:], ", ")
		sess.SubIntent = models.SubAwaitPhoneOrder
		return fmt.Sprintf("Got your delivery address: %s, %s.\nFor confirmation, please provide your 10-digit mobile number.",
			sess.UserAddress, sess.UserCity), true

	case models.SubAwaitPhoneOrder:
		phone, ok := s.Slots.ExtractPhone(msg)
		if !ok {
			return invalidPhonePrompt, true
		}
		sess.UserPhone = phone
		if !sess.Cart.IsEmpty() {
			return s.orderSummaryPrompt(sess, true), true
		}
		sess.SubIntent = models.SubAwaitRestaurantOrder
		inCity := s.Catalog.FilterByCity(sess.UserCity)
		if len(inCity) > 0 {
			return fmt.Sprintf("Thanks! Your number is %s.\nWhich restaurant would you like to order from in %s?\n%s\n\nPlease enter the restaurant name.",
				sess.UserPhone, sess.UserCity, renderNameList(inCity, "\n")), true
		}
		return fmt.Sprintf("Thanks! Your number is %s.\nWhich restaurant would you like to order from? (e.g., 'Royal Tandoor')", sess.UserPhone), true

	case models.SubAwaitPickupRest:
		restaurant, found := s.Catalog.FindByName(msg)
		if !found {
			return fmt.Sprintf("Restaurant not found. Please enter a valid restaurant name for pickup (e.g., '%s'). Or type 'list all restaurants'.",
				s.Catalog.All()[0].Name), true
		}
		sess.SelectedRestaurant = restaurant.Name
		sess.CurrentMenu = restaurant.Menu
		sess.SubIntent = models.SubAwaitPhonePickup
		return fmt.Sprintf("Perfect, you've selected %s for pickup. For confirmation, please provide your 10-digit mobile number.", restaurant.Name), true

	case models.SubAwaitPhonePickup:
		phone, ok := s.Slots.ExtractPhone(msg)
		if !ok {
			return invalidPhonePrompt, true
		}
		sess.UserPhone = phone
		if !sess.Cart.IsEmpty() {
			return s.orderSummaryPrompt(sess, true), true
		}
		sess.SubIntent = models.SubAwaitAddItems
		return fmt.Sprintf("Thanks! Your number is %s. Here's the menu for %s:\n%s\n\nType 'order <item number>' to add items to your cart. Type 'view cart' or 'checkout' when done.",
			sess.UserPhone, sess.SelectedRestaurant, renderMenuLines(sess.CurrentMenu)), true

	case models.SubAwaitRestaurantOrder:
		restaurant, found := s.Catalog.FindInCity(msg, sess.UserCity)
		if found {
			sess.SelectedRestaurant = restaurant.Name
			sess.CurrentMenu = restaurant.Menu
			sess.SubIntent = models.SubAwaitAddItems
			return fmt.Sprintf("Great! Here's the menu for %s:\n%s\n\nType 'order <item number>' to add items to your cart. Type 'view cart' or 'checkout' when done.",
				restaurant.Name, renderMenuLines(restaurant.Menu)), true
		}
		inCity := s.Catalog.FilterByCity(sess.UserCity)
		if len(inCity) > 0 {
			return fmt.Sprintf("Restaurant %q not found in %s. Please choose from the available restaurants:\n%s\n\nPlease enter a valid restaurant name, or type 'cancel' to go back.",
				capitalize(msg), sess.UserCity, renderNameCuisineList(inCity)), true
		}
		sess.SubIntent = models.SubAwaitLocation
		return fmt.Sprintf("No restaurants found in %s. Please try another city for delivery, or 'cancel'.", sess.UserCity), true

	case models.SubAwaitAddItems, models.SubAwaitOrderAction:
		return s.handleCartLoop(sess, msg), true

	case models.SubAwaitPayment:
		if msg == "confirm" {
			reply := renderOrderConfirmation(sess)
			sess.Reset()
			return reply, true
		}
		return "Please type 'confirm' to place the order or 'cancel' to abort.", true
	}

	return "", false
}

// handleCartLoop is the shared add/remove/view/checkout loop both the
// delivery and pickup branches converge on. "order <n>" itself is already
// covered by the global command.
func (s *DialogService) handleCartLoop(sess *models.Session, msg string) string {
	switch {
	case msg == "add more":
		sess.SubIntent = models.SubAwaitAddItems
		return fmt.Sprintf("Sure, here's the menu for %s:\n%s\n\nTo add items, type 'order <item number>' (e.g., 'order 1'). Type 'view cart' or 'checkout'.",
			sess.SelectedRestaurant, renderMenuLines(sess.CurrentMenu))

	case msg == "view cart":
		sess.SubIntent = models.SubAwaitOrderAction
		if sess.Cart.IsEmpty() {
			return "Your cart is empty. Add items by typing 'order <item number>' from the menu shown above."
		}
		return renderCartSummary(&sess.Cart)

	case strings.HasPrefix(msg, "remove "):
		idx, ok := s.Slots.MatchRemoveCommand(msg)
		if !ok {
			return "Invalid item number to remove. Please check your cart and try again. Type 'view cart' to see your cart."
		}
		removed, ok := sess.Cart.Remove(idx)
		if !ok {
			return "Invalid item number to remove. Please check your cart and try again. Type 'view cart' to see your cart."
		}
		reply := fmt.Sprintf("Removed %s from your cart.", removed.Item.Name)
		if sess.Cart.IsEmpty() {
			sess.SubIntent = models.SubAwaitAddItems
			return reply + "\nYour cart is now empty. Type 'add more' to select items or 'cancel'."
		}
		return reply + "\n" + s.orderSummaryPrompt(sess, false)

	case msg == "checkout":
		if sess.Cart.IsEmpty() {
			sess.SubIntent = models.SubAwaitAddItems
			return "Your cart is empty. Please add items before checking out. Type 'add more' to see the menu again."
		}
		return s.orderSummaryPrompt(sess, true)

	default:
		return "I didn't understand that. To add items, please type 'order <item number>' (e.g., 'order 1').\nYou can also 'add more' items, 'view cart', 'remove <item number>', or 'checkout'. Or type 'hi' to go to main menu."
	}
}

// orderSummaryPrompt renders the checkout summary and moves the session to
// the payment confirmation step.
func (s *DialogService) orderSummaryPrompt(sess *models.Session, includeIntro bool) string {
	if sess.Cart.IsEmpty() {
		return "Your cart is empty. Please add items before checking out."
	}
	sess.SubIntent = models.SubAwaitPayment
	return renderOrderSummary(sess, includeIntro)
}

func (s *DialogService) handleBookTable(sess *models.Session, msg string) (string, bool) {
	switch sess.SubIntent {
	case models.SubAwaitResCity:
		city, ok := s.Slots.MatchCity(msg)
		if !ok {
			return fmt.Sprintf("Sorry, we don't have restaurants listed in %q. Please enter a valid city or 'cancel'.", msg), true
		}
		sess.Reservation.City = capitalize(city)
		sess.SubIntent = models.SubAwaitResRestaurant
		inCity := s.Catalog.FilterByCity(city)
		if len(inCity) == 0 {
			return fmt.Sprintf("There are no restaurants listed in %s. Please choose another city, or 'cancel' to return to main menu.", capitalize(city)), true
		}
		return fmt.Sprintf("Got it. Which restaurant in %s would you like to book a table at? Available: %s.",
			capitalize(city), renderNames(inCity)), true

	case models.SubAwaitResRestaurant:
		restaurant, found := s.Catalog.FindInCity(msg, sess.Reservation.City)
		if found {
			sess.SelectedRestaurant = restaurant.Name
			sess.Reservation.Restaurant = restaurant.Name
			sess.SubIntent = models.SubAwaitResDetails
			return fmt.Sprintf("Okay, booking at %s in %s.\nNow, please tell me the date, time, and number of guests. (e.g., 'July 25, 7 PM, 4 people' or 'tomorrow at 8pm for 2')",
				restaurant.Name, sess.Reservation.City), true
		}
		available := s.Catalog.FilterByCity(sess.Reservation.City)
		if len(available) > 0 {
			return fmt.Sprintf("Restaurant %q not found in %s. Available restaurants are:\n%s\n\nPlease enter a valid restaurant name from the list, or 'cancel'.",
				capitalize(msg), sess.Reservation.City, renderNameList(available, "\n")), true
		}
		sess.SubIntent = models.SubAwaitResCity
		return fmt.Sprintf("No restaurants found in %s. Please enter a valid restaurant name or 'cancel'.\nPlease try another city, or 'cancel'.", sess.Reservation.City), true

	case models.SubAwaitResDetails:
		date, dateOK := s.Slots.ExtractDate(msg)
		timeSlot, timeOK := s.Slots.ExtractTime(msg)
		if !dateOK || !timeOK {
			// The whole phrase is re-asked; a half-captured date or time is
			// deliberately not retained.
			return "I couldn't understand the date or time. Please provide them in a clear format (e.g., 'July 25, 7 PM, 4 people' or 'tomorrow at 8pm for 2'). Or 'cancel' to restart reservation.", true
		}
		sess.Reservation.Date = capitalize(date)
		sess.Reservation.Time = strings.ToUpper(timeSlot)
		sess.Reservation.Guests = s.Slots.ExtractGuests(msg)
		sess.Reservation.Requests = s.Slots.ExtractRequests(msg)
		sess.SubIntent = models.SubAwaitResPhone

		reply := fmt.Sprintf("Got it. For %s on %s at %s for %s people.",
			sess.SelectedRestaurant, sess.Reservation.Date, sess.Reservation.Time, sess.Reservation.Guests)
		if sess.Reservation.Requests != "None" {
			reply += fmt.Sprintf("\nSpecial requests: %q.", sess.Reservation.Requests)
		}
		return reply + "\nFor confirmation, please provide your 10-digit mobile number.", true

	case models.SubAwaitResPhone:
		phone, ok := s.Slots.ExtractPhone(msg)
		if !ok {
			return invalidPhonePrompt, true
		}
		sess.UserPhone = phone
		sess.SubIntent = models.SubAwaitResConfirmation
		return fmt.Sprintf("Thanks! Your number is %s.\n\nDoes this look correct? (yes/no)", sess.UserPhone), true

	case models.SubAwaitResConfirmation:
		switch msg {
		case "yes":
			reply := renderReservationConfirmation(sess)
			sess.Reset()
			return reply, true
		case "no":
			sess.SubIntent = models.SubAwaitResDetails
			return "No problem, let's re-enter the details. Please tell me the date, time, and number of guests again, and any special requests. (e.g., 'July 25, 7 PM, 4 people, requests: window seat')", true
		default:
			return "Please reply 'yes' to confirm or 'no' to re-enter details, or 'cancel'.", true
		}
	}

	return "", false
}

// fallback is the context-aware help reply for anything no rule consumed.
func (s *DialogService) fallback(sess *models.Session) string {
	reply := "I didn't understand that."

	switch sess.Intent {
	case models.IntentNone:
		reply += "\nType 'hi' to see the main options: Find restaurants, View menu, Place order, Book table. You can also 'list all restaurants'."

	case models.IntentFindRestaurant:
		reply += "\nI'm currently helping you find restaurants. You can type '1' for city, '2' for cuisine, '3' for rating, or 'cancel'."

	case models.IntentViewMenu:
		switch sess.SubIntent {
		case models.SubAwaitCityForMenu:
			reply += "\nI'm currently asking for the city to view a menu. Please enter a city name (e.g., 'Mumbai'), or 'cancel'."
		case models.SubAwaitRestaurantMenu:
			inCity := s.Catalog.FilterByCity(sess.UserCity)
			reply += fmt.Sprintf("\nI'm currently asking for a restaurant name in %s. Please choose from: %s. Or type 'list all restaurants'.",
				sess.UserCity, renderNameList(inCity, ", "))
		default:
			reply += "\nI'm currently helping you view a menu. To order, please type 'order <item number>' (e.g., 'order 1'), or 'cancel'. If you want to *find* restaurants, type 'find restaurants' or 'hi' to go to main menu. You can also 'list all restaurants'."
		}

	case models.IntentPlaceOrder:
		switch sess.SubIntent {
		case models.SubAwaitOrderType:
			reply += "\nI'm waiting for you to say 'delivery' or 'pickup' for your order, or 'cancel'."
		case models.SubAwaitLocation, models.SubAwaitPhoneOrder, models.SubAwaitRestaurantOrder,
			models.SubAwaitPhonePickup, models.SubAwaitAddItems, models.SubAwaitOrderAction,
			models.SubAwaitPayment:
			reply += "\nI'm currently processing your order. To add items, type 'order <item number>' (e.g., 'order 1'). You can also 'view cart', 'remove <item number>', or 'checkout'."
			if sess.UserPhone == "" && sess.SubIntent == models.SubAwaitLocation {
				reply += "\nRemember to provide your 10-digit mobile number for confirmation."
			}
		default:
			reply += "\nI'm currently helping you with ordering. Please provide the requested information or type 'hi' to go to the main menu."
		}

	case models.IntentBookTable:
		switch sess.SubIntent {
		case models.SubAwaitResCity:
			reply += "\nI'm currently asking for the city for your reservation. Please enter a city name (e.g., 'Mumbai'), or 'cancel'."
		case models.SubAwaitResRestaurant:
			inCity := s.Catalog.FilterByCity(sess.Reservation.City)
			reply += fmt.Sprintf("\nI'm currently asking for a restaurant name in %s. Please choose from: %s. Or type 'list all restaurants'.",
				sess.Reservation.City, renderNameList(inCity, ", "))
		default:
			reply += "\nI'm currently helping you book a table. Please provide the requested reservation details, or 'cancel'. You can also 'list all restaurants' to see names."
			if sess.UserPhone == "" && sess.SubIntent == models.SubAwaitResDetails {
				reply += "\nRemember to provide your 10-digit mobile number for confirmation."
			}
		}
	}

	return reply + "\nOr type 'hi' to go back to the main menu."
}

func capitalizedJoin(values []string) string {
	var capitalized []string
	for _, v := range values {
		capitalized = append(capitalized, capitalize(v))
	}
	return strings.Join(capitalized, ", ")
}
