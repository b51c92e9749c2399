package services

import (
	"TandoorMate/models"
	"fmt"
	"strconv"
	"strings"
)

// Reply rendering. Every block is deterministic text; numbered listings keep
// the order of the slice they are given, which is what item-index and
// remove-index references resolve against.

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

func renderMainMenu() string {
	return "Hello! Welcome to Royal Tandoor Assistant!\n\n" +
		"What would you like to do?\n" +
		"1. Find restaurants\n" +
		"2. View menu of a specific restaurant\n" +
		"3. Place an order\n" +
		"4. Book a table\n\n" +
		"Type a number (1-4) to continue, or type 'cancel' at any time."
}

func renderAllRestaurants(restaurants []models.Restaurant) string {
	var b strings.Builder
	b.WriteString("Here are all the restaurants we have:\n")
	for i, r := range restaurants {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s (%s, %s, Rating %s)", i+1, r.Name, r.City, r.Cuisine, formatRating(r.Rating))
	}
	b.WriteString("\n\nTo view a menu, type 'menu of <Restaurant Name>'. To find restaurants by criteria, type 'find restaurants'. Type 'hi' for main menu.")
	return b.String()
}

// renderRestaurantsByCity omits the city column; the heading already names it.
func renderRestaurantsByCity(city string, restaurants []models.Restaurant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Restaurants in %s:\n", city)
	for i, r := range restaurants {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s (%s, %s ~Rs.%d, Rating %s)",
			i+1, r.Name, r.Cuisine, r.PriceRange.Symbol, r.PriceRange.ApproximateCostForTwo, formatRating(r.Rating))
	}
	b.WriteString(listingFooter)
	return b.String()
}

// renderRestaurantsByCuisine omits the cuisine column for the same reason.
func renderRestaurantsByCuisine(cuisine string, restaurants []models.Restaurant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s restaurants:\n", cuisine)
	for i, r := range restaurants {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s (%s, %s ~Rs.%d, Rating %s)",
			i+1, r.Name, r.City, r.PriceRange.Symbol, r.PriceRange.ApproximateCostForTwo, formatRating(r.Rating))
	}
	b.WriteString(listingFooter)
	return b.String()
}

func renderRestaurantsByRating(minRating float64, restaurants []models.Restaurant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Restaurants with a rating of %s or higher:\n", formatRating(minRating))
	for i, r := range restaurants {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s (%s, %s, Rating %s)", i+1, r.Name, r.City, r.Cuisine, formatRating(r.Rating))
	}
	b.WriteString(listingFooter)
	return b.String()
}

const listingFooter = "\n\nTo view a menu, type: 'menu of <Restaurant Name>'. To search again, type 'find restaurants'. Type 'hi' to go back to main menu."

func renderMenuLines(menu []models.MenuItem) string {
	var lines []string
	for i, item := range menu {
		line := fmt.Sprintf("%d. %s -- Rs.%d", i+1, item.Name, item.Price)
		if item.Description != "" {
			line += fmt.Sprintf(" (%s)", item.Description)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderMenu(restaurantName string, menu []models.MenuItem) string {
	return fmt.Sprintf("Menu for %s:\n%s\n\nTo order an item, type 'order <item number>' (e.g., 'order 1').\nType 'hi' to return to the main menu.",
		restaurantName, renderMenuLines(menu))
}

// renderNameCuisineList is the "1. Name (Cuisine)" pick list shown whenever
// a flow needs a restaurant name within an already-chosen city.
func renderNameCuisineList(restaurants []models.Restaurant) string {
	var lines []string
	for i, r := range restaurants {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, r.Name, r.Cuisine))
	}
	return strings.Join(lines, "\n")
}

func renderNameList(restaurants []models.Restaurant, sep string) string {
	var lines []string
	for i, r := range restaurants {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, r.Name))
	}
	return strings.Join(lines, sep)
}

func renderNames(restaurants []models.Restaurant) string {
	var names []string
	for _, r := range restaurants {
		names = append(names, r.Name)
	}
	return strings.Join(names, ", ")
}

func renderCartLines(cart *models.Cart) string {
	var b strings.Builder
	for i, entry := range cart.Entries {
		fmt.Fprintf(&b, "%d. %s x%d = Rs.%d\n", i+1, entry.Item.Name, entry.Quantity, entry.Item.Price*entry.Quantity)
	}
	return b.String()
}

func renderCartSummary(cart *models.Cart) string {
	return fmt.Sprintf("Your current order:\n%s\nTotal: Rs.%d\n\nType 'remove <item number>' to remove an item, 'checkout' to finalize, or 'add more' to continue browsing the menu.",
		renderCartLines(cart), cart.Total())
}

func renderOrderSummary(sess *models.Session, includeIntro bool) string {
	var b strings.Builder
	if includeIntro {
		b.WriteString("Almost there! Please review your order:\n")
	}

	b.WriteString("\n--- Order Summary ---\n")
	restaurant := sess.SelectedRestaurant
	if restaurant == "" {
		restaurant = "Not Selected"
	}
	fmt.Fprintf(&b, "Restaurant: %s\n", restaurant)
	orderType := sess.Reservation.OrderType
	if orderType == "" {
		orderType = "N/A"
	}
	fmt.Fprintf(&b, "Type: %s\n", capitalize(orderType))
	if sess.Reservation.OrderType == "delivery" {
		address := sess.UserAddress
		if address == "" {
			address = "Not Provided"
		}
		city := sess.UserCity
		if city == "" {
			city = "Not Provided"
		}
		fmt.Fprintf(&b, "Delivery To: %s, %s\n", address, city)
	}
	fmt.Fprintf(&b, "Items:\n%s", renderCartLines(&sess.Cart))
	fmt.Fprintf(&b, "Total: Rs.%d\n", sess.Cart.Total())
	if sess.UserPhone != "" {
		fmt.Fprintf(&b, "Contact: %s\n", sess.UserPhone)
	}
	b.WriteString("\n----------------------\n")
	b.WriteString("Type 'confirm' to place your order and simulate payment, or 'cancel'.")
	return b.String()
}

func renderOrderConfirmation(sess *models.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order Confirmed! Your total is Rs.%d.\n", sess.Cart.Total())
	if sess.Reservation.OrderType == "delivery" {
		fmt.Fprintf(&b, "Your order from %s is being prepared and will be delivered to:\n%s, %s\n",
			sess.SelectedRestaurant, sess.UserAddress, sess.UserCity)
	} else {
		fmt.Fprintf(&b, "Pick up your order from %s.\n", sess.SelectedRestaurant)
	}
	fmt.Fprintf(&b, "A confirmation SMS will be sent to %s.\n", sess.UserPhone)
	b.WriteString("Thank you for using Royal Tandoor Assistant! Type 'hi' to start a new interaction.")
	return b.String()
}

func renderReservationConfirmation(sess *models.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your table at %s in %s for %s on %s at %s is confirmed! We look forward to your visit.",
		sess.SelectedRestaurant, sess.Reservation.City, sess.Reservation.Guests,
		sess.Reservation.Date, sess.Reservation.Time)
	if sess.Reservation.Requests != "" && sess.Reservation.Requests != "None" {
		fmt.Fprintf(&b, "\n(Note: Special request: %q)", sess.Reservation.Requests)
	}
	fmt.Fprintf(&b, "\nA confirmation SMS will be sent to %s.\n", sess.UserPhone)
	b.WriteString("\n\nType 'hi' to do more.")
	return b.String()
}
