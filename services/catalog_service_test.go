package services

import "testing"

func TestFindByNameIsCaseInsensitive(t *testing.T) {
	catalog := NewCatalogService(testCatalog())

	restaurant, found := catalog.FindByName("ROYAL TANDOOR")
	if !found {
		t.Fatal("expected to find Royal Tandoor regardless of case")
	}
	if restaurant.Name != "Royal Tandoor" {
		t.Errorf("got %q, want Royal Tandoor", restaurant.Name)
	}

	if _, found := catalog.FindByName("Unknown Place"); found {
		t.Error("expected no match for an unknown name")
	}
}

func TestFindInCityRequiresMatchingCity(t *testing.T) {
	catalog := NewCatalogService(testCatalog())

	if _, found := catalog.FindInCity("royal tandoor", "mumbai"); !found {
		t.Error("expected Royal Tandoor in Mumbai")
	}
	if _, found := catalog.FindInCity("royal tandoor", "delhi"); found {
		t.Error("Royal Tandoor is not in Delhi")
	}
}

func TestFilterByMinRatingIsInclusiveAndKeepsCatalogOrder(t *testing.T) {
	catalog := NewCatalogService(testCatalog())

	matched := catalog.FilterByMinRating(4.5)
	if len(matched) != 2 {
		t.Fatalf("got %d restaurants, want 2", len(matched))
	}
	// Trattoria Bella rates exactly 4.5 and must be included; order is
	// catalog order, not rating order.
	if matched[0].Name != "Royal Tandoor" || matched[1].Name != "Trattoria Bella" {
		t.Errorf("got %q, %q; want Royal Tandoor, Trattoria Bella", matched[0].Name, matched[1].Name)
	}
}

func TestFilterByCityAndCuisine(t *testing.T) {
	catalog := NewCatalogService(testCatalog())

	inMumbai := catalog.FilterByCity("Mumbai")
	if len(inMumbai) != 2 {
		t.Errorf("got %d restaurants in Mumbai, want 2", len(inMumbai))
	}

	indian := catalog.FilterByCuisine("INDIAN")
	if len(indian) != 1 || indian[0].Name != "Royal Tandoor" {
		t.Errorf("got %v, want only Royal Tandoor", indian)
	}

	if got := catalog.FilterByCity("paris"); len(got) != 0 {
		t.Errorf("expected empty result for an unknown city, got %v", got)
	}
}

func TestDerivedSets(t *testing.T) {
	catalog := NewCatalogService(testCatalog())

	if len(catalog.Cities()) != 3 {
		t.Errorf("got cities %v, want 3 distinct", catalog.Cities())
	}
	if len(catalog.Cuisines()) != 4 {
		t.Errorf("got cuisines %v, want 4 distinct", catalog.Cuisines())
	}
	if !catalog.HasCity("mumbai") || catalog.HasCity("paris") {
		t.Error("city membership must match the derived set")
	}
	if !catalog.HasCuisine("italian") || catalog.HasCuisine("thai") {
		t.Error("cuisine membership must match the derived set")
	}
}
