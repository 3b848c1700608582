package app

import "fewo_booking/internal/domain"

func ptr(s string) *string { return &s }

// defaultConfig holds the keys the frontend expects on a fresh install.
var defaultConfig = []domain.ConfigEntry{
	{Key: "platform_name", Value: "FeWo Booking", Description: ptr("Name der Plattform")},
	{Key: "primary_color", Value: "#0ea5e9", Description: ptr("Primaerfarbe des Frontends")},
	{Key: "logo_url", Value: "/logo.svg", Description: ptr("Pfad zum Logo")},
	{Key: "support_email", Value: "support@fewo-booking.de", Description: ptr("Support-Adresse")},
	{Key: "currency", Value: "EUR", Description: ptr("ISO-Waehrungscode")},
	{Key: "currency_symbol", Value: "€", Description: ptr("Waehrungssymbol fuer Preise")},
}

// defaultAmenities is the stock catalog seeded into an empty amenities table.
var defaultAmenities = []domain.Amenity{
	{Name: "WLAN", Icon: ptr("wifi"), Category: "basics"},
	{Name: "Küche", Icon: ptr("kitchen"), Category: "basics"},
	{Name: "Waschmaschine", Icon: ptr("washer"), Category: "basics"},
	{Name: "Geschirrspüler", Icon: ptr("dishwasher"), Category: "basics"},
	{Name: "Heizung", Icon: ptr("heating"), Category: "basics"},
	{Name: "Klimaanlage", Icon: ptr("ac"), Category: "basics"},
	{Name: "TV", Icon: ptr("tv"), Category: "basics"},
	{Name: "Bettwäsche", Icon: ptr("bed"), Category: "basics"},
	{Name: "Handtücher", Icon: ptr("towels"), Category: "basics"},
	{Name: "Föhn", Icon: ptr("hairdryer"), Category: "basics"},
	{Name: "Balkon", Icon: ptr("balcony"), Category: "outdoor"},
	{Name: "Terrasse", Icon: ptr("terrace"), Category: "outdoor"},
	{Name: "Garten", Icon: ptr("garden"), Category: "outdoor"},
	{Name: "Grill", Icon: ptr("bbq"), Category: "outdoor"},
	{Name: "Pool", Icon: ptr("pool"), Category: "outdoor"},
	{Name: "Sauna", Icon: ptr("sauna"), Category: "wellness"},
	{Name: "Kamin", Icon: ptr("fireplace"), Category: "wellness"},
	{Name: "Parkplatz", Icon: ptr("parking"), Category: "location"},
	{Name: "Garage", Icon: ptr("garage"), Category: "location"},
	{Name: "Aufzug", Icon: ptr("elevator"), Category: "location"},
	{Name: "Meerblick", Icon: ptr("sea-view"), Category: "location"},
	{Name: "Bergblick", Icon: ptr("mountain-view"), Category: "location"},
	{Name: "Haustiere erlaubt", Icon: ptr("pets"), Category: "rules"},
	{Name: "Rauchen erlaubt", Icon: ptr("smoking"), Category: "rules"},
	{Name: "Kinderbett", Icon: ptr("crib"), Category: "family"},
	{Name: "Hochstuhl", Icon: ptr("highchair"), Category: "family"},
	{Name: "Spielplatz in der Nähe", Icon: ptr("playground"), Category: "family"},
}
