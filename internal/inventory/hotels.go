package inventory

import (
	"fmt"
	"net/url"
	"strings"
)

// Hotel is one demo property.
type Hotel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	City          string `json:"city"`
	Stars         int    `json:"stars"`
	Type          string `json:"type"`
	Location      string `json:"location"`
	PricePerNight int    `json:"price_per_night"`
	Currency      string `json:"currency"`
	GoogleMapsURL string `json:"google_maps_url"`
}

// HotelSearchResult mirrors the widget contract.
type HotelSearchResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	City    string  `json:"city"`
	Hotels  []Hotel `json:"hotels"`
}

var hotelCities = map[string][]Hotel{
	"riyadh": {
		{ID: "HT-RUH-1", Name: "Hyatt Regency Riyadh Olaya", City: "Riyadh", Stars: 5, Type: "Luxury", Location: "Olaya District", PricePerNight: 780, Currency: "SAR"},
		{ID: "HT-RUH-2", Name: "Courtyard Riyadh Diplomatic Quarter", City: "Riyadh", Stars: 4, Type: "Business", Location: "Diplomatic Quarter", PricePerNight: 520, Currency: "SAR"},
		{ID: "HT-RUH-3", Name: "Al Faisaliah Hotel", City: "Riyadh", Stars: 5, Type: "Luxury", Location: "King Fahd Road", PricePerNight: 1150, Currency: "SAR"},
	},
	"jeddah": {
		{ID: "HT-JED-1", Name: "Rosewood Jeddah", City: "Jeddah", Stars: 5, Type: "Luxury", Location: "Corniche Road", PricePerNight: 990, Currency: "SAR"},
		{ID: "HT-JED-2", Name: "Centro Shaheen Jeddah", City: "Jeddah", Stars: 3, Type: "Budget", Location: "Madinah Road", PricePerNight: 310, Currency: "SAR"},
	},
	"al-ula": {
		{ID: "HT-ULH-1", Name: "Shaden Resort AlUla", City: "Al-Ula", Stars: 4, Type: "Resort", Location: "Ashar Valley", PricePerNight: 1400, Currency: "SAR"},
		{ID: "HT-ULH-2", Name: "Sahary AlUla Resort", City: "Al-Ula", Stars: 3, Type: "Resort", Location: "Desert Camp Area", PricePerNight: 850, Currency: "SAR"},
	},
	"abha": {
		{ID: "HT-AHB-1", Name: "Abha Palace Hotel", City: "Abha", Stars: 4, Type: "Resort", Location: "Lake District", PricePerNight: 480, Currency: "SAR"},
	},
	"dammam": {
		{ID: "HT-DMM-1", Name: "Sheraton Dammam Hotel", City: "Dammam", Stars: 5, Type: "Business", Location: "Corniche", PricePerNight: 610, Currency: "SAR"},
		{ID: "HT-DMM-2", Name: "Park Inn by Radisson Dammam", City: "Dammam", Stars: 4, Type: "Business", Location: "King Saud Road", PricePerNight: 390, Currency: "SAR"},
	},
}

// SearchHotels looks up the demo hotel table for a city.
func SearchHotels(city string) HotelSearchResult {
	key := strings.ToLower(strings.TrimSpace(city))
	hotels, ok := hotelCities[key]
	if !ok {
		return HotelSearchResult{
			Success: false,
			Message: fmt.Sprintf("No hotels found in %s", city),
			City:    city,
		}
	}
	out := make([]Hotel, len(hotels))
	for i, h := range hotels {
		h.GoogleMapsURL = MapsLink(h.Name, h.City)
		out[i] = h
	}
	return HotelSearchResult{
		Success: true,
		Message: fmt.Sprintf("Found %d hotels (demo data)", len(out)),
		City:    hotels[0].City,
		Hotels:  out,
	}
}

// HotelByID returns a single hotel from the demo table.
func HotelByID(id string) (Hotel, bool) {
	for _, hotels := range hotelCities {
		for _, h := range hotels {
			if h.ID == id {
				h.GoogleMapsURL = MapsLink(h.Name, h.City)
				return h, true
			}
		}
	}
	return Hotel{}, false
}

// MapsLink builds a Google Maps search URL for a named place.
func MapsLink(name, city string) string {
	q := name
	if city != "" {
		q += ", " + city
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(q)
}
