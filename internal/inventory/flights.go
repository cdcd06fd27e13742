// Package inventory holds the demo flight and hotel tables. The data is
// fixed in-process; real inventory integration is out of scope.
package inventory

import (
	"fmt"
	"strings"
)

// Flight is one bookable demo flight.
type Flight struct {
	ID            string `json:"id"`
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Duration      string `json:"duration"`
	Price         int    `json:"price"`
	Currency      string `json:"currency"`
	Stops         int    `json:"stops"`
}

// FlightSearchResult mirrors the widget contract.
type FlightSearchResult struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message,omitempty"`
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	DepartureDate   string   `json:"departure_date,omitempty"`
	OutboundFlights []Flight `json:"outbound_flights"`
}

// cityCodes normalizes spoken city names to the IATA codes the route
// table is keyed by.
var cityCodes = map[string]string{
	"bangalore": "BLR",
	"bengaluru": "BLR",
	"blr":       "BLR",
	"chennai":   "MAA",
	"madras":    "MAA",
	"maa":       "MAA",
	"jeddah":    "JED",
	"jed":       "JED",
	"riyadh":    "RUH",
	"ruh":       "RUH",
	"dubai":     "DXB",
	"dxb":       "DXB",
	"kolkata":   "CCU",
	"calcutta":  "CCU",
	"ccu":       "CCU",
}

var flightRoutes = map[string][]Flight{
	"BLR-JED": {
		{ID: "FL-BLRJED-1", Airline: "Saudia", FlightNumber: "SV 865", Origin: "BLR", Destination: "JED", DepartureTime: "4:10", ArrivalTime: "7:30", Duration: "6h 50m", Price: 24500, Currency: "₹", Stops: 0},
		{ID: "FL-BLRJED-2", Airline: "Air India", FlightNumber: "AI 993", Origin: "BLR", Destination: "JED", DepartureTime: "9:45", ArrivalTime: "13:20", Duration: "7h 05m", Price: 21800, Currency: "₹", Stops: 0},
		{ID: "FL-BLRJED-3", Airline: "Emirates", FlightNumber: "EK 569", Origin: "BLR", Destination: "JED", DepartureTime: "14:30", ArrivalTime: "21:10", Duration: "10h 10m", Price: 28900, Currency: "₹", Stops: 1},
	},
	"BLR-RUH": {
		{ID: "FL-BLRRUH-1", Airline: "Flynas", FlightNumber: "XY 332", Origin: "BLR", Destination: "RUH", DepartureTime: "2:25", ArrivalTime: "5:05", Duration: "5h 10m", Price: 19900, Currency: "₹", Stops: 0},
		{ID: "FL-BLRRUH-2", Airline: "Saudia", FlightNumber: "SV 851", Origin: "BLR", Destination: "RUH", DepartureTime: "19:50", ArrivalTime: "22:40", Duration: "5h 20m", Price: 23400, Currency: "₹", Stops: 0},
	},
	"BLR-DXB": {
		{ID: "FL-BLRDXB-1", Airline: "Emirates", FlightNumber: "EK 567", Origin: "BLR", Destination: "DXB", DepartureTime: "10:20", ArrivalTime: "13:05", Duration: "4h 15m", Price: 16200, Currency: "₹", Stops: 0},
		{ID: "FL-BLRDXB-2", Airline: "IndiGo", FlightNumber: "6E 1406", Origin: "BLR", Destination: "DXB", DepartureTime: "6:55", ArrivalTime: "9:35", Duration: "4h 10m", Price: 12750, Currency: "₹", Stops: 0},
		{ID: "FL-BLRDXB-3", Airline: "Etihad", FlightNumber: "EY 237", Origin: "BLR", Destination: "DXB", DepartureTime: "21:15", ArrivalTime: "0:45", Duration: "5h 00m", Price: 14300, Currency: "₹", Stops: 1},
	},
	"BLR-CCU": {
		{ID: "FL-BLRCCU-1", Airline: "IndiGo", FlightNumber: "6E 529", Origin: "BLR", Destination: "CCU", DepartureTime: "7:40", ArrivalTime: "10:15", Duration: "2h 35m", Price: 5600, Currency: "₹", Stops: 0},
		{ID: "FL-BLRCCU-2", Airline: "Vistara", FlightNumber: "UK 707", Origin: "BLR", Destination: "CCU", DepartureTime: "17:05", ArrivalTime: "19:45", Duration: "2h 40m", Price: 6900, Currency: "₹", Stops: 0},
	},
	"MAA-DXB": {
		{ID: "FL-MAADXB-1", Airline: "Emirates", FlightNumber: "EK 545", Origin: "MAA", Destination: "DXB", DepartureTime: "3:55", ArrivalTime: "6:30", Duration: "4h 05m", Price: 15800, Currency: "₹", Stops: 0},
		{ID: "FL-MAADXB-2", Airline: "SpiceJet", FlightNumber: "SG 53", Origin: "MAA", Destination: "DXB", DepartureTime: "12:10", ArrivalTime: "14:55", Duration: "4h 15m", Price: 11400, Currency: "₹", Stops: 0},
	},
}

// NormalizeCity maps a spoken city name or code to an IATA code. Unknown
// inputs are upper-cased and passed through so a caller-supplied code
// like "JFK" still forms a route key.
func NormalizeCity(city string) string {
	city = strings.TrimSpace(city)
	// The platform sometimes sends "Bengaluru BLR"; keep the first token.
	if i := strings.IndexByte(city, ' '); i > 0 {
		city = city[:i]
	}
	if code, ok := cityCodes[strings.ToLower(city)]; ok {
		return code
	}
	return strings.ToUpper(city)
}

// SearchFlights looks up the demo route table.
func SearchFlights(origin, destination, departureDate string) FlightSearchResult {
	o := NormalizeCity(origin)
	d := NormalizeCity(destination)

	flights, ok := flightRoutes[o+"-"+d]
	if !ok {
		return FlightSearchResult{
			Success:     false,
			Message:     fmt.Sprintf("No flights found from %s to %s", o, d),
			Origin:      o,
			Destination: d,
		}
	}
	return FlightSearchResult{
		Success:         true,
		Message:         fmt.Sprintf("Found %d flights (demo data)", len(flights)),
		Origin:          o,
		Destination:     d,
		DepartureDate:   departureDate,
		OutboundFlights: flights,
	}
}

// FlightByID returns a single flight from the demo table.
func FlightByID(id string) (Flight, bool) {
	for _, flights := range flightRoutes {
		for _, f := range flights {
			if f.ID == id {
				return f, true
			}
		}
	}
	return Flight{}, false
}
