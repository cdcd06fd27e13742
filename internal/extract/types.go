package extract

// BookingRecord is the structured extraction result for one call. Dates
// are preserved exactly as matched in the transcript, not normalized.
// JSON keys follow the webhook metadata contract so an externally
// supplied record decodes straight into this type.
type BookingRecord struct {
	Airline           string `json:"airline,omitempty"`
	FlightNumber      string `json:"flight_number,omitempty"`
	DepartureLocation string `json:"departure_location,omitempty"`
	Destination       string `json:"destination,omitempty"`
	DepartureDate     string `json:"departure_date,omitempty"`
	ReturnDate        string `json:"return_date,omitempty"`
	DepartureTime     string `json:"departure_time,omitempty"`
	ArrivalTime       string `json:"arrival_time,omitempty"`
	Duration          string `json:"duration,omitempty"`
	Price             int    `json:"price,omitempty"`
	Currency          string `json:"currency,omitempty"`
	Passengers        int    `json:"num_travelers,omitempty"`
	CabinClass        string `json:"service_details,omitempty"`
	BookingID         string `json:"booking_id,omitempty"`
	Status            string `json:"status,omitempty"`
}

// RoundTrip reports whether a return date was captured.
func (b *BookingRecord) RoundTrip() bool {
	return b != nil && b.ReturnDate != ""
}

// Confirmed reports whether the record represents a completed booking.
func (b *BookingRecord) Confirmed() bool {
	return b != nil && (b.Status == "confirmed" || b.BookingID != "")
}
