package extract

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/attar-travel/voicedesk/internal/patterns"
	"github.com/attar-travel/voicedesk/internal/transcript"
)

// Default field values when nothing matched.
const (
	DefaultCurrency   = "₹"
	DefaultCabinClass = "Economy"
)

// Word-count floor below which an inquiry-phrase match suppresses the
// booking; longer conversations with inquiry phrases can still book.
const inquiryWordThreshold = 100

// Extractor turns a transcript into a BookingRecord, or reports that no
// booking happened. Absence is the ordinary outcome for inquiry calls
// and is logged at Info, never as an error.
type Extractor struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger, now: time.Now}
}

// Booking extracts booking details from the transcript. priorSummary is
// the platform-generated summary; it is carried for logging only and
// never used for extraction.
func (e *Extractor) Booking(turns []transcript.Turn, priorSummary string) (*BookingRecord, bool) {
	if len(turns) == 0 {
		e.logger.Info("empty transcript, no booking extracted", "prior_summary_len", len(priorSummary))
		return nil, false
	}

	combined := transcript.CombinedText(turns)
	userOnly := transcript.UserText(turns)

	rec := &BookingRecord{
		Currency:   DefaultCurrency,
		Passengers: 1,
		CabinClass: DefaultCabinClass,
	}

	if m := patterns.AirlineRE.FindStringSubmatch(combined); m != nil {
		rec.Airline = m[1]
	}
	if m := patterns.FlightNumberRE.FindStringSubmatch(combined); m != nil {
		rec.FlightNumber = m[1]
	}

	// Route phrasings are tried in declared order, first match wins;
	// the user-only text is the fallback when the combined text has none.
	rec.DepartureLocation, rec.Destination = matchRoute(combined)
	if rec.DepartureLocation == "" || rec.Destination == "" {
		rec.DepartureLocation, rec.Destination = matchRoute(userOnly)
	}

	dates := collectDates(combined)
	if len(dates) >= 1 {
		rec.DepartureDate = dates[0]
	}
	if len(dates) >= 2 {
		rec.ReturnDate = dates[1]
	}

	times := patterns.TimeRE.FindAllStringSubmatch(combined, -1)
	if len(times) >= 1 {
		rec.DepartureTime = times[0][1]
	}
	if len(times) >= 2 {
		rec.ArrivalTime = times[1][1]
	}

	if m := patterns.PriceRE.FindStringSubmatch(combined); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		if n, err := strconv.Atoi(strings.ReplaceAll(raw, ",", "")); err == nil {
			rec.Price = n
		}
	}

	if m := patterns.PassengerRE.FindStringSubmatch(combined); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			rec.Passengers = n
		}
	}

	if m := patterns.CabinRE.FindStringSubmatch(combined); m != nil {
		rec.CabinClass = capitalize(m[1])
	}

	if m := patterns.BookingRefRE.FindStringSubmatch(combined); m != nil {
		rec.BookingID = m[1]
	} else {
		rec.BookingID = "BK_" + e.now().Format("20060102150405")
	}

	// Gates: a record is returned only when the conversation shows an
	// actual booking, not just an inquiry.
	if !patterns.ContainsAny(combined, patterns.ConfirmationKeywords) {
		e.logger.Info("no confirmation keyword in conversation, no booking extracted")
		return nil, false
	}
	if rec.DepartureLocation == "" || rec.Destination == "" {
		e.logger.Info("missing departure or destination, no booking extracted")
		return nil, false
	}
	if patterns.ContainsAny(combined, patterns.InquiryPhrases) && transcript.WordCount(combined) < inquiryWordThreshold {
		e.logger.Info("inquiry/greeting only, no booking extracted")
		return nil, false
	}

	e.logger.Info("booking extracted",
		"airline", rec.Airline,
		"from", rec.DepartureLocation,
		"to", rec.Destination,
		"booking_id", rec.BookingID,
	)
	return rec, true
}

func matchRoute(text string) (origin, destination string) {
	for _, re := range patterns.RouteREs {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		}
	}
	return "", ""
}

type dateSpan struct {
	start, end int
	text       string
}

// collectDates gathers matches from all five date shapes and orders them
// by position in the text: first occurrence is the departure date, second
// the return date. Overlapping spans keep the earliest (longest on ties)
// so one substring never yields two dates.
func collectDates(text string) []string {
	var spans []dateSpan
	for _, re := range patterns.DateREs {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			spans = append(spans, dateSpan{start: loc[2], end: loc[3], text: text[loc[2]:loc[3]]})
		}
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	var out []string
	lastEnd := -1
	for _, s := range spans {
		if s.start < lastEnd {
			continue
		}
		out = append(out, s.text)
		lastEnd = s.end
	}
	return out
}
