package amadeus

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/flight-offers/offer-search-service/internal/domain"
)

// Normalize converts a raw Amadeus flight-offers search response into
// canonical domain offers plus the resolved display currency. The currency
// comes from the first record that carries a usable price and both raw
// itineraries, even when that record is later dropped for invalid segments;
// later offers with a different currency are still accepted unchecked.
//
// The payload is untrusted. A missing or non-array "data" field yields an
// empty result, not an error. Individual records that cannot be normalized
// (unparseable price, missing currency, absent or empty itineraries) are
// silently skipped; partial results are preferred over strict validation
// because the upstream data cannot be controlled by the caller.
func Normalize(payload []byte) domain.OfferSet {
	result := domain.OfferSet{Offers: []domain.Offer{}}

	var resp rawSearchResponse
	if err := json.Unmarshal(payload, &resp); err != nil || resp.Data == nil {
		return result
	}

	var records []json.RawMessage
	if err := json.Unmarshal(resp.Data, &records); err != nil {
		return result
	}

	result.Offers = make([]domain.Offer, 0, len(records))

	for _, record := range records {
		var raw rawOffer
		if err := json.Unmarshal(record, &raw); err != nil {
			continue
		}

		offer, currency, ok := normalizeOffer(raw)
		if currency != "" && result.Currency == nil {
			c := currency
			result.Currency = &c
		}
		if !ok {
			continue
		}
		result.Offers = append(result.Offers, offer)
	}

	return result
}

// normalizeOffer validates one raw record and constructs a domain Offer.
// It returns ok=false when any required part of the record is missing or
// unparseable. The currency is returned separately and is non-empty once
// the record has passed the price and itinerary-presence checks, so a
// record whose segments are all invalid can still nominate the display
// currency.
func normalizeOffer(raw rawOffer) (domain.Offer, string, bool) {
	id := raw.ID
	if id == "" {
		id = uuid.NewString()
	}

	if len(raw.Itineraries) < 2 ||
		len(raw.Itineraries[0].Segments) == 0 || len(raw.Itineraries[1].Segments) == 0 {
		return domain.Offer{}, "", false
	}

	if raw.Price == nil {
		return domain.Offer{}, "", false
	}
	amount, ok := parseAmount(raw.Price.GrandTotal)
	if !ok || amount < 0 {
		return domain.Offer{}, "", false
	}
	currency := strings.ToUpper(strings.TrimSpace(raw.Price.Currency))
	if currency == "" {
		return domain.Offer{}, "", false
	}

	outSegments := normalizeSegments(id, "o", raw.Itineraries[0].Segments)
	inSegments := normalizeSegments(id, "i", raw.Itineraries[1].Segments)
	if len(outSegments) == 0 || len(inSegments) == 0 {
		return domain.Offer{}, currency, false
	}

	outStops := len(outSegments) - 1
	inStops := len(inSegments) - 1
	stopsMax := outStops
	if inStops > stopsMax {
		stopsMax = inStops
	}

	return domain.Offer{
		ID:                     id,
		Price:                  domain.Money{Amount: amount, Currency: currency},
		ValidatingAirlineCodes: nonEmpty(raw.ValidatingAirlineCodes),
		Airlines:               carrierUnion(outSegments, inSegments),
		Outbound: domain.Itinerary{
			ID:              id + "-out",
			Duration:        raw.Itineraries[0].Duration,
			Stops:           outStops,
			DepartLocalHour: localHourFromTimestamp(outSegments[0].DepartAt),
			Segments:        outSegments,
		},
		Inbound: domain.Itinerary{
			ID:              id + "-in",
			Duration:        raw.Itineraries[1].Duration,
			Stops:           inStops,
			DepartLocalHour: localHourFromTimestamp(inSegments[0].DepartAt),
			Segments:        inSegments,
		},
		StopsMax: stopsMax,
	}, currency, true
}

// normalizeSegments maps raw segments to the canonical shape, generating
// fallback ids of the form "<offerId>-<direction>-<index>", and drops any
// segment missing a required field.
func normalizeSegments(offerID, direction string, segments []rawSegment) []domain.Segment {
	result := make([]domain.Segment, 0, len(segments))

	for idx, s := range segments {
		seg := domain.Segment{
			ID:           s.ID,
			CarrierCode:  s.CarrierCode,
			FlightNumber: s.Number,
			Duration:     s.Duration,
		}
		if seg.ID == "" {
			seg.ID = fmt.Sprintf("%s-%s-%d", offerID, direction, idx)
		}
		if s.Departure != nil {
			seg.From = s.Departure.IataCode
			seg.DepartAt = s.Departure.At
		}
		if s.Arrival != nil {
			seg.To = s.Arrival.IataCode
			seg.ArriveAt = s.Arrival.At
		}

		if seg.From == "" || seg.To == "" || seg.DepartAt == "" || seg.ArriveAt == "" || seg.CarrierCode == "" {
			continue
		}
		result = append(result, seg)
	}

	return result
}

// parseAmount reads the offer total, accepting either a JSON number or a
// numeric string. Non-finite values are rejected.
func parseAmount(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, !math.IsInf(n, 0) && !math.IsNaN(n)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// localHourFromTimestamp reads the local wall-clock hour directly from a
// provider timestamp such as "2026-03-01T08:20:00-05:00": the two characters
// at offset 11 are the hour digits. No timezone conversion is performed.
// Returns nil when the string is too short or the digits do not parse.
func localHourFromTimestamp(at string) *int {
	if len(at) < 13 {
		return nil
	}
	hour, err := strconv.Atoi(at[11:13])
	if err != nil {
		return nil
	}
	return &hour
}

// carrierUnion returns the sorted, duplicate-free union of carrier codes
// across both itineraries.
func carrierUnion(outbound, inbound []domain.Segment) []string {
	seen := make(map[string]struct{})
	for _, s := range outbound {
		seen[s.CarrierCode] = struct{}{}
	}
	for _, s := range inbound {
		seen[s.CarrierCode] = struct{}{}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// nonEmpty filters blank entries out of a string slice, preserving order.
func nonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
