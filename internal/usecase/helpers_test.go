package usecase

import (
	"github.com/flight-offers/offer-search-service/internal/domain"
)

// mkOffer builds a minimal valid offer for pipeline tests.
func mkOffer(id string, price float64, stopsMax int, hour int, airlines ...string) domain.Offer {
	h := hour
	if len(airlines) == 0 {
		airlines = []string{"AA"}
	}
	segments := func(dir string) []domain.Segment {
		return []domain.Segment{{
			ID:          id + "-" + dir + "-0",
			From:        "JFK",
			To:          "DFW",
			DepartAt:    "2026-03-01T08:20:00-05:00",
			ArriveAt:    "2026-03-01T11:40:00-06:00",
			CarrierCode: airlines[0],
		}}
	}
	return domain.Offer{
		ID:       id,
		Price:    domain.Money{Amount: price, Currency: "USD"},
		Airlines: airlines,
		Outbound: domain.Itinerary{
			ID:              id + "-out",
			Stops:           stopsMax,
			DepartLocalHour: &h,
			Segments:        segments("o"),
		},
		Inbound: domain.Itinerary{
			ID:       id + "-in",
			Segments: segments("i"),
		},
		StopsMax: stopsMax,
	}
}

// ptr returns a pointer to the given value.
func ptr[T any](v T) *T {
	return &v
}
