package domain

// SortOption defines the available sorting options for offer results.
type SortOption string

// Available sort options.
const (
	// SortByBest orders by fewest stops, breaking ties on price (default)
	SortByBest SortOption = "best"

	// SortByPrice orders by price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByStops orders by stopsMax ascending (fewest stops first)
	SortByStops SortOption = "stops"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByBest, SortByPrice, SortByStops:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByBest if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByBest
}
