package model

// Kind identifies one of the four series families exposed by the platform.
type Kind int

const (
	KindConsumption Kind = iota
	KindProduction
	KindExchange
	KindPrice
)

// String returns the lower-case name used in metrics labels, topics and table names.
func (k Kind) String() string {
	switch k {
	case KindConsumption:
		return "consumption"
	case KindProduction:
		return "production"
	case KindExchange:
		return "exchange"
	case KindPrice:
		return "price"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{KindConsumption, KindProduction, KindExchange, KindPrice} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}
