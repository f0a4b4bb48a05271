package models

// Currency codes supported by the reference deployment.
const (
	USD = "USD"
	EUR = "EUR"
	RUB = "RUB"
	GBP = "GBP"
)

// CurrencySet is the configured set of supported ISO currency codes. It is
// injected into every component that validates currencies, so a deployment can
// extend the set without touching validation logic.
type CurrencySet struct {
	codes []string
	index map[string]struct{}
}

// NewCurrencySet builds a CurrencySet from the given codes, dropping duplicates
// and preserving order.
func NewCurrencySet(codes ...string) CurrencySet {
	s := CurrencySet{index: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		if _, ok := s.index[code]; ok {
			continue
		}
		s.index[code] = struct{}{}
		s.codes = append(s.codes, code)
	}
	return s
}

// DefaultCurrencySet returns the four currencies of the reference deployment.
func DefaultCurrencySet() CurrencySet {
	return NewCurrencySet(USD, EUR, RUB, GBP)
}

// Contains reports whether code belongs to the set.
func (s CurrencySet) Contains(code string) bool {
	_, ok := s.index[code]
	return ok
}

// Codes returns a copy of all codes in the set.
func (s CurrencySet) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// Others returns all codes in the set except the given one.
func (s CurrencySet) Others(code string) []string {
	out := make([]string, 0, len(s.codes))
	for _, c := range s.codes {
		if c != code {
			out = append(out, c)
		}
	}
	return out
}
