package hotels

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/bjaus/fixtab"
)

// Expense is what a traveler pays for their stay.
type Expense struct {
	Traveler Traveler        `json:"traveler" yaml:"traveler"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
}

// Encode writes surname, name and amount.
func (x Expense) Encode(e fixtab.Encoder) error {
	return fixtab.EncodeAny(e, fixtab.Tup(x.Traveler.Surname, x.Traveler.Name, x.Amount))
}

// ChosenHotels returns the hotels at least one traveler stays in. Hotels are
// deduplicated by name; the first occurrence wins.
func ChosenHotels(hotels iter.Seq[Hotel], travelers iter.Seq[Traveler]) *fixtab.List[Hotel] {
	chosen := chosenNames(travelers)
	return fixtab.Collect(uniqueHotels(hotels, func(h Hotel) bool {
		_, ok := chosen[h.Name]
		return ok
	}))
}

// UnchosenHotels returns the hotels no traveler stays in, deduplicated by
// name.
func UnchosenHotels(hotels iter.Seq[Hotel], travelers iter.Seq[Traveler]) *fixtab.List[Hotel] {
	chosen := chosenNames(travelers)
	return fixtab.Collect(uniqueHotels(hotels, func(h Hotel) bool {
		_, ok := chosen[h.Name]
		return !ok
	}))
}

// MostNights returns the travelers with the most nights, ordered by
// [Compare].
func MostNights(travelers iter.Seq[Traveler]) *fixtab.List[Traveler] {
	var top []Traveler
	var most uint
	for t := range travelers {
		switch {
		case t.Nights > most:
			most = t.Nights
			top = append(top[:0], t)
		case t.Nights == most:
			top = append(top, t)
		}
	}
	slices.SortStableFunc(top, Compare)
	return fixtab.NewList(top...)
}

// TravelersWithinBudget returns, in traveler order, the expense of every
// traveler whose hotel is known and whose stay costs no more than limit.
// When several hotels share a name the first one is used.
func TravelersWithinBudget(hotels iter.Seq[Hotel], travelers iter.Seq[Traveler], limit decimal.Decimal) *fixtab.List[Expense] {
	prices := make(map[string]decimal.Decimal)
	for h := range hotels {
		if _, ok := prices[h.Name]; !ok {
			prices[h.Name] = h.PricePerNight
		}
	}
	out := &fixtab.List[Expense]{}
	for t := range travelers {
		price, ok := prices[t.HotelName]
		if !ok {
			continue
		}
		amount := price.Mul(decimal.NewFromInt(int64(t.Nights)))
		if amount.GreaterThan(limit) {
			continue
		}
		out.PushBack(Expense{Traveler: t, Amount: amount})
	}
	return out
}

func chosenNames(travelers iter.Seq[Traveler]) map[string]struct{} {
	names := make(map[string]struct{})
	for t := range travelers {
		names[t.HotelName] = struct{}{}
	}
	return names
}

func uniqueHotels(hotels iter.Seq[Hotel], keep func(Hotel) bool) iter.Seq[Hotel] {
	return func(yield func(Hotel) bool) {
		seen := make(map[string]struct{})
		for h := range hotels {
			if _, dup := seen[h.Name]; dup {
				continue
			}
			seen[h.Name] = struct{}{}
			if keep(h) && !yield(h) {
				return
			}
		}
	}
}
