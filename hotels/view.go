package hotels

import (
	"iter"

	"github.com/bjaus/fixtab"
)

// HotelsView lays out full hotel records.
func HotelsView(title string) fixtab.View {
	return fixtab.View{Title: title, Columns: []fixtab.Column{
		{Label: "Name", Width: 15},
		{Label: "Room", Width: 10},
		{Label: "Price", Width: 8},
	}}
}

// HotelNamesView lays out hotel names only. Use with [Names].
func HotelNamesView(title string) fixtab.View {
	return fixtab.View{Title: title, Columns: []fixtab.Column{
		{Label: "Name", Width: 15},
	}}
}

// TravelersView lays out full traveler records.
func TravelersView(title string) fixtab.View {
	return fixtab.View{Title: title, Columns: []fixtab.Column{
		{Label: "Surname", Width: 10},
		{Label: "Name", Width: 10},
		{Label: "Hotel", Width: 15},
		{Label: "Room", Width: 10},
		{Label: "Nights", Width: 8},
	}}
}

// FullNamesView lays out traveler surname and name. Use with [FullNames].
func FullNamesView(title string) fixtab.View {
	return fixtab.View{Title: title, Columns: []fixtab.Column{
		{Label: "Surname", Width: 10},
		{Label: "Name", Width: 10},
	}}
}

// ExpensesView lays out [Expense] values.
func ExpensesView(title string) fixtab.View {
	return fixtab.View{Title: title, Columns: []fixtab.Column{
		{Label: "Surname", Width: 10},
		{Label: "Name", Width: 10},
		{Label: "Paid", Width: 8},
	}}
}

// Names yields the name of each hotel.
func Names(hotels iter.Seq[Hotel]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for h := range hotels {
			if !yield(h.Name) {
				return
			}
		}
	}
}

// FullNames yields (surname, name) for each traveler.
func FullNames(travelers iter.Seq[Traveler]) iter.Seq[fixtab.Tuple] {
	return func(yield func(fixtab.Tuple) bool) {
		for t := range travelers {
			if !yield(fixtab.Tup(t.Surname, t.Name)) {
				return
			}
		}
	}
}

// Display renders items in view through sink, one line at a time.
func Display[T any](items iter.Seq[T], view fixtab.View, sink func(string)) error {
	return fixtab.RenderTable(view.Title, view.Columns, items, sink)
}
