// Package hotels defines the hotel and traveler records, the reports built
// from them and the table views they are displayed in.
package hotels

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bjaus/fixtab"
)

// Hotel is one room offer: name, roomType, pricePerNight.
type Hotel struct {
	Name          string          `json:"name" yaml:"name"`
	RoomType      string          `json:"roomType" yaml:"roomType"`
	PricePerNight decimal.Decimal `json:"pricePerNight" yaml:"pricePerNight"`
}

// DecodeHotel reads a Hotel. Name and room type must be non-empty after
// trimming and the price must be positive.
func DecodeHotel(d fixtab.Decoder) (Hotel, error) {
	name, err := requiredText(d, "hotel name")
	if err != nil {
		return Hotel{}, err
	}
	room, err := requiredText(d, "room type")
	if err != nil {
		return Hotel{}, err
	}
	price, err := d.DecodeDecimal()
	if err != nil {
		return Hotel{}, err
	}
	if !price.IsPositive() {
		return Hotel{}, fmt.Errorf("%w: price per night must be positive, got %s", fixtab.ErrDataInvalid, price)
	}
	return Hotel{Name: name, RoomType: room, PricePerNight: price}, nil
}

// Encode writes name, room type and price.
func (h Hotel) Encode(e fixtab.Encoder) error {
	if err := e.EncodeString(h.Name); err != nil {
		return err
	}
	if err := e.EncodeString(h.RoomType); err != nil {
		return err
	}
	return e.EncodeDecimal(h.PricePerNight)
}

func (h Hotel) String() string {
	return fmt.Sprintf("%s %s %s", h.Name, h.RoomType, fixtab.FormatDecimal(h.PricePerNight))
}

func requiredText(d fixtab.Decoder, field string) (string, error) {
	s, err := d.DecodeString()
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: %s is empty", fixtab.ErrDataInvalid, field)
	}
	return s, nil
}
