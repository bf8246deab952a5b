package hotels

import (
	"cmp"
	"fmt"

	"github.com/bjaus/fixtab"
)

// Traveler is one stay: surname, name, hotelName, roomType, nights.
type Traveler struct {
	Surname   string `json:"surname" yaml:"surname"`
	Name      string `json:"name" yaml:"name"`
	HotelName string `json:"hotelName" yaml:"hotelName"`
	RoomType  string `json:"roomType" yaml:"roomType"`
	Nights    uint   `json:"nights" yaml:"nights"`
}

// DecodeTraveler reads a Traveler. The four text fields must be non-empty
// after trimming and nights must be positive.
func DecodeTraveler(d fixtab.Decoder) (Traveler, error) {
	var t Traveler
	var err error
	if t.Surname, err = requiredText(d, "surname"); err != nil {
		return Traveler{}, err
	}
	if t.Name, err = requiredText(d, "name"); err != nil {
		return Traveler{}, err
	}
	if t.HotelName, err = requiredText(d, "hotel name"); err != nil {
		return Traveler{}, err
	}
	if t.RoomType, err = requiredText(d, "room type"); err != nil {
		return Traveler{}, err
	}
	nights, err := d.DecodeUint()
	if err != nil {
		return Traveler{}, err
	}
	if nights == 0 {
		return Traveler{}, fmt.Errorf("%w: nights must be positive", fixtab.ErrDataInvalid)
	}
	if uint64(uint(nights)) != nights {
		return Traveler{}, fmt.Errorf("%w: nights %d out of range", fixtab.ErrDataInvalid, nights)
	}
	t.Nights = uint(nights)
	return t, nil
}

// Encode writes surname, name, hotel name, room type and nights.
func (t Traveler) Encode(e fixtab.Encoder) error {
	for _, s := range []string{t.Surname, t.Name, t.HotelName, t.RoomType} {
		if err := e.EncodeString(s); err != nil {
			return err
		}
	}
	return e.EncodeUint(uint64(t.Nights))
}

func (t Traveler) String() string {
	return fmt.Sprintf("%s %s %s %s %d", t.Surname, t.Name, t.HotelName, t.RoomType, t.Nights)
}

// Compare orders travelers by surname, then name.
func Compare(a, b Traveler) int {
	if c := cmp.Compare(a.Surname, b.Surname); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}
