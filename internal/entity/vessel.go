package entity

import (
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

// Vessel is a fleet member occupying a straight line of cells.
type Vessel struct {
	length int
	hits   int
	sunk   bool
}

func NewVessel(length int) (*Vessel, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: length %d", apperror.ErrInvalidLength, length)
	}

	return &Vessel{length: length}, nil
}

// NewFleet creates one vessel per length, keeping the given order.
func NewFleet(lengths []int) ([]*Vessel, error) {
	fleet := make([]*Vessel, 0, len(lengths))
	for _, length := range lengths {
		vessel, err := NewVessel(length)
		if err != nil {
			return nil, fmt.Errorf("failed to create fleet: %w", err)
		}

		fleet = append(fleet, vessel)
	}

	return fleet, nil
}

// Hit registers one point of damage. Hits on a sunk vessel are ignored.
func (that *Vessel) Hit() {
	if that.sunk {
		return
	}

	that.hits++
	that.sunk = that.hits >= that.length
}

func (that *Vessel) IsSunk() bool {
	return that.sunk
}

func (that *Vessel) Length() int {
	return that.length
}

func (that *Vessel) Hits() int {
	return that.hits
}
