package entity

import (
	"testing"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVessel(t *testing.T) {
	t.Run("Creates an undamaged vessel", func(t *testing.T) {
		// When: a vessel of length 3 is created
		vessel, err := NewVessel(3)

		// Then: it is afloat without hits
		require.NoError(t, err)
		assert.Equal(t, 3, vessel.Length())
		assert.Equal(t, 0, vessel.Hits())
		assert.False(t, vessel.IsSunk())
	})

	t.Run("Rejects non-positive lengths", func(t *testing.T) {
		for _, length := range []int{0, -1, -10} {
			// When: a vessel with a non-positive length is created
			vessel, err := NewVessel(length)

			// Then: ErrInvalidLength is returned
			require.ErrorIs(t, err, apperror.ErrInvalidLength)
			assert.Nil(t, vessel)
		}
	})
}

func TestVessel_Hit(t *testing.T) {
	t.Run("Sinks exactly when hits reach length", func(t *testing.T) {
		// Given: a vessel of length 3
		vessel, err := NewVessel(3)
		require.NoError(t, err)

		// When: it is hit twice
		vessel.Hit()
		vessel.Hit()

		// Then: it is still afloat
		assert.False(t, vessel.IsSunk())

		// When: it is hit a third time
		vessel.Hit()

		// Then: it is sunk
		assert.True(t, vessel.IsSunk())
		assert.Equal(t, 3, vessel.Hits())
	})

	t.Run("Extra hits on a sunk vessel are ignored", func(t *testing.T) {
		// Given: a sunk vessel of length 1
		vessel, err := NewVessel(1)
		require.NoError(t, err)
		vessel.Hit()

		// When: it is hit again
		vessel.Hit()
		vessel.Hit()

		// Then: damage stays capped and the vessel stays sunk
		assert.Equal(t, 1, vessel.Hits())
		assert.True(t, vessel.IsSunk())
	})
}

func TestNewFleet(t *testing.T) {
	t.Run("Keeps the order of lengths", func(t *testing.T) {
		// When: a fleet is built from lengths
		fleet, err := NewFleet([]int{3, 3, 4})

		// Then: one vessel per length is created in order
		require.NoError(t, err)
		require.Len(t, fleet, 3)
		assert.Equal(t, 3, fleet[0].Length())
		assert.Equal(t, 3, fleet[1].Length())
		assert.Equal(t, 4, fleet[2].Length())
	})

	t.Run("Fails on an invalid length", func(t *testing.T) {
		// When: one of the lengths is zero
		fleet, err := NewFleet([]int{3, 0})

		// Then: ErrInvalidLength is returned
		require.ErrorIs(t, err, apperror.ErrInvalidLength)
		assert.Nil(t, fleet)
	})
}
