package apperror

import "errors"

var (
	ErrInvalidLength       = errors.New("vessel length must be positive")
	ErrOutOfBounds         = errors.New("coordinate is out of board bounds")
	ErrInvalidOrientation  = errors.New("invalid orientation")
	ErrInvalidPlacement    = errors.New("invalid vessel placement")
	ErrVesselAlreadyPlaced = errors.New("vessel is already placed")
	ErrNoValidPlacement    = errors.New("no valid placement left for vessel")
	ErrBoardExhausted      = errors.New("every coordinate has already been attacked")
	ErrEmptyFleet          = errors.New("fleet has no vessels")

	ErrMatchFinished  = errors.New("match is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrPlayerNotFound = errors.New("player not found")
	ErrSamePlayer     = errors.New("player cannot play against itself")
	ErrMissingPicker  = errors.New("target picker is missing for player")
	ErrRepeatedTarget = errors.New("target picker chose an already attacked coordinate")
)
