package entity

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
)

const (
	DefaultBoardSize         = 10
	DefaultPlacementAttempts = 1000
)

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

func (that Orientation) Validate() error {
	switch that {
	case Horizontal, Vertical:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidOrientation, string(that))
	}
}

type Outcome string

const (
	OutcomeMiss Outcome = "miss"
	OutcomeHit  Outcome = "hit"
)

// AttackResult describes how a board resolved a single attack.
// A repeated attack returns the result recorded the first time with AlreadyAttacked set.
type AttackResult struct {
	Outcome         Outcome `json:"outcome"`
	Sunk            bool    `json:"sunk,omitempty"`
	AlreadyAttacked bool    `json:"already_attacked,omitempty"`
}

func (that AttackResult) IsHit() bool {
	return that.Outcome == OutcomeHit
}

// Rand is a source of uniform random integers in [0, n).
type Rand interface {
	Intn(n int) int
}

type Placement struct {
	Vessel      *Vessel
	Coordinates []int
}

type slot struct {
	start       int
	orientation Orientation
}

// Board is one side's square grid. Coordinates are linear: row*size + column.
type Board struct {
	size              int
	adjacencyBuffer   bool
	placementAttempts int
	rng               Rand

	cells      []*Vessel
	placements []Placement
	attacks    map[int]AttackResult
}

type BoardOption func(*Board)

func WithSize(size int) BoardOption {
	return func(board *Board) {
		if size > 0 {
			board.size = size
		}
	}
}

// WithAdjacencyBuffer toggles the one-cell gap required around every vessel.
func WithAdjacencyBuffer(enabled bool) BoardOption {
	return func(board *Board) {
		board.adjacencyBuffer = enabled
	}
}

func WithRand(rng Rand) BoardOption {
	return func(board *Board) {
		board.rng = rng
	}
}

func WithPlacementAttempts(attempts int) BoardOption {
	return func(board *Board) {
		if attempts >= 0 {
			board.placementAttempts = attempts
		}
	}
}

func NewBoard(opts ...BoardOption) *Board {
	board := &Board{
		size:              DefaultBoardSize,
		adjacencyBuffer:   true,
		placementAttempts: DefaultPlacementAttempts,
	}

	for _, opt := range opts {
		opt(board)
	}

	if board.rng == nil {
		board.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	board.cells = make([]*Vessel, board.size*board.size)
	board.attacks = make(map[int]AttackResult)

	return board
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) CellCount() int {
	return len(that.cells)
}

func (that *Board) InBounds(coordinate int) bool {
	return coordinate >= 0 && coordinate < len(that.cells)
}

// PlaceVessel puts the vessel on the board starting at start and stepping
// one column (horizontal) or one row (vertical) per cell.
// The board is left untouched when the placement is rejected.
func (that *Board) PlaceVessel(vessel *Vessel, start int, orientation Orientation) error {
	coordinates, err := that.footprint(vessel, start, orientation)
	if err != nil {
		return err
	}

	for _, coordinate := range coordinates {
		that.cells[coordinate] = vessel
	}

	that.placements = append(that.placements, Placement{Vessel: vessel, Coordinates: coordinates})

	return nil
}

// CanPlace reports whether PlaceVessel would succeed, without changing the board.
func (that *Board) CanPlace(vessel *Vessel, start int, orientation Orientation) bool {
	_, err := that.footprint(vessel, start, orientation)
	return err == nil
}

// PlaceRandomly samples random slots for the vessel. Once the sampling budget
// is spent it enumerates every legal slot and picks one of them uniformly.
func (that *Board) PlaceRandomly(vessel *Vessel) error {
	if vessel == nil {
		return fmt.Errorf("%w: vessel is nil", apperror.ErrInvalidPlacement)
	}

	if that.isPlaced(vessel) {
		return apperror.ErrVesselAlreadyPlaced
	}

	for range that.placementAttempts {
		start := that.rng.Intn(len(that.cells))

		orientation := Horizontal
		if that.rng.Intn(2) == 1 {
			orientation = Vertical
		}

		if that.CanPlace(vessel, start, orientation) {
			return that.PlaceVessel(vessel, start, orientation)
		}
	}

	slots := that.legalSlots(vessel)
	if len(slots) == 0 {
		return fmt.Errorf("%w: length %d", apperror.ErrNoValidPlacement, vessel.Length())
	}

	chosen := slots[that.rng.Intn(len(slots))]

	return that.PlaceVessel(vessel, chosen.start, chosen.orientation)
}

// PlaceFleetRandomly places the vessels in order and stops at the first failure.
func (that *Board) PlaceFleetRandomly(fleet []*Vessel) error {
	for i, vessel := range fleet {
		if err := that.PlaceRandomly(vessel); err != nil {
			return fmt.Errorf("failed to place vessel %d: %w", i, err)
		}
	}

	return nil
}

// ReceiveAttack resolves an attack on the coordinate.
// Attacking the same coordinate again never damages a vessel twice.
func (that *Board) ReceiveAttack(coordinate int) (AttackResult, error) {
	if !that.InBounds(coordinate) {
		return AttackResult{}, fmt.Errorf("%w: %d", apperror.ErrOutOfBounds, coordinate)
	}

	if previous, ok := that.attacks[coordinate]; ok {
		previous.AlreadyAttacked = true
		return previous, nil
	}

	result := AttackResult{Outcome: OutcomeMiss}

	if vessel := that.cells[coordinate]; vessel != nil {
		vessel.Hit()
		result = AttackResult{Outcome: OutcomeHit, Sunk: vessel.IsSunk()}
	}

	that.attacks[coordinate] = result

	return result, nil
}

// AllSunk is vacuously true on a board without vessels.
func (that *Board) AllSunk() bool {
	for _, placement := range that.placements {
		if !placement.Vessel.IsSunk() {
			return false
		}
	}

	return true
}

func (that *Board) RemainingVessels() int {
	remaining := 0
	for _, placement := range that.placements {
		if !placement.Vessel.IsSunk() {
			remaining++
		}
	}

	return remaining
}

// RandomUnattackedCoordinate picks uniformly among coordinates that were neither hit nor missed.
func (that *Board) RandomUnattackedCoordinate() (int, error) {
	candidates := make([]int, 0, len(that.cells)-len(that.attacks))
	for coordinate := range that.cells {
		if _, attacked := that.attacks[coordinate]; !attacked {
			candidates = append(candidates, coordinate)
		}
	}

	if len(candidates) == 0 {
		return 0, apperror.ErrBoardExhausted
	}

	return candidates[that.rng.Intn(len(candidates))], nil
}

func (that *Board) IsAttacked(coordinate int) bool {
	_, attacked := that.attacks[coordinate]
	return attacked
}

// VesselAt returns nil for water.
func (that *Board) VesselAt(coordinate int) (*Vessel, error) {
	if !that.InBounds(coordinate) {
		return nil, fmt.Errorf("%w: %d", apperror.ErrOutOfBounds, coordinate)
	}

	return that.cells[coordinate], nil
}

func (that *Board) Placements() []Placement {
	placements := make([]Placement, 0, len(that.placements))
	for _, placement := range that.placements {
		placements = append(placements, Placement{
			Vessel:      placement.Vessel,
			Coordinates: slices.Clone(placement.Coordinates),
		})
	}

	return placements
}

func (that *Board) Missed() []int {
	return that.attacked(OutcomeMiss)
}

func (that *Board) Hits() []int {
	return that.attacked(OutcomeHit)
}

func (that *Board) attacked(outcome Outcome) []int {
	coordinates := make([]int, 0)
	for coordinate, result := range that.attacks {
		if result.Outcome == outcome {
			coordinates = append(coordinates, coordinate)
		}
	}

	slices.Sort(coordinates)

	return coordinates
}

// footprint validates a placement and returns the coordinates it would occupy.
func (that *Board) footprint(vessel *Vessel, start int, orientation Orientation) ([]int, error) {
	if vessel == nil {
		return nil, fmt.Errorf("%w: vessel is nil", apperror.ErrInvalidPlacement)
	}

	if !that.InBounds(start) {
		return nil, fmt.Errorf("%w: start %d", apperror.ErrOutOfBounds, start)
	}

	if err := orientation.Validate(); err != nil {
		return nil, err
	}

	if that.isPlaced(vessel) {
		return nil, apperror.ErrVesselAlreadyPlaced
	}

	step := 1
	if orientation == Vertical {
		step = that.size
	}

	if orientation == Horizontal && start%that.size+vessel.Length() > that.size {
		return nil, fmt.Errorf("%w: vessel wraps past the end of row %d", apperror.ErrInvalidPlacement, start/that.size)
	}

	coordinates := make([]int, 0, vessel.Length())
	for i := range vessel.Length() {
		coordinate := start + i*step

		if !that.InBounds(coordinate) {
			return nil, fmt.Errorf("%w: vessel runs off the board at %d", apperror.ErrInvalidPlacement, coordinate)
		}

		if that.cells[coordinate] != nil {
			return nil, fmt.Errorf("%w: cell %d is occupied", apperror.ErrInvalidPlacement, coordinate)
		}

		if that.adjacencyBuffer && that.touchesVessel(coordinate) {
			return nil, fmt.Errorf("%w: cell %d touches another vessel", apperror.ErrInvalidPlacement, coordinate)
		}

		coordinates = append(coordinates, coordinate)
	}

	return coordinates, nil
}

// touchesVessel checks the 8 neighbours of the coordinate without wrapping across rows.
func (that *Board) touchesVessel(coordinate int) bool {
	row, column := coordinate/that.size, coordinate%that.size

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, column+dc
			if r < 0 || r >= that.size || c < 0 || c >= that.size {
				continue
			}

			if that.cells[r*that.size+c] != nil {
				return true
			}
		}
	}

	return false
}

func (that *Board) legalSlots(vessel *Vessel) []slot {
	slots := make([]slot, 0)
	for start := range that.cells {
		for _, orientation := range []Orientation{Horizontal, Vertical} {
			if that.CanPlace(vessel, start, orientation) {
				slots = append(slots, slot{start: start, orientation: orientation})
			}
		}
	}

	return slots
}

func (that *Board) isPlaced(vessel *Vessel) bool {
	for _, placement := range that.placements {
		if placement.Vessel == vessel {
			return true
		}
	}

	return false
}
