package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Player is one side of a match: an identity paired with its own board.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Board *Board `json:"-"`
}

func NewPlayer(name string, board *Board) *Player {
	return &Player{
		ID:    uuid.NewString()[:10],
		Name:  name,
		Board: board,
	}
}

func (that *Player) Attack(coordinate int, opponent *Board) (AttackResult, error) {
	result, err := opponent.ReceiveAttack(coordinate)
	if err != nil {
		return AttackResult{}, fmt.Errorf("failed to attack %d: %w", coordinate, err)
	}

	return result, nil
}

// AttackRandomly fires at a coordinate of the opponent's board that was never attacked before.
func (that *Player) AttackRandomly(opponent *Board) (int, AttackResult, error) {
	coordinate, err := opponent.RandomUnattackedCoordinate()
	if err != nil {
		return 0, AttackResult{}, fmt.Errorf("failed to choose a target: %w", err)
	}

	result, err := that.Attack(coordinate, opponent)
	if err != nil {
		return coordinate, AttackResult{}, err
	}

	return coordinate, result, nil
}
