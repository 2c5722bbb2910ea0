package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

type State string

const (
	StateWaitingForAttacker State = "waiting_for_attacker"
	StateResolving          State = "resolving"
	StateCheckWin           State = "check_win"
	StateNextTurn           State = "next_turn"
	StateFinished           State = "finished"
)

var ErrUnknownMatchState = errors.New("unknown match state")

type targetPicker interface {
	PickTarget(ctx context.Context, opponent *entity.Board) (int, error)
}

// TurnReport is what the driver hands back to whoever renders the match.
type TurnReport struct {
	Attacker   *entity.Player
	Defender   *entity.Player
	Coordinate int
	Result     entity.AttackResult
	Finished   bool
	Winner     *entity.Player
}

// Match alternates turns between exactly two players. Attacks are resolved
// one at a time in the order they are issued.
type Match struct {
	ID string

	logger  *slog.Logger
	players [2]*entity.Player
	pickers map[string]targetPicker

	current int
	state   State
	winner  *entity.Player
	turns   int
}

func NewMatch(logger *slog.Logger, id string, first, second *entity.Player) (*Match, error) {
	for _, player := range []*entity.Player{first, second} {
		if player == nil || player.Board == nil {
			return nil, fmt.Errorf("%w: player or board is nil", apperror.ErrPlayerNotFound)
		}

		if len(player.Board.Placements()) == 0 {
			return nil, fmt.Errorf("%w: player %s", apperror.ErrEmptyFleet, player.Name)
		}
	}

	if first.ID == second.ID {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSamePlayer, first.ID)
	}

	return &Match{
		ID:      id,
		logger:  logger.With("component", "match", "matchID", id),
		players: [2]*entity.Player{first, second},
		pickers: make(map[string]targetPicker, 2),
		state:   StateWaitingForAttacker,
	}, nil
}

// SetPicker assigns the strategy PlayTurn uses for the player.
func (that *Match) SetPicker(playerID string, picker targetPicker) error {
	if _, err := that.findPlayer(playerID); err != nil {
		return err
	}

	that.pickers[playerID] = picker

	return nil
}

func (that *Match) State() State {
	return that.state
}

func (that *Match) Current() *entity.Player {
	return that.players[that.current]
}

func (that *Match) Winner() *entity.Player {
	return that.winner
}

// Loser is nil until the match is finished.
func (that *Match) Loser() *entity.Player {
	if that.winner == nil {
		return nil
	}

	if that.players[0] == that.winner {
		return that.players[1]
	}

	return that.players[0]
}

func (that *Match) Turns() int {
	return that.turns
}

func (that *Match) IsFinished() bool {
	return that.state == StateFinished
}

// Attack resolves a directed attack by the player whose turn it is.
// Repeating an earlier attack does not use up the turn.
func (that *Match) Attack(ctx context.Context, playerID string, coordinate int) (*TurnReport, error) {
	if that.IsFinished() {
		return nil, apperror.ErrMatchFinished
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("match interrupted: %w", err)
	}

	if _, err := that.findPlayer(playerID); err != nil {
		return nil, err
	}

	attacker, defender := that.players[that.current], that.players[1-that.current]
	if attacker.ID != playerID {
		return nil, apperror.ErrNotYourTurn
	}

	that.state = StateResolving

	return that.resolve(attacker, defender, coordinate)
}

// PlayTurn lets the current player's picker choose a target and attacks it.
func (that *Match) PlayTurn(ctx context.Context) (*TurnReport, error) {
	if that.IsFinished() {
		return nil, apperror.ErrMatchFinished
	}

	attacker, defender := that.players[that.current], that.players[1-that.current]

	picker, ok := that.pickers[attacker.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMissingPicker, attacker.Name)
	}

	coordinate, err := picker.PickTarget(ctx, defender.Board)
	if err != nil {
		return nil, fmt.Errorf("failed to pick target for %s: %w", attacker.Name, err)
	}

	return that.Attack(ctx, attacker.ID, coordinate)
}

// Run plays turns until a fleet is sunk. The delay only paces the turns.
// A picker that chooses an already attacked coordinate stops the run,
// since the turn would never pass.
func (that *Match) Run(ctx context.Context, delay time.Duration) (*entity.Player, error) {
	log := that.logger.With("method", "Run")

	for {
		report, err := that.PlayTurn(ctx)
		if err != nil {
			return nil, err
		}

		if report.Finished {
			log.Info("match finished", "winner", report.Winner.Name, "turns", that.turns)
			return report.Winner, nil
		}

		if report.Result.AlreadyAttacked {
			return nil, fmt.Errorf("%w: %s picked %d", apperror.ErrRepeatedTarget, report.Attacker.Name, report.Coordinate)
		}

		if delay <= 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("match interrupted: %w", ctx.Err())
		case <-time.After(delay):
		}
	}
}

func (that *Match) resolve(attacker, defender *entity.Player, coordinate int) (*TurnReport, error) {
	log := that.logger.With("method", "resolve", "attacker", attacker.Name, "coordinate", coordinate)

	report := &TurnReport{
		Attacker:   attacker,
		Defender:   defender,
		Coordinate: coordinate,
	}

	for {
		switch that.state {
		case StateResolving:
			result, err := attacker.Attack(coordinate, defender.Board)
			if err != nil {
				that.state = StateWaitingForAttacker
				return nil, fmt.Errorf("failed to resolve attack: %w", err)
			}

			report.Result = result

			if result.AlreadyAttacked {
				log.Debug("coordinate already attacked", "outcome", result.Outcome)
				that.state = StateWaitingForAttacker

				return report, nil
			}

			log.Debug("attack resolved", "hit", result.IsHit(), "sunk", result.Sunk)
			that.state = StateCheckWin
		case StateCheckWin:
			if defender.Board.AllSunk() {
				that.winner = attacker
				that.state = StateFinished
				continue
			}

			that.state = StateNextTurn
		case StateNextTurn:
			that.turns++
			that.current = 1 - that.current
			that.state = StateWaitingForAttacker

			return report, nil
		case StateFinished:
			that.turns++
			report.Finished = true
			report.Winner = that.winner

			return report, nil
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownMatchState, that.state)
		}
	}
}

func (that *Match) findPlayer(playerID string) (*entity.Player, error) {
	for _, player := range that.players {
		if player.ID == playerID {
			return player, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, playerID)
}
