package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/battleship-backend/internal/config"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
	"github.com/rocketscienceinc/battleship-backend/internal/pkg"
	"github.com/rocketscienceinc/battleship-backend/internal/service"
	"github.com/rocketscienceinc/battleship-backend/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	seed := conf.Match.RandomSeed()
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // it's ok

	match, err := SetupMatch(logger, conf, rng)
	if err != nil {
		return fmt.Errorf("failed to set up match: %w", err)
	}

	log.Info("Starting match", "matchID", match.ID, "seed", seed)

	_, err = match.Run(ctx, conf.Match.TurnDelay)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	log.Info("Match won", append([]any{"matchID", match.ID}, shotStats(match)...)...)

	return nil
}

// shotStats describes a finished match: the shots the winner landed on the
// loser's board and the winner's vessels still afloat.
func shotStats(match *usecase.Match) []any {
	winner, loser := match.Winner(), match.Loser()
	if winner == nil || loser == nil {
		return []any{"turns", match.Turns()}
	}

	return []any{
		"winner", winner.Name,
		"turns", match.Turns(),
		"hits", len(loser.Board.Hits()),
		"misses", len(loser.Board.Missed()),
		"remainingVessels", winner.Board.RemainingVessels(),
	}
}

// SetupMatch builds both players, places their fleets and wires a bot for each side.
func SetupMatch(logger *slog.Logger, conf *config.Config, rng entity.Rand) (*usecase.Match, error) {
	log := logger.With("component", "setup")

	players := make([]*entity.Player, 0, 2)
	for _, name := range []string{conf.Match.FirstPlayer, conf.Match.SecondPlayer} {
		board := entity.NewBoard(
			entity.WithSize(conf.Board.Size),
			entity.WithAdjacencyBuffer(!conf.Board.AllowTouching),
			entity.WithPlacementAttempts(conf.Board.PlacementAttempts),
			entity.WithRand(rng),
		)

		fleet, err := entity.NewFleet(conf.Board.Fleet)
		if err != nil {
			return nil, fmt.Errorf("failed to build fleet for %s: %w", name, err)
		}

		if err = board.PlaceFleetRandomly(fleet); err != nil {
			return nil, fmt.Errorf("failed to place fleet for %s: %w", name, err)
		}

		player := entity.NewPlayer(name, board)
		log.Debug("fleet placed", "player", player.Name, "playerID", player.ID, "vessels", len(fleet))

		players = append(players, player)
	}

	match, err := usecase.NewMatch(logger, pkg.GenerateMatchID(), players[0], players[1])
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	bot := service.NewBotService(logger)
	for _, player := range players {
		if err = match.SetPicker(player.ID, bot); err != nil {
			return nil, fmt.Errorf("failed to assign bot: %w", err)
		}
	}

	return match, nil
}
