package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

type BotService interface {
	PickTarget(ctx context.Context, opponent *entity.Board) (int, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// PickTarget chooses uniformly among the opponent's coordinates that were never attacked.
func (that *botService) PickTarget(ctx context.Context, opponent *entity.Board) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("bot stopped: %w", err)
	}

	coordinate, err := opponent.RandomUnattackedCoordinate()
	if err != nil {
		return 0, fmt.Errorf("bot failed to pick a target: %w", err)
	}

	that.logger.Debug("target picked", "coordinate", coordinate)

	return coordinate, nil
}
