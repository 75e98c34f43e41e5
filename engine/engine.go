package engine

import "errors"

var ErrGameOver = errors.New("game is over")

// NoWinner marks a drawn, stalled or unfinished game.
const NoWinner = -1
