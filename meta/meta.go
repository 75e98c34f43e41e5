// meta/meta.go
package meta

// InitialRed is the red pool size at the start of a game.
const InitialRed = 10

// InitialBlue is the blue pool size at the start of a game.
const InitialBlue = 10

// Depth is the search depth of the automated player.
const Depth = 3

// MaxTurns bounds a game loop. Every legal move removes at least one marble,
// so a game from the initial pools ends well before it.
const MaxTurns = 100

// DefaultAddr is the listen address of the move server.
const DefaultAddr = ":8080"

// MaxDepth is the deepest search the move server accepts.
const MaxDepth = 8
