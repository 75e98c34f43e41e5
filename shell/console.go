package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"redblue/engine"
	"redblue/experiments/metrics"
	"redblue/game"
	"redblue/searcher"
	"redblue/searcher/agent"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

var (
	ErrNoInput = errors.New("no input")

	errMoveFormat  = errors.New("move must be two fields")
	errMoveNumbers = errors.New("move fields must be integers")
)

var inputMessages = map[error]string{
	errMoveFormat:  "Invalid input format. Use 'red blue' format.",
	errMoveNumbers: "Invalid input. Enter integers for red and blue marbles.",
}

// Names of the two seats in an interactive game. The human moves first.
var Names = [2]string{"Player", "AI"}

// Console is the text front end of a game: it prints the state, reads typed
// moves and announces the result.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// ReadVariant asks for the variant to play.
func (c *Console) ReadVariant() (game.Variant, error) {
	fmt.Fprint(c.out, "Enter game version (standard/misere): ")
	line, ok := c.readLine()
	if !ok {
		return game.Unknown, ErrNoInput
	}
	variant, err := game.ParseVariant(line)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid version selected. Please enter 'standard' or 'misere'.")
		return game.Unknown, err
	}
	return variant, nil
}

func (c *Console) printState(state game.State) {
	fmt.Fprintf(c.out, "Current game state: Red marbles: %d, Blue marbles: %d\n", state.Red, state.Blue)
}

// Play runs an interactive game of the human against the alpha-beta agent.
func (c *Console) Play(variant game.Variant, depth int, initial game.State) engine.Result {
	ai := agent.NewSearchAgent(variant, searcher.NewAlphaBeta(searcher.WithDepth(depth)))
	return c.PlayAgainst(variant, initial, ai)
}

// PlayAgainst runs an interactive game of the human against ai, which takes
// the second seat.
func (c *Console) PlayAgainst(variant game.Variant, initial game.State, ai agent.Agent) engine.Result {
	name := variant.String()
	fmt.Fprintf(c.out, "Playing %s Version:\n", strings.ToUpper(name[:1])+name[1:])

	e := engine.NewLocalEngine(variant, initial,
		c.Human(variant),
		announcer{console: c, name: Names[1], agent: ai},
	)
	result := e.Run()
	c.Announce(result, Names)
	return result
}

// Announce prints the end of game summary.
func (c *Console) Announce(result engine.Result, names [2]string) {
	fmt.Fprintln(c.out, "Game Over!")
	switch {
	case result.Draw:
		fmt.Fprintln(c.out, "It's a draw!")
	case result.Winner != engine.NoWinner:
		fmt.Fprintf(c.out, "%s wins!\n", names[result.Winner])
	case result.Abandoned:
		// Player 0 moves first, so the turn count tells who was on move.
		fmt.Fprintf(c.out, "%s gave no move. Game abandoned.\n", names[len(result.Turns)%2])
	case result.Stalled:
		fmt.Fprintln(c.out, "No legal move available. Game ended.")
	default:
		fmt.Fprintln(c.out, "Unexpected end state.")
	}
	fmt.Fprintf(c.out, "Final Score: %s\n", strconv.FormatFloat(result.FinalScore(), 'f', -1, 64))
}

// Human returns an agent that reads its moves from the console.
func (c *Console) Human(variant game.Variant) agent.Agent {
	return human{console: c, variant: variant}
}

type human struct {
	console *Console
	variant game.Variant
}

// FindMove prompts until a listed, applicable move is typed. It reports no
// move once the input is exhausted.
func (h human) FindMove(state game.State) (game.Move, bool, metrics.SearchMetric) {
	c := h.console
	moves := h.variant.LegalMoves()
	for {
		c.printState(state)
		fmt.Fprintf(c.out, "Possible moves (red, blue): %v\n", moves)
		fmt.Fprint(c.out, "Enter your move (format: red blue): ")

		line, ok := c.readLine()
		if !ok {
			fmt.Fprintln(c.out)
			return game.Move{}, false, metrics.SearchMetric{}
		}
		move, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(c.out, inputMessages[err])
			continue
		}
		if !slices.Contains(moves, move) {
			fmt.Fprintln(c.out, "Invalid move. Try again.")
			continue
		}
		if _, ok := state.Apply(move); !ok {
			fmt.Fprintln(c.out, "Not enough marbles for that move. Try again.")
			continue
		}
		return move, true, metrics.SearchMetric{}
	}
}

func parseMove(line string) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Move{}, errMoveFormat
	}
	red, err1 := strconv.Atoi(fields[0])
	blue, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return game.Move{}, errMoveNumbers
	}
	return game.Move{Red: red, Blue: blue}, nil
}

// announcer prints the state and the move of an automated player.
type announcer struct {
	console *Console
	name    string
	agent   agent.Agent
}

func (a announcer) FindMove(state game.State) (game.Move, bool, metrics.SearchMetric) {
	a.console.printState(state)
	move, ok, metric := a.agent.FindMove(state)
	if ok {
		fmt.Fprintf(a.console.out, "%s plays: %v\n", a.name, move)
	}
	return move, ok, metric
}
