// Package shell interprets the line commands of the terminal client.
package shell

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/mitchelldurbincs/minesweeper/internal/game"
)

// ErrQuit is returned by Execute when the user asks to leave.
var ErrQuit = errors.New("quit")

// ErrUsage marks a malformed command line
var ErrUsage = errors.New("usage")

type handler func(sh *Shell, args []string) (string, error)

type command struct {
	name    string
	aliases []string
	usage   string
	run     handler
}

var commands []command

func init() {
	commands = []command{
		{"open", []string{"o"}, "open X Y", (*Shell).open},
		{"flag", []string{"f"}, "flag X Y", (*Shell).flag},
		{"reset", []string{"r"}, "reset", (*Shell).reset},
		{"new", []string{"n"}, "new beginner|intermediate|expert | new W H MINES", (*Shell).newGame},
		{"show", []string{"s"}, "show", (*Shell).show},
		{"dump", nil, "dump", (*Shell).dump},
		{"stats", nil, "stats", (*Shell).statsCmd},
		{"help", []string{"?"}, "help", (*Shell).help},
		{"quit", []string{"exit", "q"}, "quit", (*Shell).quit},
	}
}

// Shell runs commands against one session
type Shell struct {
	session *game.Session
	stats   *game.Stats
	color   bool
	logger  zerolog.Logger
}

func New(session *game.Session, stats *game.Stats, color bool, logger zerolog.Logger) *Shell {
	return &Shell{
		session: session,
		stats:   stats,
		color:   color,
		logger:  logger.With().Str("component", "shell").Logger(),
	}
}

// Execute runs one input line and returns the text to print.
func (sh *Shell) Execute(line string) (string, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", line, err)
	}
	if len(words) == 0 {
		return "", nil
	}

	name := strings.ToLower(words[0])
	for _, c := range commands {
		if c.name == name || lo.Contains(c.aliases, name) {
			sh.logger.Debug().Str("command", c.name).Strs("args", words[1:]).Msg("Executing")
			out, err := c.run(sh, words[1:])
			if errors.Is(err, ErrUsage) {
				return "", fmt.Errorf("%w: %s", ErrUsage, c.usage)
			}
			return out, err
		}
	}
	return "", fmt.Errorf("%q: %w", name, game.ErrUnknownAction)
}

func ints(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, ErrUsage
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, ErrUsage
		}
		out[i] = v
	}
	return out, nil
}

func (sh *Shell) board() string {
	return sh.session.Render(sh.color)
}

func (sh *Shell) open(args []string) (string, error) {
	xy, err := ints(args, 2)
	if err != nil {
		return "", err
	}
	outcome, err := sh.session.Reveal(xy[0], xy[1])
	if err != nil {
		return "", err
	}
	var b strings.Builder
	switch {
	case sh.session.Status() == game.StatusWon:
		b.WriteString("You win!\n")
	case sh.session.Status() == game.StatusLost:
		b.WriteString("Boom.\n")
	case outcome.Opened > 1:
		fmt.Fprintf(&b, "opened %d cells\n", outcome.Opened)
	}
	b.WriteString(sh.board())
	return b.String(), nil
}

func (sh *Shell) flag(args []string) (string, error) {
	xy, err := ints(args, 2)
	if err != nil {
		return "", err
	}
	res, err := sh.session.ToggleFlag(xy[0], xy[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("flag %s\n%s", res, sh.board()), nil
}

func (sh *Shell) reset(args []string) (string, error) {
	if len(args) != 0 {
		return "", ErrUsage
	}
	sh.session.Reset()
	return sh.board(), nil
}

func (sh *Shell) newGame(args []string) (string, error) {
	var p game.Preset
	switch len(args) {
	case 1:
		var err error
		if p, err = game.PresetByName(args[0]); err != nil {
			return "", err
		}
	case 3, 4:
		if len(args) == 4 {
			if !strings.EqualFold(args[0], "custom") {
				return "", ErrUsage
			}
			args = args[1:]
		}
		whm, err := ints(args, 3)
		if err != nil {
			return "", err
		}
		if p, err = game.Custom(whm[0], whm[1], whm[2]); err != nil {
			return "", err
		}
	default:
		return "", ErrUsage
	}
	if err := sh.session.Resize(p.Width, p.Height, p.Mines); err != nil {
		return "", err
	}
	return sh.board(), nil
}

func (sh *Shell) show(args []string) (string, error) {
	return sh.board(), nil
}

// dump prints the packed one-byte-per-cell snapshot, base64 encoded.
func (sh *Shell) dump(args []string) (string, error) {
	snap := sh.session.Board().Snapshot()
	return fmt.Sprintf("%dx%d %s\n", sh.session.Width(), sh.session.Height(),
		base64.StdEncoding.EncodeToString(snap)), nil
}

func (sh *Shell) statsCmd(args []string) (string, error) {
	if sh.stats == nil {
		return "no statistics\n", nil
	}
	var b strings.Builder
	for _, s := range sh.stats.All() {
		fmt.Fprintf(&b, "%dx%d/%d  played %d  won %d  lost %d  rate %.0f%%",
			s.Width, s.Height, s.Mines, s.Played, s.Won, s.Lost, s.WinRate()*100)
		if s.Won > 0 {
			fmt.Fprintf(&b, "  best %ds", int(s.BestWin.Seconds()))
		}
		b.WriteByte('\n')
	}
	t := sh.stats.Totals()
	fmt.Fprintf(&b, "total  played %d  won %d  lost %d\n", t.Played, t.Won, t.Lost)
	return b.String(), nil
}

func (sh *Shell) help(args []string) (string, error) {
	var b strings.Builder
	for _, c := range commands {
		fmt.Fprintf(&b, "  %s\n", c.usage)
	}
	return b.String(), nil
}

func (sh *Shell) quit(args []string) (string, error) {
	return "", ErrQuit
}
