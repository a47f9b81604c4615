package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/fadedpez/drawpoker/internal/logging"
	"github.com/fadedpez/drawpoker/internal/types"
	"github.com/fadedpez/drawpoker/pkg/cards"
	"github.com/fadedpez/drawpoker/pkg/entities"
	"github.com/fadedpez/drawpoker/pkg/games/draw"
	"github.com/fadedpez/drawpoker/pkg/services/statistics"
)

// Controller runs the game at a terminal. Input is read on its own goroutine and
// handed over a channel, so only the Run loop ever touches the session.
type Controller struct {
	manager      *draw.Manager
	stats        *statistics.Service
	logger       *logging.Logger
	in           io.Reader
	out          io.Writer
	historyLimit int
}

// New creates a controller reading commands from in and drawing to out
func New(manager *draw.Manager, stats *statistics.Service, logger *logging.Logger, in io.Reader, out io.Writer, historyLimit int) *Controller {
	if logger == nil {
		logger = logging.Default
	}
	return &Controller{
		manager:      manager,
		stats:        stats,
		logger:       logger,
		in:           in,
		out:          out,
		historyLimit: historyLimit,
	}
}

// Run plays until the player quits, the input ends or ctx is cancelled.
// It returns nil on quit or end of input.
func (c *Controller) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go c.readLines(ctx, lines, readErr)

	c.print(renderWelcome())
	c.print(renderHelp())
	c.print(renderScoreTable())
	c.prompt()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("error reading input: %w", err)
				}
				c.logger.Info("Input closed after %d rounds", c.manager.Session().Rounds())
				return nil
			}

			if quit := c.handle(ctx, line); quit {
				return nil
			}
			c.prompt()
		}
	}
}

func (c *Controller) readLines(ctx context.Context, lines chan<- string, errs chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			errs <- ctx.Err()
			return
		}
	}
	errs <- scanner.Err()
}

func (c *Controller) handle(ctx context.Context, line string) bool {
	cmd, err := ParseCommand(line)
	if err != nil {
		c.print(renderError(err))
		return false
	}

	switch cmd.Action {
	case ActionQuit:
		session := c.manager.Session()
		c.print(renderGoodbye(session.Score(), session.Rounds()))
		return true
	case ActionHelp:
		c.print(renderHelp())
		c.print(renderScoreTable())
	case ActionDeal:
		c.deal()
	case ActionToggle:
		c.toggle(cmd.Indices)
	case ActionCommit:
		c.commit(ctx)
	case ActionNext:
		if c.manager.Session().State() == entities.StateIdle {
			c.deal()
		} else {
			c.commit(ctx)
		}
	case ActionStats:
		c.scoreboard(ctx)
	}

	return false
}

func (c *Controller) deal() {
	if _, err := c.manager.Deal(); err != nil {
		c.print(renderError(err))
		return
	}
	c.print(renderTable(c.manager.Session()))
}

func (c *Controller) toggle(indices []int) {
	for _, index := range indices {
		if _, err := c.manager.Toggle(index); err != nil {
			if types.IsGameError(err, types.ErrIndexOutOfRange) {
				err = types.Errorf(types.ErrIndexOutOfRange, "there is no card %d, pick 1 to %d", index+1, cards.HandSize)
			}
			c.print(renderError(err))
			break
		}
	}
	if c.manager.Session().State() == entities.StateDealt {
		c.print(renderTable(c.manager.Session()))
	}
}

func (c *Controller) commit(ctx context.Context) {
	round, err := c.manager.Commit(ctx)
	if round == nil {
		c.print(renderError(err))
		return
	}

	c.print(renderRound(round))
	if types.IsGameError(err, types.ErrDatabaseError) {
		c.print(renderWarning("The round counts, but it could not be added to the history."))
	}
}

func (c *Controller) scoreboard(ctx context.Context) {
	board, err := c.stats.GetScoreboard(ctx, c.manager.Session().ID, c.historyLimit)
	if err != nil {
		c.logger.LogError(err)
		c.print(renderError(err))
		return
	}
	c.print(renderScoreboard(board))
}

func (c *Controller) prompt() {
	prompt := "deal> "
	if c.manager.Session().State() == entities.StateDealt {
		prompt = "draw> "
	}
	c.print(prompt)
}

func (c *Controller) print(s string) {
	fmt.Fprint(c.out, s)
}
