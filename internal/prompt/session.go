package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

const (
	msgAskMines     = "How many mines do you want on the field?"
	msgAskMove      = "Set/unset mines marks or claim a cell as free:"
	msgNumberHere   = "There is a number here!"
	msgCellOpened   = "Cell already opened!"
	msgWin          = "Congratulations! You found all the mines!"
	msgLoss         = "You stepped on a mine and failed!"
	msgBadMineCount = "Mine count must be a number between 0 and %d"
)

var ErrInputClosed = errors.New("input closed before the game ended")

// Session drives one game over a line-based reader and writer. Input is
// consumed on a separate goroutine so that a canceled context always
// unblocks the session.
type Session struct {
	ID     uuid.UUID
	logger *slog.Logger
	in     io.Reader
	out    io.Writer

	once     sync.Once
	stopOnce sync.Once
	lines    chan string
	done     chan struct{}
	scanErr  error
}

func NewSession(logger *slog.Logger, in io.Reader, out io.Writer) *Session {
	id := uuid.New()
	return &Session{
		ID:     id,
		logger: logger.With(slog.String("game_id", id.String())),
		in:     in,
		out:    out,
		done:   make(chan struct{}),
	}
}

func (s *Session) startReader() {
	s.lines = make(chan string)
	go func() {
		defer close(s.lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case s.lines <- scanner.Text():
			case <-s.done:
				return
			}
		}
		s.scanErr = scanner.Err()
	}()
}

// Close stops the input goroutine once it holds a line nobody will read. A
// read blocked inside in only returns when in does.
func (s *Session) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *Session) readLine(ctx context.Context) (string, error) {
	s.once.Do(s.startReader)
	select {
	case <-ctx.Done():
		s.Close()
		return "", ctx.Err()
	case <-s.done:
		return "", ErrInputClosed
	case line, ok := <-s.lines:
		if !ok {
			if s.scanErr != nil {
				return "", fmt.Errorf("unable to read input: %w", s.scanErr)
			}
			return "", ErrInputClosed
		}
		return strings.TrimSpace(line), nil
	}
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// AskMineCount prompts until the player enters a mine count that fits a
// board of the given size.
func (s *Session) AskMineCount(ctx context.Context, size int) (int, error) {
	for {
		s.println(msgAskMines)
		line, err := s.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			err = mines.Params{Size: size, MineCount: n}.Validate()
		}
		if err != nil {
			s.logger.Debug("rejected mine count", slog.String("input", line), slog.Any("error", err))
			s.println(fmt.Sprintf(msgBadMineCount, size*size-1))
			continue
		}
		return n, nil
	}
}

// Play runs the turn loop until the board leaves the in-progress state,
// the input ends or ctx is canceled.
func (s *Session) Play(ctx context.Context, board *mines.Board) error {
	s.logger.Info("game started",
		slog.Int("size", board.Size()),
		slog.Int("mines", board.MineCount()),
	)

	for board.State() == mines.InProgress {
		if err := Render(s.out, board); err != nil {
			return err
		}
		s.println(msgAskMove)

		line, err := s.readLine(ctx)
		if err != nil {
			s.logger.Info("game abandoned", slog.Any("error", err))
			return err
		}
		if line == "" {
			continue
		}

		move, err := ParseMove(line, board.Size())
		if err != nil {
			s.println(err.Error())
			continue
		}
		s.apply(board, move)
	}

	if err := Render(s.out, board); err != nil {
		return err
	}
	switch board.State() {
	case mines.Win:
		s.println(msgWin)
	case mines.Loss:
		s.println(msgLoss)
	}

	s.logger.Info("game finished",
		slog.String("state", board.State().String()),
		slog.Int("opened", board.OpenedCount()),
		slog.Int("marked", board.MarkedCount()),
	)
	return nil
}

func (s *Session) apply(board *mines.Board, move Move) {
	log := s.logger.With(
		slog.String("action", move.Action.String()),
		slog.Int("row", move.Row),
		slog.Int("col", move.Col),
	)

	switch move.Action {
	case Reveal:
		outcome, err := board.Reveal(move.Row, move.Col)
		if err != nil {
			log.Debug("reveal rejected", slog.Any("error", err))
			s.println(err.Error())
			return
		}
		if outcome.Result == mines.AlreadyOpened {
			s.println(msgCellOpened)
		}
		log.Debug("reveal",
			slog.String("result", outcome.Result.String()),
			slog.Int("opened", len(outcome.Opened)),
			slog.String("state", outcome.State.String()),
		)

	case ToggleMark:
		outcome, err := board.ToggleMark(move.Row, move.Col)
		if err != nil {
			log.Debug("mark rejected", slog.Any("error", err))
			s.println(err.Error())
			return
		}
		if outcome.Result == mines.CellOpen {
			if outcome.HasNumber {
				s.println(msgNumberHere)
			} else {
				s.println(msgCellOpened)
			}
		}
		log.Debug("toggle mark",
			slog.String("result", outcome.Result.String()),
			slog.String("state", outcome.State.String()),
		)
	}
}
