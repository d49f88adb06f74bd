package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Lixing-Zhang/table-orders/internal/config"
	"github.com/Lixing-Zhang/table-orders/internal/handlers"
)

const banner = "\nWelcome! Add products to the menu, then place orders. Type 'help' for commands.\n"

// maxLineLength bounds a single input line in bytes
const maxLineLength = 64 * 1024

// ErrLineTooLong is reported for an input line over maxLineLength bytes
var ErrLineTooLong = errors.New("input line too long")

// Session feeds input lines to a command handler one at a time and
// renders each result before reading the next line
type Session struct {
	handle   handlers.HandlerFunc
	in       io.Reader
	out      io.Writer
	renderer *Renderer
	cfg      config.ConsoleConfig
	log      *slog.Logger
}

// NewSession creates a new console session
func NewSession(handle handlers.HandlerFunc, in io.Reader, out io.Writer, cfg config.ConsoleConfig, log *slog.Logger) *Session {
	return &Session{
		handle:   handle,
		in:       in,
		out:      out,
		renderer: NewRenderer(out),
		cfg:      cfg,
		log:      log,
	}
}

// Run reads until a command halts the session, input ends or ctx is done
func (s *Session) Run(ctx context.Context) error {
	if s.cfg.ShowBanner {
		fmt.Fprint(s.out, banner)
	}

	reader := bufio.NewReader(s.in)
	lines := 0

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, s.cfg.Prompt)
		line, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			s.log.Info("input closed", "lines", lines)
			return nil
		}
		lines++
		if errors.Is(err, ErrLineTooLong) {
			s.log.Info("input line discarded", "line_number", lines)
			s.renderer.Error(err)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		result, err := s.handle(ctx, line)
		if err != nil {
			s.renderer.Error(err)
		} else {
			s.renderer.Result(result)
		}

		if result.Halt {
			s.log.Info("session halted", "lines", lines)
			return nil
		}
	}
}

// readLine returns the next line without its terminator.
// A line longer than maxLineLength is consumed whole and reported as ErrLineTooLong.
func readLine(r *bufio.Reader) (string, error) {
	var (
		buf     []byte
		tooLong bool
	)

	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
				break
			}
			return "", err
		}

		if !tooLong {
			if len(buf)+len(chunk) > maxLineLength {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", ErrLineTooLong
	}
	return string(buf), nil
}
