package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcanaland/mysticguide/internal/card"
	"github.com/arcanaland/mysticguide/internal/config"
	"github.com/arcanaland/mysticguide/internal/interpret"
	"github.com/arcanaland/mysticguide/internal/locale"
	"github.com/arcanaland/mysticguide/internal/logging"
	"github.com/arcanaland/mysticguide/internal/render"
	"github.com/arcanaland/mysticguide/internal/session"
	"github.com/arcanaland/mysticguide/internal/store"
)

// newReadCmd represents the read command
func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Draw a spread and get an interpretation",
		Long: `Choose a spread, draw its cards one at a time and ask the language model
for an interpretation. The reading can be saved afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			spreadID, _ := cmd.Flags().GetString("spread")
			offline, _ := cmd.Flags().GetBool("offline")
			yes, _ := cmd.Flags().GetBool("yes")
			save, _ := cmd.Flags().GetBool("save")

			var interp interpret.Interpreter = interpret.Offline{}
			if !offline {
				g, err := interpret.NewGenAI(cmd.Context(), config.APIKey(), a.cfg.Model)
				if err != nil {
					return fmt.Errorf("%w (set GEMINI_API_KEY or use --offline)", err)
				}
				interp = g
			}

			r := &reader{
				in:     bufio.NewReader(cmd.InOrStdin()),
				out:    cmd.OutOrStdout(),
				bundle: a.bundle,
				yes:    yes,
				width:  render.TerminalWidth(),
			}

			spread, err := r.chooseSpread(spreadID, a.cfg.DefaultSpread)
			if err != nil {
				return err
			}

			s := session.New(interp, a.store, session.WithLogger(logging.Component(a.logger, "session")))
			return r.run(cmd.Context(), s, spread, a.store, save)
		},
	}

	cmd.Flags().StringP("spread", "s", "", "Spread to use (single, three-card, celtic-cross)")
	cmd.Flags().Bool("offline", false, "Compose the reading from card meanings without calling the model")
	cmd.Flags().BoolP("yes", "y", false, "Do not prompt; draw all cards and accept defaults")
	cmd.Flags().Bool("save", false, "Save the reading without asking")

	return cmd
}

// reader runs one interactive reading on a line-based terminal
type reader struct {
	in     *bufio.Reader
	out    io.Writer
	bundle *locale.Bundle
	yes    bool
	width  int
}

func (r *reader) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return strings.TrimSpace(line), err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; an empty answer or end of input picks def
func (r *reader) confirm(prompt string, def bool) bool {
	fmt.Fprint(r.out, prompt+" ")
	answer, err := r.readLine()
	if err != nil || answer == "" {
		fmt.Fprintln(r.out)
		return def
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "si", "sí", "o", "oui":
		return true
	default:
		return false
	}
}

func (r *reader) chooseSpread(id, defaultID string) (card.Spread, error) {
	if id == "" && r.yes {
		id = defaultID
	}
	if id != "" {
		spread, ok := card.SpreadByID(id)
		if !ok {
			return card.Spread{}, fmt.Errorf("unknown spread %q", id)
		}
		return spread, nil
	}

	spreads := card.Spreads()
	render.Spreads(r.out, spreads, r.bundle, r.width)
	fmt.Fprintf(r.out, "%s [%s]: ", r.bundle.T("spreads.choose"), defaultID)

	answer, err := r.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return card.Spread{}, err
	}
	if answer == "" {
		answer = defaultID
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(spreads) {
			return card.Spread{}, fmt.Errorf("no spread numbered %d", n)
		}
		return spreads[n-1], nil
	}
	spread, ok := card.SpreadByID(answer)
	if !ok {
		return card.Spread{}, fmt.Errorf("unknown spread %q", answer)
	}
	return spread, nil
}

func (r *reader) run(ctx context.Context, s *session.Session, spread card.Spread, st *store.Store, save bool) error {
	if err := s.SelectSpread(spread); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "\n%s\n", r.bundle.T("draw.title", "spread", spread.Name))
	for {
		pos, ok := s.NextPosition()
		if !ok {
			break
		}
		fmt.Fprintf(r.out, "%s  (%s)\n", r.bundle.T("draw.next", "position", pos.Name),
			r.bundle.T("actions.drawCard", "left", strconv.Itoa(spread.CardCount-s.Cursor())))
		if !r.yes {
			fmt.Fprint(r.out, r.bundle.T("actions.pressEnter")+" ")
			if _, err := r.readLine(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
		}
		if !s.DrawCard() {
			return errors.New(r.bundle.T(session.MsgDrawAllCards))
		}
		slots := s.Slots()
		if p, ok := slots[s.Cursor()-1].Placed(); ok {
			fmt.Fprintln(r.out, r.bundle.T("draw.drawn", "position", p.PositionName, "card", p.Card.Name))
		}
	}

	for {
		err := r.request(ctx, s)
		if err == nil {
			break
		}
		var ierr *session.InterpretationError
		if !errors.As(err, &ierr) || ctx.Err() != nil {
			return err
		}
		fmt.Fprintln(r.out, r.bundle.T(ierr.MessageID()))
		if r.yes || !ierr.Retryable() || !r.confirm(r.bundle.T("reading.retryPrompt"), true) {
			return err
		}
	}

	fmt.Fprintln(r.out)
	render.Reading(r.out, preview(s), r.bundle, r.width)

	if !save && (r.yes || !r.confirm(r.bundle.T("reading.savePrompt"), false)) {
		return nil
	}

	saved, err := s.SaveReading()
	if err != nil {
		return err
	}
	if _, ok := st.GetByID(saved.ID); !ok {
		fmt.Fprintln(r.out, r.bundle.T("errors.saveFailed"))
		return nil
	}
	fmt.Fprintln(r.out, r.bundle.T("reading.saved"))
	fmt.Fprintln(r.out, saved.ID)
	return nil
}

// request runs the interpretation call, showing a spinner on a terminal
func (r *reader) request(ctx context.Context, s *session.Session) error {
	if !render.IsTerminal(os.Stderr.Fd()) {
		return s.RequestReading(ctx)
	}

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			fmt.Fprintf(os.Stderr, "\r%s %s", frames[i%len(frames)], r.bundle.T("reading.loading"))
			select {
			case <-done:
				fmt.Fprint(os.Stderr, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()

	err := s.RequestReading(ctx)
	close(done)
	<-stopped
	return err
}

// preview assembles the reading shown before it is saved
func preview(s *session.Session) store.Reading {
	spread, _ := s.Spread()
	r := store.Reading{
		SpreadName:        spread.Name,
		SpreadDescription: spread.Description,
		Interpretation:    s.Interpretation(),
	}
	for _, slot := range s.Slots() {
		if p, ok := slot.Placed(); ok {
			r.CardsInReading = append(r.CardsInReading, p)
		}
	}
	return r
}
