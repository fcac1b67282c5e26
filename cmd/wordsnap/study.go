package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
	"github.com/heartmarshall/wordsnap-backend/internal/service/library"
	"github.com/heartmarshall/wordsnap-backend/internal/study"
)

const studyHelp = "enter/n next, p prev, f flip, k toggle known, g N go to card N, s shuffle, o original order, q quit"

func studyCmd() *cobra.Command {
	var (
		device  string
		unknown bool
		shuffle bool
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "study <set-id>",
		Short: "Review a saved set card by card in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("set id: %w", err)
			}

			svc, pool, ctx, err := openLibrary(cmd.Context(), device)
			if err != nil {
				return err
			}
			defer pool.Close()

			set, err := svc.GetSet(ctx, setID)
			if err != nil {
				return err
			}

			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			s := &session{
				set:   set,
				state: startSession(set, unknown, shuffle, seed),
				seed:  seed,
				toggle: func(position int) (*domain.SavedWord, error) {
					return svc.ToggleKnown(ctx, library.ToggleKnownInput{SetID: setID, Position: position})
				},
			}
			return s.run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&device, "device", "", "device ID that owns the library")
	cmd.Flags().BoolVar(&unknown, "unknown", false, "only words not yet marked known")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "start in shuffled order")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed (random when 0)")
	_ = cmd.MarkFlagRequired("device")
	return cmd
}

func startSession(set *domain.SavedSet, unknown, shuffle bool, seed uint64) study.State {
	s := study.Reduce(study.State{}, study.Start{N: len(set.Words)})
	if unknown {
		s = study.Reduce(s, study.Filter{Keep: study.Unknown(set.Words)})
	}
	if shuffle {
		s = study.Reduce(s, study.Shuffle{Seed: seed})
	}
	return s
}

type session struct {
	set    *domain.SavedSet
	state  study.State
	seed   uint64
	toggle func(position int) (*domain.SavedWord, error)
}

func (s *session) run(ctx context.Context, in io.Reader, out io.Writer) error {
	if s.state.Len() == 0 {
		fmt.Fprintln(out, "nothing to study")
		return nil
	}

	fmt.Fprintf(out, "%s (%d cards)\n%s\n", s.set.Name, s.state.Len(), studyHelp)
	s.show(out)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		switch strings.ToLower(cmd) {
		case "", "n":
			if s.state.AtEnd() {
				fmt.Fprintln(out, "end of set")
				continue
			}
			s.state = study.Reduce(s.state, study.Next{})
		case "p":
			s.state = study.Reduce(s.state, study.Prev{})
		case "f":
			s.state = study.Reduce(s.state, study.Flip{})
		case "g":
			n, err := strconv.Atoi(strings.TrimSpace(arg))
			if err != nil {
				fmt.Fprintln(out, "usage: g N")
				continue
			}
			s.state = study.Reduce(s.state, study.Jump{Index: n - 1})
		case "s":
			s.seed++
			s.state = study.Reduce(s.state, study.Shuffle{Seed: s.seed})
		case "o":
			s.state = study.Reduce(s.state, study.Unshuffle{})
		case "k":
			if err := s.toggleCurrent(out); err != nil {
				return err
			}
			continue
		case "q":
			return nil
		default:
			fmt.Fprintln(out, studyHelp)
			continue
		}
		s.show(out)
	}
	return sc.Err()
}

func (s *session) toggleCurrent(out io.Writer) error {
	pos := s.state.Current()
	w, err := s.toggle(pos)
	if err != nil {
		return err
	}
	if pos >= 0 && pos < len(s.set.Words) {
		s.set.Words[pos].Known = w.Known
	}
	if w.Known {
		fmt.Fprintln(out, "marked known")
	} else {
		fmt.Fprintln(out, "marked unknown")
	}
	return nil
}

func (s *session) show(out io.Writer) {
	pos := s.state.Current()
	if pos < 0 || pos >= len(s.set.Words) {
		return
	}
	w := s.set.Words[pos]

	mark := " "
	if w.Known {
		mark = "✓"
	}
	fmt.Fprintf(out, "[%d/%d]%s %s\n", s.state.Index+1, s.state.Len(), mark, w.Word)
	if s.state.Flipped {
		for _, line := range strings.Split(w.Meaning, "\n") {
			fmt.Fprintf(out, "    %s\n", line)
		}
	}
}
