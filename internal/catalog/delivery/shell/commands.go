package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"catalog-manager/internal/catalog"
)

// newRootCmd builds a fresh command tree for one line, so no flag state
// leaks between lines.
func (s *Shell) newRootCmd(ctx context.Context) *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   `add NAME DESCRIPTION IMAGE [verified|unverified] [compromised|standard]`,
			Short: "Add an item (quote values containing spaces)",
			Args:  cobra.RangeArgs(3, 5),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.add(ctx, args)
			},
		},
		&cobra.Command{
			Use:     "rm ITEM",
			Aliases: []string{"remove", "delete"},
			Short:   "Remove an item by list number or id",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.remove(ctx, args[0])
			},
		},
		&cobra.Command{
			Use:   "inc ITEM [N]",
			Short: "Increase an item's order count",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.adjust(ctx, args, 1)
			},
		},
		&cobra.Command{
			Use:   "dec ITEM [N]",
			Short: "Decrease an item's order count (never below zero)",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.adjust(ctx, args, -1)
			},
		},
		&cobra.Command{
			Use:   "order ITEM DELTA",
			Short: "Apply a signed delta to an item's order count",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				delta, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("DELTA must be an integer, got %q", args[1])
				}
				return s.applyDelta(ctx, args[0], delta)
			},
		},
		&cobra.Command{
			Use:   "filter quality|integrity TOKEN",
			Short: "Set the quality or integrity filter",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.setFilter(ctx, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "Show the catalog with the current view",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.render(ctx)
			},
		},
		&cobra.Command{
			Use:   "search [TEXT...]",
			Short: "Filter by name or description; no text clears the search",
			RunE: func(cmd *cobra.Command, args []string) error {
				s.view.SearchText = strings.Join(args, " ")
				return s.render(ctx)
			},
		},
		&cobra.Command{
			Use:   "quality all|verified|unverified",
			Short: "Filter by quality verification",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.setFilter(ctx, "quality", args[0])
			},
		},
		&cobra.Command{
			Use:   "integrity all|compromised|standard",
			Short: "Filter by integrity",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return s.setFilter(ctx, "integrity", args[0])
			},
		},
		&cobra.Command{
			Use:   "sort name|orders",
			Short: "Sort by name or by order count (descending)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				k, err := catalog.ParseSortKey(args[0])
				if err != nil {
					return err
				}
				s.view.Sort = k
				return s.render(ctx)
			},
		},
		&cobra.Command{
			Use:   "color on|off",
			Short: "Toggle quality colour tags",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				switch args[0] {
				case "on":
					s.view.ColorCoding = true
				case "off":
					s.view.ColorCoding = false
				default:
					return fmt.Errorf("expected on or off, got %q", args[0])
				}
				return s.render(ctx)
			},
		},
		&cobra.Command{
			Use:   "view",
			Short: "Print the current view parameters",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				s.printView()
			},
		},
		&cobra.Command{
			Use:   "images",
			Short: "List preset image references",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				for _, img := range s.uc.PresetImages(ctx) {
					fmt.Fprintf(s.out, "  %-24s %s\n", img.Name, img.Path)
				}
			},
		},
		&cobra.Command{
			Use:     "quit",
			Aliases: []string{"exit"},
			Short:   "Leave the shell",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return errQuit
			},
		},
	)

	// Commands take positional arguments only; "-3" is a delta and "-fat"
	// a search term, not flags.
	for _, c := range root.Commands() {
		c.DisableFlagParsing = true
	}

	return root
}

func (s *Shell) add(ctx context.Context, args []string) error {
	input := catalog.CreateItemInput{
		Name:            args[0],
		Description:     args[1],
		ImageRef:        args[2],
		QualityVerified: true,
	}
	for _, flag := range args[3:] {
		switch flag {
		case "verified":
			input.QualityVerified = true
		case "unverified":
			input.QualityVerified = false
		case "compromised":
			input.IntegrityCompromised = true
		case "standard":
			input.IntegrityCompromised = false
		default:
			return fmt.Errorf("unknown flag %q", flag)
		}
	}

	out, err := s.uc.Create(ctx, input)
	if err != nil {
		var vErr *catalog.ValidationError
		if errors.As(err, &vErr) {
			return fmt.Errorf("please fill in all fields: %s is empty", vErr.Field)
		}
		return err
	}
	fmt.Fprintf(s.out, "added %s (%s)\n", out.Item.Name, out.Item.ID)
	return s.render(ctx)
}

func (s *Shell) remove(ctx context.Context, ref string) error {
	if err := s.uc.Remove(ctx, s.resolve(ref)); err != nil {
		return err
	}
	return s.render(ctx)
}

func (s *Shell) adjust(ctx context.Context, args []string, sign int) error {
	n := 1
	if len(args) == 2 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 0 {
			return fmt.Errorf("N must be a non-negative integer, got %q", args[1])
		}
		n = v
	}

	return s.applyDelta(ctx, args[0], sign*n)
}

func (s *Shell) applyDelta(ctx context.Context, ref string, delta int) error {
	out, err := s.uc.AdjustOrderCount(ctx, catalog.AdjustOrderCountInput{ID: s.resolve(ref), Delta: delta})
	if err != nil {
		return err
	}
	if !out.Found {
		fmt.Fprintf(s.out, "no item %q\n", ref)
	}
	return s.render(ctx)
}

func (s *Shell) setFilter(ctx context.Context, kind, token string) error {
	switch kind {
	case "quality":
		f, err := catalog.ParseQualityFilter(token)
		if err != nil {
			return err
		}
		s.view.Quality = f
	case "integrity":
		f, err := catalog.ParseIntegrityFilter(token)
		if err != nil {
			return err
		}
		s.view.Integrity = f
	default:
		return fmt.Errorf("unknown filter %q, expected quality or integrity", kind)
	}
	return s.render(ctx)
}

// resolve maps a 1-based list position to an item id; anything else is
// taken to be an id.
func (s *Shell) resolve(ref string) string {
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(s.listed) {
		return s.listed[n-1]
	}
	return ref
}
