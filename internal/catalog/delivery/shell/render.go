package shell

import (
	"context"
	"fmt"

	"catalog-manager/internal/catalog"
)

// Messages for the two distinct empty states.
const (
	msgCatalogEmpty = "No items have been added yet."
	msgNoMatch      = "No items match the current filters."
)

func (s *Shell) render(ctx context.Context) error {
	out, err := s.uc.Project(ctx, s.view)
	if err != nil {
		return err
	}

	s.listed = s.listed[:0]
	if out.Empty {
		fmt.Fprintln(s.out, msgCatalogEmpty)
		return nil
	}

	fmt.Fprintf(s.out, "Showing %d / %d items\n", out.Shown, out.Total)
	if out.Shown == 0 {
		fmt.Fprintln(s.out, msgNoMatch)
		return nil
	}

	for i, item := range out.Items {
		s.listed = append(s.listed, item.ID)
		fmt.Fprintf(s.out, "%3d. %-28s x%-4d %s\n", i+1, item.Name, item.OrderCount, s.badges(item))
		fmt.Fprintf(s.out, "     %s\n", item.Description)
	}
	return nil
}

func (s *Shell) badges(item catalog.Item) string {
	quality := "unverified"
	if item.QualityVerified {
		quality = "verified"
	}
	integrity := "standard"
	if item.IntegrityCompromised {
		integrity = "compromised"
	}
	if !s.view.ColorCoding {
		return fmt.Sprintf("[%s] [%s]", quality, integrity)
	}
	return colorize(qualityColor(item), quality) + " " + colorize(integrityColor(item), integrity)
}

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func qualityColor(item catalog.Item) string {
	if item.QualityVerified {
		return ansiGreen
	}
	return ansiYellow
}

func integrityColor(item catalog.Item) string {
	if item.IntegrityCompromised {
		return ansiRed
	}
	return ansiGreen
}

func colorize(color, text string) string {
	return color + "[" + text + "]" + ansiReset
}

func (s *Shell) printView() {
	search := s.view.SearchText
	if search == "" {
		search = "(none)"
	}
	color := "off"
	if s.view.ColorCoding {
		color = "on"
	}
	fmt.Fprintf(s.out, "search=%s quality=%s integrity=%s sort=%s color=%s\n",
		search, s.view.Quality, s.view.Integrity, s.view.Sort, color)
}
