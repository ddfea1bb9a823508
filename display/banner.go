package display

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/teranos/jobs/errors"
)

// Renderer holds layout options shared by the banner and the table
type Renderer struct {
	// Center pads every block to the middle of the terminal
	Center bool
}

// DefaultRenderer centers output like the CLI does
var DefaultRenderer = Renderer{Center: true}

var (
	bannerTextStyle   = pterm.NewStyle(pterm.FgLightBlue)
	bannerBorderStyle = pterm.NewStyle(pterm.FgLightMagenta)
)

// RenderBanner draws text in block letters inside a rounded, colored frame.
// Text the font has no glyph for is rejected with errors.ErrRender rather
// than silently dropped.
func (r Renderer) RenderBanner(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.NewRenderError("banner text is empty")
	}
	if missing := missingGlyphs(text); len(missing) > 0 {
		return "", errors.WithHint(
			errors.NewRenderError("banner font has no glyph for %q", string(missing)),
			"use letters, digits and basic punctuation in display.banner_text")
	}

	letters, err := pterm.DefaultBigText.
		WithLetters(putils.LettersFromStringWithStyle(text, bannerTextStyle)).
		Srender()
	if err != nil {
		return "", errors.WrapRender(err, "failed to render banner text")
	}

	framed := pterm.DefaultBox.
		WithBoxStyle(bannerBorderStyle).
		WithTopPadding(0).
		WithBottomPadding(0).
		WithLeftPadding(1).
		WithRightPadding(1).
		WithTopLeftCornerString("╭").
		WithTopRightCornerString("╮").
		WithBottomLeftCornerString("╰").
		WithBottomRightCornerString("╯").
		Sprint(strings.TrimRight(letters, "\n"))
	if r.Center {
		framed = pterm.DefaultCenter.Sprint(framed)
	}
	return framed, nil
}

// RenderBanner draws a banner with the default renderer
func RenderBanner(text string) (string, error) {
	return DefaultRenderer.RenderBanner(text)
}

// missingGlyphs returns the distinct runes of text the big-text font lacks.
// Only the plain space is allowed through; tabs and newlines have no glyph.
func missingGlyphs(text string) []rune {
	var missing []rune
	seen := make(map[rune]bool)
	for _, r := range text {
		if r == ' ' || seen[r] {
			continue
		}
		seen[r] = true
		if _, ok := pterm.DefaultBigText.BigCharacters[string(r)]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}
