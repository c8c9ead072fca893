package screens

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/debugscreens"
)

// BreakpointPrefix is the theme variable namespace holding breakpoints
const BreakpointPrefix = "--breakpoint-"

// parserState maintains context while reading a theme stylesheet
type parserState struct {
	screens debugscreens.Screens
}

// ParseThemeCSS extracts breakpoints from the @theme blocks of a Tailwind v4
// stylesheet, in document order:
//
//	@theme {
//		--breakpoint-sm: 40rem;
//		--breakpoint-3xl: 120rem;
//		--breakpoint-xl: initial;   // removes xl
//		--breakpoint-*: initial;    // removes every earlier breakpoint
//	}
func ParseThemeCSS(content string) debugscreens.Screens {
	return parseThemeCSS(content, nil)
}

// parseThemeCSS continues from screens read out of earlier files
func parseThemeCSS(content string, screens debugscreens.Screens) debugscreens.Screens {
	state := &parserState{screens: screens}
	if state.screens == nil {
		state.screens = debugscreens.Screens{}
	}

	lexer := css.NewLexer(parse.NewInputString(content))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		if tt == css.AtKeywordToken && string(text) == "@theme" {
			state.handleThemeBlock(lexer)
		}
	}

	return state.screens
}

// parseFile reads and parses a single theme file
func parseFile(path string, screens debugscreens.Screens) (debugscreens.Screens, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return parseThemeCSS(string(content), screens), nil
}

// handleThemeBlock processes "@theme [inline|static] { ... }"
func (s *parserState) handleThemeBlock(lexer *css.Lexer) {
	// Skip theme modifiers up to the opening brace
	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken, css.SemicolonToken:
			return
		case css.LeftBraceToken:
			s.readDeclarations(lexer)
			return
		}
	}
}

// readDeclarations reads custom property declarations until the block closes
func (s *parserState) readDeclarations(lexer *css.Lexer) {
	depth := 1

	for depth > 0 {
		tt, text := lexer.Next()

		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		case css.CustomPropertyNameToken, css.IdentToken:
			name := string(text)
			if depth != 1 || !strings.HasPrefix(name, BreakpointPrefix) {
				continue
			}
			value, wildcard, closed := readValue(lexer)
			s.apply(strings.TrimPrefix(name, BreakpointPrefix), value, wildcard)
			if closed {
				depth--
			}
		}
	}
}

// readValue collects the declaration value after a property name.
// wildcard reports the "--breakpoint-*" form, which lexes as the prefix
// followed by a '*' delimiter. closed reports whether the value ended with
// the block's closing brace.
func readValue(lexer *css.Lexer) (value string, wildcard, closed bool) {
	var b strings.Builder
	seenColon := false
	nesting := 0

	for {
		tt, text := lexer.Next()

		switch {
		case tt == css.ErrorToken:
			return strings.TrimSpace(b.String()), wildcard, false
		case tt == css.SemicolonToken && nesting == 0:
			return strings.TrimSpace(b.String()), wildcard, false
		case tt == css.RightBraceToken && nesting == 0:
			return strings.TrimSpace(b.String()), wildcard, true
		case !seenColon:
			if tt == css.ColonToken {
				seenColon = true
			} else if tt == css.DelimToken && string(text) == "*" {
				wildcard = true
			}
		case tt == css.CommentToken:
			continue
		case tt == css.WhitespaceToken:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
		default:
			switch tt {
			case css.FunctionToken, css.LeftParenthesisToken:
				nesting++
			case css.RightParenthesisToken:
				nesting--
			}
			b.Write(text)
		}
	}
}

// apply records one declaration. "initial" removes the breakpoint, and the
// wildcard form resets the whole set.
func (s *parserState) apply(name, value string, wildcard bool) {
	if wildcard {
		if value == "initial" {
			s.screens = debugscreens.Screens{}
		}
		return
	}

	if name == "" {
		return
	}
	if value == "initial" {
		s.screens.Delete(name)
		return
	}
	s.screens.Set(name, value)
}
