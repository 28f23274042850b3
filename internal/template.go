package internal

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// ErrNoMatch reports that an input text does not conform to a compiled
// template. Callers detect it with errors.Is.
var ErrNoMatch = errors.New("no match")

// LocatedToken records one occurrence of a catalog token inside a template.
// Position is measured against the original template text.
type LocatedToken struct {
	Position int
	Token    *TokenDef
}

// CompiledTemplate is the ready-to-use matcher for one (template, locale)
// pair: a single anchored, case-insensitive pattern carrying one capture
// group per located token, in template order.
type CompiledTemplate struct {
	Template string
	Locale   *Locale
	matcher  *regexp.Regexp
	located  []*LocatedToken
}

type templateCacheKey struct {
	locale   string
	template string
}

// templateCache maps (canonical locale tag, template) to its compiled
// matcher. A hit counts only when the caller holds the Locale instance the
// matcher was built from, so an entry stranded by a locale replacement is
// recompiled instead of served. Races between compiles of one key store
// interchangeable values.
var templateCache sync.Map

// CompileTemplate returns the compiled matcher for template under loc,
// compiling and caching it on first use.
func CompileTemplate(template string, loc *Locale) (*CompiledTemplate, error) {
	key := templateCacheKey{locale: loc.Tag(), template: template}
	if cached, ok := templateCache.Load(key); ok {
		if compiled := cached.(*CompiledTemplate); compiled.Locale == loc {
			return compiled, nil
		}
	}
	compiled, err := compileTemplate(template, loc)
	if err != nil {
		return nil, err
	}
	templateCache.Store(key, compiled)
	return compiled, nil
}

// purgeCompiledTemplates drops the cached matchers of one locale tag. Called
// when a locale's name data is replaced.
func purgeCompiledTemplates(tag string) {
	templateCache.Range(func(key, _ interface{}) bool {
		if key.(templateCacheKey).locale == tag {
			templateCache.Delete(key)
		}
		return true
	})
}

func compileTemplate(template string, loc *Locale) (*CompiledTemplate, error) {
	located := locateTokens(template)
	matcher, err := buildMatcher(template, located, loc)
	if err != nil {
		return nil, err
	}
	return &CompiledTemplate{
		Template: template,
		Locale:   loc,
		matcher:  matcher,
		located:  located,
	}, nil
}

// locateTokens finds every token occurrence in template. The catalog is
// scanned in length-descending order against a scratch copy and every
// claimed span is blanked out, so a shorter token can never match inside a
// longer one's span and repeated occurrences are each found once. The
// result is sorted by position, restoring template order.
func locateTokens(template string) []*LocatedToken {
	scratch := []byte(template)
	var located []*LocatedToken
	for _, def := range tokenCatalog {
		text := []byte(def.Text)
		from := 0
		for {
			idx := bytes.Index(scratch[from:], text)
			if idx < 0 {
				break
			}
			pos := from + idx
			located = append(located, &LocatedToken{Position: pos, Token: def})
			for i := pos; i < pos+len(text); i++ {
				scratch[i] = 0
			}
			from = pos + len(text)
		}
	}
	sort.Slice(located, func(i, j int) bool {
		return located[i].Position < located[j].Position
	})
	return located
}

// buildMatcher assembles the anchored pattern from the original template
// text: literal spans escaped, one capture group per located token. The
// pattern is case-insensitive since locale name rendering and the input
// text may disagree in case.
func buildMatcher(template string, located []*LocatedToken, loc *Locale) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`(?i)^`)
	last := 0
	for _, lt := range located {
		b.WriteString(regexp.QuoteMeta(template[last:lt.Position]))
		b.WriteString("(")
		b.WriteString(lt.Token.Fragment(loc))
		b.WriteString(")")
		last = lt.Position + len(lt.Token.Text)
	}
	b.WriteString(regexp.QuoteMeta(template[last:]))
	b.WriteString("$")
	matcher, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("could not compile matcher for template %q: %w", template, err)
	}
	return matcher, nil
}

// Tokens returns the located tokens in template order, one per capture
// group.
func (c *CompiledTemplate) Tokens() []*LocatedToken {
	return c.located
}

// Match runs the matcher against text and returns the captured substrings
// in template order. The text must conform to the template in full.
func (c *CompiledTemplate) Match(text string) ([]string, error) {
	m := c.matcher.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("text %q does not conform to template %q: %w", text, c.Template, ErrNoMatch)
	}
	return m[1:], nil
}
