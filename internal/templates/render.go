package templates

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rendered is the output of Render. Unresolved lists, in first-occurrence
// order, the placeholders for which no variable was supplied.
type Rendered struct {
	Subject    string
	Body       string
	Unresolved []string
}

// Complete reports whether every placeholder was substituted.
func (r Rendered) Complete() bool { return len(r.Unresolved) == 0 }

// Render substitutes every {name} in the template's subject and body with
// vars[name]. Placeholders without a matching variable are left in place.
// Substituted values are not scanned again.
func Render(t Template, vars map[string]string) Rendered {
	missing := newNameSet()
	subject := substitute(t.Subject, vars, missing)
	body := substitute(t.Body, vars, missing)
	return Rendered{Subject: subject, Body: body, Unresolved: missing.names}
}

// DisplayName derives a catalog label from a camel-case id: a space is
// inserted before every upper-case letter after the first rune, then the
// first rune is upper-cased. jobOffer becomes "Job Offer".
func DisplayName(id string) string {
	if id == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(id) + 4)
	for i, r := range id {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	s := b.String()
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// Placeholders returns the distinct placeholder names in text, in
// first-occurrence order.
func Placeholders(text string) []string {
	seen := newNameSet()
	scan(text, func(literal string) {}, func(name, _ string) { seen.add(name) })
	return seen.names
}

func substitute(text string, vars map[string]string, missing *nameSet) string {
	var b strings.Builder
	b.Grow(len(text))
	scan(text,
		func(literal string) { b.WriteString(literal) },
		func(name, token string) {
			if v, ok := vars[name]; ok {
				b.WriteString(v)
				return
			}
			missing.add(name)
			b.WriteString(token)
		},
	)
	return b.String()
}

// scan walks text once, calling literal for plain runs and placeholder for
// each {name} token. Braces that do not form a valid token are literal.
func scan(text string, literal func(string), placeholder func(name, token string)) {
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		end := i + 1
		for end < len(text) && isNameByte(text[end]) {
			end++
		}
		if end == i+1 || end >= len(text) || text[end] != '}' {
			continue
		}
		if start < i {
			literal(text[start:i])
		}
		placeholder(text[i+1:end], text[i:end+1])
		start = end + 1
		i = end
	}
	if start < len(text) {
		literal(text[start:])
	}
}

func isNameByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

type nameSet struct {
	names []string
	seen  map[string]struct{}
}

func newNameSet() *nameSet {
	return &nameSet{seen: make(map[string]struct{})}
}

func (s *nameSet) add(name string) {
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
}
