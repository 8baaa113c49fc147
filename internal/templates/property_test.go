package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"recruitmail/internal/domain"
)

func nameGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z][A-Za-z0-9_]{0,12}`)
}

// valueGen never produces braces so rendered output can be checked for markers.
func valueGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9 .,:@-]{0,20}`)
}

func TestProperty_DisplayNameDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.StringMatching(`[a-z][A-Za-z]{0,20}`).Draw(rt, "id")
		first := DisplayName(id)
		require.Equal(rt, first, DisplayName(id))
		require.Equal(rt, len(id)+countUpper(id[1:]), len(first))
		require.Equal(rt, id, strings.ToLower(first[:1])+strings.ReplaceAll(first, " ", "")[1:])
	})
}

func countUpper(s string) int {
	n := 0
	for _, c := range s {
		if 'A' <= c && c <= 'Z' {
			n++
		}
	}
	return n
}

func TestProperty_UnknownIDNotFound(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)
	known := make(map[string]bool)
	for _, id := range reg.IDs() {
		known[id] = true
	}

	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.String().Draw(rt, "id")
		if known[id] {
			rt.Skip("registered id")
		}
		_, err := reg.Get(id)
		require.ErrorIs(rt, err, domain.ErrTemplateNotFound)
	})
}

func TestProperty_RenderWithoutVariablesKeepsMarkers(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.SampledFrom(reg.IDs()).Draw(rt, "id")
		tmpl, err := reg.Get(id)
		require.NoError(rt, err)

		out := Render(tmpl, map[string]string{})
		require.Equal(rt, tmpl.Subject, out.Subject)
		require.Equal(rt, tmpl.Body, out.Body)
		require.ElementsMatch(rt, tmpl.Placeholders(), out.Unresolved)
	})
}

func TestProperty_FullCoverageLeavesNoMarkers(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.SampledFrom(reg.IDs()).Draw(rt, "id")
		tmpl, err := reg.Get(id)
		require.NoError(rt, err)

		vars := make(map[string]string)
		for _, name := range tmpl.Placeholders() {
			vars[name] = valueGen().Draw(rt, name)
		}
		out := Render(tmpl, vars)
		require.Empty(rt, Placeholders(out.Subject))
		require.Empty(rt, Placeholders(out.Body))
		require.True(rt, out.Complete())
	})
}

func TestProperty_DistinctValuesDistinctOutput(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := nameGen().Draw(rt, "name")
		prefix := valueGen().Draw(rt, "prefix")
		suffix := valueGen().Draw(rt, "suffix")
		a := valueGen().Draw(rt, "a")
		b := valueGen().Filter(func(s string) bool { return s != a }).Draw(rt, "b")

		tmpl := Template{ID: "t", Subject: prefix + "{" + name + "}" + suffix, Body: "{" + name + "}"}
		outA := Render(tmpl, map[string]string{name: a})
		outB := Render(tmpl, map[string]string{name: b})
		require.NotEqual(rt, outA.Subject, outB.Subject)
		require.NotEqual(rt, outA.Body, outB.Body)
	})
}

func TestProperty_RenderIsPure(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := nameGen().Draw(rt, "name")
		v := valueGen().Draw(rt, "v")
		tmpl := Template{ID: "t", Subject: "{" + name + "}", Body: "x {" + name + "} y {other}"}
		vars := map[string]string{name: v}

		first := Render(tmpl, vars)
		second := Render(tmpl, vars)
		require.Equal(rt, first, second)
		require.Len(rt, vars, 1)
	})
}
