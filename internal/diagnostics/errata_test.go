package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrataSeverityDefaultsToInfo(t *testing.T) {
	e := New()
	assert.True(t, e.Empty())
	assert.Equal(t, Info, e.Severity())
	assert.True(t, e.IsOK())
}

func TestErrataSeverityMonotonicity(t *testing.T) {
	cases := []struct {
		name string
		add  func(*Errata)
		want Severity
	}{
		{"info only", func(e *Errata) { e.Info("loaded %d bytes", 12) }, Info},
		{"warn raises", func(e *Errata) { e.Info("x"); e.Warn("y") }, Warn},
		{"error wins", func(e *Errata) { e.Warn("y"); e.Error("z") }, Error},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := New()
			tc.add(&e)
			assert.Equal(t, tc.want, e.Severity())
			assert.Equal(t, tc.want < Error, e.IsOK())
		})
	}
}

func TestErrataNoteSplicesFlat(t *testing.T) {
	child := New()
	child.Warn("child warning")

	parent := New()
	parent.Info("parent info")
	parent.Note(child)

	assert.Len(t, parent.Notes(), 2)
	assert.Equal(t, Warn, parent.Severity(), "splicing a child note must raise the parent's severity at least as high")
}

func TestErrataNoteCausePreservesChain(t *testing.T) {
	child := New()
	child.Error("missing ref")

	parent := New()
	parent.NoteCause(Error, child, "failed to generate definition %q", "#/definitions/port")

	notes := parent.Notes()
	assert.Len(t, notes, 1)
	assert.Len(t, notes[0].Causes, 1)
	assert.Equal(t, "missing ref", notes[0].Causes[0].Text)
	// severity monotonicity: the parent's overall severity is >= every cause's severity.
	assert.GreaterOrEqual(t, parent.Severity(), notes[0].Causes[0].Severity)
}

func TestErrataStringsIncludesCauses(t *testing.T) {
	child := New()
	child.Error("nope")
	parent := New()
	parent.NoteCause(Error, child, "wrapped")

	lines := parent.Strings()
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "wrapped")
	assert.Contains(t, lines[0], "nope")
}

func TestRvIsOK(t *testing.T) {
	ok := Rv[int]{Value: 1}
	assert.True(t, ok.IsOK())

	bad := Rv[int]{Value: 0}
	bad.Errata.Error("boom")
	assert.False(t, bad.IsOK())
}
