package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyNameRoundTrip(t *testing.T) {
	for p, name := range propSpelling {
		got, ok := ParseProperty(name)
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
}

func TestParsePropertyRejectsUnknown(t *testing.T) {
	_, ok := ParseProperty("additionalProperties")
	assert.False(t, ok)
}

func TestPropertySetMembership(t *testing.T) {
	var s PropertySet
	s.Set(PropRef)
	s.Set(PropType)

	assert.True(t, s.Has(PropRef))
	assert.True(t, s.Has(PropType))
	assert.False(t, s.Has(PropEnum))
	assert.Equal(t, 2, s.Count())
}
