package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstSuccess(t *testing.T) {
	var calls []string
	step := func(name string, ok bool) Strategy[int] {
		return Strategy[int]{Name: name, Try: func() (int, bool) {
			calls = append(calls, name)
			return len(name), ok
		}}
	}

	got, name, ok := FirstSuccess(step("strict", false), step("loose", true), step("legacy", true))

	assert.True(t, ok)
	assert.Equal(t, "loose", name)
	assert.Equal(t, 5, got)
	assert.Equal(t, []string{"strict", "loose"}, calls)
}

func TestFirstSuccess_NoneSucceed(t *testing.T) {
	got, name, ok := FirstSuccess(
		Strategy[string]{Name: "a", Try: func() (string, bool) { return "x", false }},
		Strategy[string]{Name: "nil"},
	)
	assert.False(t, ok)
	assert.Empty(t, name)
	assert.Empty(t, got)
}
