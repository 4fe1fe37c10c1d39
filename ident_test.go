package statemachine_test

import (
	"testing"

	statemachine "github.com/statelang/go-statemachine"
	"github.com/stretchr/testify/assert"
)

func TestValidIdent(t *testing.T) {
	for _, ok := range []string{"Red", "_hidden", "a1", "snake_case", "dollar$ized", "statemachine"} {
		assert.True(t, statemachine.ValidIdent(ok), "%q should be valid", ok)
	}
	for _, bad := range []string{"", "1abc", "$lead", "with-dash", "white space", "func", "return", "for", "go", "select"} {
		assert.False(t, statemachine.ValidIdent(bad), "%q should be invalid", bad)
	}
}
