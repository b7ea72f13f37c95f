package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintStack(t *testing.T) {
	t.Run("one value per line in storage order", func(t *testing.T) {
		var out strings.Builder
		require.NoError(t, printStack(&out, []string{"1", "2.5", "-3"}, false))
		assert.Equal(t, "1\n2.5\n-3\n", out.String())
	})

	t.Run("empty stack prints nothing", func(t *testing.T) {
		var out strings.Builder
		require.NoError(t, printStack(&out, nil, false))
		assert.Equal(t, "", out.String())
	})

	t.Run("colorized values are wrapped and reset", func(t *testing.T) {
		var out strings.Builder
		require.NoError(t, printStack(&out, []string{"7"}, true))
		assert.Equal(t, ansiValue+"7"+ansiReset+"\n", out.String())
	})
}
