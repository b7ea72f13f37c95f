package logio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Run("zero value discards", func(t *testing.T) {
		var log Logger
		log.Warnf("nobody hears %v", "this")
		assert.Equal(t, 0, log.ExitCode())
	})

	t.Run("leveled lines", func(t *testing.T) {
		var out strings.Builder
		var log Logger
		log.SetOutput(&out)
		log.Warnf("low on %v", "operands")
		log.Printf("", "plain line")
		assert.Equal(t, "WARN: low on operands\nplain line\n", out.String())
		assert.Equal(t, 0, log.ExitCode())
	})

	t.Run("errors retain the exit code", func(t *testing.T) {
		var out strings.Builder
		var log Logger
		log.SetOutput(&out)
		log.Errorf(99, "stack underflow")
		assert.Equal(t, "ERROR: stack underflow\n", out.String())
		assert.Equal(t, 99, log.ExitCode())
	})

	t.Run("leveledf closure", func(t *testing.T) {
		var out strings.Builder
		var log Logger
		log.SetOutput(&out)
		log.Leveledf("TRACE")("step %v", 3)
		assert.Equal(t, "TRACE: step 3\n", out.String())
	})
}
