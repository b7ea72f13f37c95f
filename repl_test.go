package main

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteCommand(t *testing.T) {
	complete := func(line string) []string {
		heads := completeCommand(line)
		sort.Strings(heads)
		return heads
	}

	assert.Equal(t, []string{"1 2 swap"}, complete("1 2 sw"))
	assert.Equal(t, []string{"sqrt"}, complete("sqr"))
	assert.Empty(t, complete("1 2 "), "empty partial completes nothing")
	assert.Empty(t, complete("zzz"))

	logs := complete("log")
	assert.Equal(t, []string{"log", "log10", "log2", "logn"}, logs)
}
