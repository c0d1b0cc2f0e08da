package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDuplicates(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, RemoveDuplicates([]int{1, 2, 1, 3, 2}))
	assert.Equal(t, []string{}, RemoveDuplicates([]string{}))
}

func TestDeref(t *testing.T) {
	a, b, empty := "a.png", "b.png", ""

	assert.Equal(t, []string{"a.png", "b.png"}, Deref(&a, nil, &empty, &b))
	assert.Empty(t, Deref[string](nil, nil))
}
