package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssign(t *testing.T) {
	name := "old"

	Assign(&name, nil)
	assert.Equal(t, "old", name)

	v := "new"
	Assign(&name, &v)
	assert.Equal(t, "new", name)

	count := 1
	n := 0
	Assign(&count, &n)
	assert.Equal(t, 0, count)
}

func TestAssignPath(t *testing.T) {
	old := "/uploads/brands/old.png"
	dst := &old

	AssignPath(&dst, nil)
	assert.Equal(t, "/uploads/brands/old.png", *dst)

	next := "/uploads/brands/new.png"
	AssignPath(&dst, &next)
	assert.Equal(t, "/uploads/brands/new.png", *dst)

	next = "changed after assignment"
	assert.Equal(t, "/uploads/brands/new.png", *dst)

	empty := ""
	AssignPath(&dst, &empty)
	assert.Nil(t, dst)
}

func TestAssignOptional(t *testing.T) {
	var productID *int

	id := 4
	AssignOptional(&productID, &id)
	if assert.NotNil(t, productID) {
		assert.Equal(t, 4, *productID)
	}

	AssignOptional(&productID, nil)
	assert.NotNil(t, productID)

	zero := 0
	AssignOptional(&productID, &zero)
	assert.Nil(t, productID)
}

func TestEqual(t *testing.T) {
	a, b, c := 1, 1, 2

	assert.True(t, Equal[int](nil, nil))
	assert.True(t, Equal(&a, &b))
	assert.False(t, Equal(&a, &c))
	assert.False(t, Equal(&a, nil))
	assert.False(t, Equal(nil, &c))
}
