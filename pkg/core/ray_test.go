package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 1))

	assert.Equal(t, r.Origin, r.At(0))
	assert.Equal(t, NewVec3(1, 2, 4), r.At(1))
	assert.Equal(t, NewVec3(1, 2, 6), r.At(3))
}
