package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConstant(t *testing.T) {
	d := Constant(time.Second)
	for i := uint(1); i < 10; i++ {
		assert.Equal(t, time.Second, d(i))
	}
}

func TestLinear(t *testing.T) {
	d := Linear(2 * time.Second)
	assert.Equal(t, 2*time.Second, d(1))
	assert.Equal(t, 4*time.Second, d(2))
	assert.Equal(t, 6*time.Second, d(3))
}

func TestBinaryExponential(t *testing.T) {
	d := BinaryExponential(time.Second)
	assert.Equal(t, 1*time.Second, d(1))
	assert.Equal(t, 2*time.Second, d(2))
	assert.Equal(t, 4*time.Second, d(3))
	assert.Equal(t, 8*time.Second, d(4))
}

func TestExponential(t *testing.T) {
	d := Exponential(time.Second, 3)
	assert.Equal(t, 1*time.Second, d(1))
	assert.Equal(t, 3*time.Second, d(2))
	assert.Equal(t, 9*time.Second, d(3))
}
