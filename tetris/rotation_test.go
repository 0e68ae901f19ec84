package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		rotation Rotation
		want     Matrix
	}{
		{
			name:     "normal is a copy",
			shape:    J,
			rotation: Normal,
			want:     Matrix{{1, 0, 0}, {1, 1, 1}},
		},
		{
			name:     "J clockwise",
			shape:    J,
			rotation: Clockwise,
			want:     Matrix{{1, 1}, {1, 0}, {1, 0}},
		},
		{
			name:     "J one eighty",
			shape:    J,
			rotation: OneEighty,
			want:     Matrix{{1, 1, 1}, {0, 0, 1}},
		},
		{
			name:     "J counter-clockwise",
			shape:    J,
			rotation: CounterClockwise,
			want:     Matrix{{0, 1}, {0, 1}, {1, 1}},
		},
		{
			name:     "I clockwise stands up",
			shape:    I,
			rotation: Clockwise,
			want:     Matrix{{1}, {1}, {1}, {1}},
		},
		{
			name:     "S one eighty is itself",
			shape:    S,
			rotation: OneEighty,
			want:     Matrix{{0, 1, 1}, {1, 1, 0}},
		},
		{
			name:     "T counter-clockwise",
			shape:    T,
			rotation: CounterClockwise,
			want:     Matrix{{0, 1}, {1, 1}, {0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Rotate(tt.shape.Matrix(), tt.rotation))
		})
	}
}

func TestRotateRoundTrips(t *testing.T) {
	for _, s := range Shapes() {
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()
			m := s.Matrix()

			half := Rotate(m, OneEighty)
			assert.Equal(t, m.Height(), half.Height())
			assert.True(t, Rotate(half, OneEighty).Equal(m), "180 twice should be the identity")

			cw := Rotate(m, Clockwise)
			assert.Equal(t, m.Width(), cw.Height())
			assert.Equal(t, m.Height(), cw.Width())
			assert.True(t, Rotate(cw, CounterClockwise).Equal(m), "cw then ccw should be the identity")

			ccw := Rotate(m, CounterClockwise)
			assert.True(t, Rotate(ccw, Clockwise).Equal(m), "ccw then cw should be the identity")

			for _, r := range []Rotation{Normal, Clockwise, OneEighty, CounterClockwise} {
				assert.Equal(t, 4, Rotate(m, r).Cells(), "rotation %v must keep 4 cells", r)
			}
		})
	}
}

func TestRotateDoesNotMutate(t *testing.T) {
	m := L.Matrix()
	out := Rotate(m, Normal)
	out[0][0] = 1
	require.Equal(t, Matrix{{0, 0, 1}, {1, 1, 1}}, m)
	require.Equal(t, Matrix{{0, 0, 1}, {1, 1, 1}}, L.Matrix(), "catalog must not be affected")
}

func TestRotationCycle(t *testing.T) {
	assert.Equal(t, Clockwise, Normal.Next())
	assert.Equal(t, Normal, CounterClockwise.Next())
	assert.Equal(t, CounterClockwise, Normal.Prev())
	assert.Equal(t, OneEighty, CounterClockwise.Prev())

	for _, r := range []Rotation{Normal, Clockwise, OneEighty, CounterClockwise} {
		got, err := ParseRotation(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := ParseRotation("sideways")
	assert.ErrorIs(t, err, ErrInvalidRotation)
	assert.False(t, Rotation(4).Valid())
}
