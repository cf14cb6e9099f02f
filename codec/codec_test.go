package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y float64
	Tag  string
}

func TestEncodeDecodeScalar(t *testing.T) {
	buf, err := Encode(int64(-42))
	require.Nil(t, err)
	v, err := Decode[int64](buf)
	require.Nil(t, err)
	require.EqualValues(t, -42, v)
}

func TestEncodeDecodeInfinity(t *testing.T) {
	buf, err := Encode(math.Inf(-1))
	require.Nil(t, err)
	v, err := Decode[float64](buf)
	require.Nil(t, err)
	require.True(t, math.IsInf(v, -1))
}

func TestEncodeDecodeStruct(t *testing.T) {
	in := point{X: 1.5, Y: -2, Tag: "origin"}
	buf, err := Encode(in)
	require.Nil(t, err)
	out, err := Decode[point](buf)
	require.Nil(t, err)
	require.Equal(t, in, out)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode[int](nil)
	require.NotNil(t, err)
	_, err = Decode[int]([]byte("definitely not lz4"))
	require.NotNil(t, err)
}
