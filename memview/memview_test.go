package memview

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mel2oo/go-revslice/internal/flip"
)

func init() {
	CheckInvariants = true
}

// Builds a MemView out of the given chunks.
func chunked(chunks ...string) MemView {
	var mv MemView
	for _, c := range chunks {
		mv.Append(New([]byte(c)))
	}
	return mv
}

func TestAppend(t *testing.T) {
	var mv MemView
	mv.Append(New([]byte("hello ")))
	mv.Append(New([]byte("prince!")))
	if mv.String() != "hello prince!" {
		t.Errorf(`expected "hello prince!" got "%s"`, mv.String())
	} else if mv.Len() != len("hello prince!") {
		t.Errorf(`expected new length %d, got %d`, len("hello prince!"), mv.Len())
	}
}

// DeepCopy MemViews should grow independently.
func TestDeepCopy(t *testing.T) {
	mv1 := New([]byte("hello"))
	mv2 := mv1.DeepCopy()
	mv2.Append(New([]byte(" prince!")))
	mv1.Append(New([]byte(" pineapple!")))

	assert.Equal(t, "hello pineapple!", mv1.String())
	assert.Equal(t, len("hello pineapple!"), mv1.Len())
	assert.Equal(t, "hello prince!", mv2.String())
	assert.Equal(t, len("hello prince!"), mv2.Len())
}

func TestClear(t *testing.T) {
	mv := chunked("abc", "def")
	mv.Clear()
	assert.Equal(t, 0, mv.Len())
	assert.Equal(t, "", mv.String())

	mv.Append(New([]byte("xyz")))
	assert.Equal(t, "xyz", mv.String())
}

func TestAt(t *testing.T) {
	input := "abcdefghijklmnopqrst"
	mv := chunked("abcdefg", "", "hijkl", "mnopq", "rst")

	for i := 0; i < len(input); i++ {
		assert.Equal(t, input[i], mv.At(i), "index %d", i)
	}

	for _, i := range []int{-1, len(input), len(input) + 1} {
		_, err := mv.Get(i)
		assert.True(t, errors.Is(err, flip.ErrOutOfBounds), "index %d", i)
		assert.Panics(t, func() { mv.At(i) }, "index %d", i)
	}
}

func TestSetAt(t *testing.T) {
	data := []byte("hello")
	more := []byte(" world")
	var mv MemView
	mv.Append(New(data))
	mv.Append(New(more))

	mv.SetAt(0, 'H')
	mv.SetAt(6, 'W')

	assert.Equal(t, "Hello World", mv.String())
	// Writes land in the caller's memory.
	assert.Equal(t, "Hello", string(data))
	assert.Equal(t, " World", string(more))

	assert.Panics(t, func() { mv.SetAt(mv.Len(), 'x') })
}

func TestSubView(t *testing.T) {
	input := "abcdefghijklmnopqrst"
	mv := chunked("abcdefg", "hijkl", "", "mnopq", "rst")

	for start := 0; start <= len(input); start++ {
		for end := start; end <= len(input); end++ {
			sub, err := mv.SubView(start, end)
			require.NoError(t, err)
			if diff := cmp.Diff(input[start:end], sub.String()); diff != "" {
				t.Errorf("found diff in [%d, %d): %s", start, end, diff)
			}
			assert.Equal(t, end-start, sub.Len())
		}
	}
}

func TestSubViewOutOfBounds(t *testing.T) {
	mv := chunked("abc", "def")

	testCases := []struct {
		name       string
		start, end int
	}{
		{name: "end past length", start: 0, end: 7},
		{name: "inverted", start: 4, end: 2},
		{name: "negative start", start: -1, end: 2},
	}

	for _, tc := range testCases {
		_, err := mv.SubView(tc.start, tc.end)
		assert.ErrorIs(t, err, flip.ErrRangeOutOfBounds, tc.name)
	}
}

// A SubView shares memory with the MemView it was taken from.
func TestSubViewAliases(t *testing.T) {
	mv := chunked("abc", "def")
	sub, err := mv.SubView(2, 5)
	require.NoError(t, err)

	sub.SetAt(0, 'C')
	sub.SetAt(2, 'E')
	assert.Equal(t, "abCdEf", mv.String())
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		name     string
		left     MemView
		right    MemView
		expected bool
	}{
		{
			name:     "both empty",
			left:     MemView{},
			right:    Empty(),
			expected: true,
		},
		{
			name:     "same chunks",
			left:     chunked("abc", "def"),
			right:    chunked("abc", "def"),
			expected: true,
		},
		{
			name:     "different chunking",
			left:     chunked("ab", "cdef"),
			right:    chunked("abcde", "", "f"),
			expected: true,
		},
		{
			name:  "different length",
			left:  chunked("abc"),
			right: chunked("abcd"),
		},
		{
			name:  "different content",
			left:  chunked("abc", "def"),
			right: chunked("abc", "deF"),
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.left.Equal(tc.right), tc.name)
		assert.Equal(t, tc.expected, tc.right.Equal(tc.left), tc.name)
	}
}

func TestRandomChunking(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	input := make([]byte, 200)
	r.Read(input)

	for trial := 0; trial < 20; trial++ {
		var mv MemView
		for rest := input; len(rest) > 0; {
			n := r.Intn(len(rest)) + 1
			mv.Append(New(rest[:n]))
			rest = rest[n:]
		}

		if diff := cmp.Diff(input, mv.Bytes()); diff != "" {
			t.Fatalf("trial %d: found diff: %s", trial, diff)
		}
		for i := range input {
			if mv.At(i) != input[i] {
				t.Fatalf("trial %d: byte %d: expected %d, got %d", trial, i, input[i], mv.At(i))
			}
		}
	}
}
