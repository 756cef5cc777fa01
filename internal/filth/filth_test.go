// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package filth_test

import (
	// stdlib
	"errors"
	"testing"

	// 3p
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// project
	"github.com/DataDog/pii-scrubber/internal/filth"
	"github.com/DataDog/pii-scrubber/internal/pointer"
)

const document = "abcdefghijklmnop"

func newFilth(beg, end int, filthType string) *filth.Filth {
	return filth.New(beg, end, document[beg:end], filthType)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("overlapping filth merge into their union", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		a := newFilth(0, 4, filth.Email)
		b := newFilth(2, 7, filth.Skype)

		// WHEN
		got, err := filth.Merge(a, b)

		// THEN
		require.NoError(t, err)
		assert.True(t, got.IsMerged())
		assert.Equal(t, 0, got.Beg)
		assert.Equal(t, 7, got.End)
		assert.Equal(t, "abcdefg", got.Text)
		assert.Equal(t, []*filth.Filth{a, b}, got.Filths())
	})

	t.Run("touching filth merge", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		a := newFilth(0, 4, filth.Email)
		b := newFilth(4, 6, filth.Email)

		// WHEN
		got, err := a.Merge(b)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "abcdef", got.Text)
		assert.Len(t, got.Filths(), 2)
	})

	t.Run("later filth starting first is prepended to the text", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		a := newFilth(5, 9, filth.Phone)
		b := newFilth(2, 6, filth.URL)

		// WHEN
		got, err := filth.Merge(a, b)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, 2, got.Beg)
		assert.Equal(t, 9, got.End)
		assert.Equal(t, "cdefghi", got.Text)
	})

	t.Run("contained filth does not change the text", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		a := newFilth(0, 10, filth.URL)
		b := newFilth(3, 5, filth.Email)

		// WHEN
		got, err := filth.Merge(a, b)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, document[0:10], got.Text)
		assert.Equal(t, "{{URL+EMAIL}}", got.Replacement())
	})

	t.Run("chained filth are absorbed without nesting", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		a := newFilth(0, 4, filth.Email)
		b := newFilth(3, 7, filth.Phone)
		c := newFilth(6, 9, filth.URL)

		// WHEN
		ab, err := filth.Merge(a, b)
		require.NoError(t, err)
		abc, err := ab.Merge(c)

		// THEN
		require.NoError(t, err)
		assert.Same(t, ab, abc)
		assert.Equal(t, 0, abc.Beg)
		assert.Equal(t, 9, abc.End)
		assert.Equal(t, abc.End-abc.Beg, len(abc.Text))
		assert.Equal(t, []*filth.Filth{a, b, c}, abc.Filths())
	})

	t.Run("merged filth absorbed into another are flattened", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		a := newFilth(0, 4, filth.Email)
		b := newFilth(3, 7, filth.Phone)
		c := newFilth(6, 9, filth.URL)
		d := newFilth(8, 10, filth.Skype)
		ab, err := filth.Merge(a, b)
		require.NoError(t, err)
		cd, err := filth.Merge(c, d)
		require.NoError(t, err)

		// WHEN
		got, err := filth.Merge(ab, cd)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, []*filth.Filth{a, b, c, d}, got.Filths())
		for _, constituent := range got.Filths() {
			assert.False(t, constituent.IsMerged())
		}
	})

	t.Run("non touching filth cannot be merged", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		a := filth.New(0, 4, "abcd", filth.Email)
		a.DetectorName = "email"
		b := filth.New(10, 14, "klmn", filth.Email)

		// WHEN
		got, err := filth.Merge(a, b)

		// THEN
		assert.Nil(t, got)
		assert.ErrorIs(t, err, filth.ErrMerge)
		var mergeErr *filth.MergeError
		require.True(t, errors.As(err, &mergeErr))
		assert.Same(t, a, mergeErr.Left)
		assert.Same(t, b, mergeErr.Right)
		assert.NotContains(t, err.Error(), "abcd")
		assert.Contains(t, err.Error(), `<email beg=0 end=4 document="" detector="email">`)
	})

	t.Run("filth from different documents cannot be merged", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		a := newFilth(0, 4, filth.Email)
		b := newFilth(2, 6, filth.Email)
		b.DocumentName = "b.txt"

		// WHEN
		_, err := filth.Merge(a, b)

		// THEN
		assert.ErrorIs(t, err, filth.ErrDocumentMismatch)
	})

	t.Run("inconsistent text fails loudly", func(t *testing.T) {
		t.Parallel()
		// GIVEN
		a := filth.New(0, 4, "ab", filth.Email)
		b := newFilth(2, 6, filth.Email)

		// WHEN
		_, err := filth.Merge(a, b)

		// THEN
		assert.ErrorIs(t, err, filth.ErrTextLength)
	})
}

func TestReplacement(t *testing.T) {
	t.Parallel()

	t.Run("defaults to the upper cased type", func(t *testing.T) {
		t.Parallel()
		got := newFilth(0, 3, filth.Email).Replacement()
		assert.Equal(t, "{{EMAIL}}", got)
	})

	t.Run("merged filth join their types", func(t *testing.T) {
		t.Parallel()
		merged, err := filth.Merge(newFilth(0, 8, filth.Email), newFilth(0, 8, filth.Skype))
		require.NoError(t, err)
		assert.Equal(t, "{{EMAIL+SKYPE}}", merged.Replacement())
	})

	t.Run("replacement string wins over the placeholder", func(t *testing.T) {
		t.Parallel()
		f := newFilth(0, 3, filth.Email)
		f.ReplacementString = pointer.Get("")
		assert.Equal(t, "", f.Replacement())
	})
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	t.Run("filth without check is valid", func(t *testing.T) {
		t.Parallel()
		assert.True(t, newFilth(0, 3, filth.Phone).IsValid())
	})

	t.Run("check decides validity", func(t *testing.T) {
		t.Parallel()
		f := newFilth(0, 3, filth.CreditCard)
		f.Check = func(f *filth.Filth) bool { return f.Text == "xyz" }
		assert.False(t, f.IsValid())
	})
}
