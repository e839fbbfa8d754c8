package monostack_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/seqscan/monostack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScan_DailyTemperatures verifies the canonical next-greater scenario:
// each day's answer is the index of the next warmer day.
func TestScan_DailyTemperatures(t *testing.T) {
	seq := []int64{73, 74, 75, 71, 69, 72, 76, 73}

	idx, err := monostack.Scan(seq)
	require.NoError(t, err, "well-formed input must not error")
	assert.Equal(t, []int{1, 2, 6, 5, 5, 6, monostack.None, monostack.None}, idx)
}

// TestScan_EmptySequence verifies an empty input yields an empty result
// and no error.
func TestScan_EmptySequence(t *testing.T) {
	idx, err := monostack.Scan([]int64{})
	require.NoError(t, err)
	assert.Empty(t, idx, "empty sequence must yield empty result")
	assert.NotNil(t, idx, "result must be an empty slice, not nil")
}

// TestScan_SingleElement verifies a one-element sequence has no answer.
func TestScan_SingleElement(t *testing.T) {
	idx, err := monostack.Scan([]int64{5})
	require.NoError(t, err)
	assert.Equal(t, []int{monostack.None}, idx)
}

// TestScan_StrictlyIncreasing verifies every element's next-greater is its
// immediate successor.
func TestScan_StrictlyIncreasing(t *testing.T) {
	idx, err := monostack.Scan([]int64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, monostack.None}, idx)
}

// TestScan_StrictlyDecreasing verifies nothing ahead is ever greater.
func TestScan_StrictlyDecreasing(t *testing.T) {
	idx, err := monostack.Scan([]int64{5, 4, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{monostack.None, monostack.None, monostack.None, monostack.None, monostack.None}, idx)
}

// TestScan_MultiplePopsPerStep exercises several resolutions on one step:
// indices 1 and 0 are both resolved when index 3 (value 4) arrives.
func TestScan_MultiplePopsPerStep(t *testing.T) {
	idx, err := monostack.Scan([]int64{2, 1, 2, 4, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 3, monostack.None, monostack.None}, idx)
}

// TestScan_Variants runs all four builtin variants over shared fixtures.
func TestScan_Variants(t *testing.T) {
	tests := []struct {
		name    string
		variant monostack.Variant
		seq     []int64
		want    []int
	}{
		{
			name:    "next-greater",
			variant: monostack.NextGreater,
			seq:     []int64{73, 74, 75, 71, 69, 72, 76, 73},
			want:    []int{1, 2, 6, 5, 5, 6, monostack.None, monostack.None},
		},
		{
			name:    "next-smaller",
			variant: monostack.NextSmaller,
			seq:     []int64{73, 74, 75, 71, 69, 72, 76, 73},
			want:    []int{3, 3, 3, 4, monostack.None, monostack.None, 7, monostack.None},
		},
		{
			name:    "previous-greater",
			variant: monostack.PrevGreater,
			seq:     []int64{2, 1, 2, 4, 3},
			want:    []int{monostack.None, 0, monostack.None, monostack.None, 3},
		},
		{
			name:    "previous-smaller",
			variant: monostack.PrevSmaller,
			seq:     []int64{2, 1, 2, 4, 3},
			want:    []int{monostack.None, monostack.None, 1, 2, 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, err := monostack.Scan(tc.seq, monostack.WithVariant(tc.variant))
			require.NoError(t, err)
			assert.Equal(t, tc.want, idx)
		})
	}
}

// TestScan_ConvenienceWrappers checks the wrappers agree with WithVariant.
func TestScan_ConvenienceWrappers(t *testing.T) {
	seq := []int64{2, 1, 2, 4, 3}

	ng, err := monostack.NextGreaterIndices(seq)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 3, monostack.None, monostack.None}, ng)

	ns, err := monostack.NextSmallerIndices(seq)
	require.NoError(t, err)
	assert.Equal(t, []int{1, monostack.None, monostack.None, 4, monostack.None}, ns)

	pg, err := monostack.PrevGreaterIndices(seq)
	require.NoError(t, err)
	assert.Equal(t, []int{monostack.None, 0, monostack.None, monostack.None, 3}, pg)

	ps, err := monostack.PrevSmallerIndices(seq)
	require.NoError(t, err)
	assert.Equal(t, []int{monostack.None, monostack.None, 1, 2, 2}, ps)
}

// TestScan_CustomRelation swaps in a magnitude comparison while keeping the
// left-to-right direction.
func TestScan_CustomRelation(t *testing.T) {
	byMagnitude := func(cur, candidate int64) bool {
		abs := func(x int64) int64 {
			if x < 0 {
				return -x
			}

			return x
		}

		return abs(candidate) > abs(cur)
	}

	idx, err := monostack.Scan([]int64{-3, 1, -2, 4}, monostack.WithRelation(byMagnitude))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 3, monostack.None}, idx)
}

// TestScan_StackOperationBound proves the amortized-linear claim: total
// pushes and pops across the whole scan never exceed 2n.
func TestScan_StackOperationBound(t *testing.T) {
	seqs := [][]int64{
		{73, 74, 75, 71, 69, 72, 76, 73},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{7, 7, 7, 7},
		{},
	}

	for _, seq := range seqs {
		var pushes, pops int
		_, err := monostack.Scan(
			seq,
			monostack.WithOnPush(func(int) { pushes++ }),
			monostack.WithOnPop(func(int, int) { pops++ }),
		)
		require.NoError(t, err)
		assert.Equal(t, len(seq), pushes, "each index must be pushed exactly once")
		assert.LessOrEqual(t, pops, len(seq), "each index may be popped at most once")
		assert.LessOrEqual(t, pushes+pops, 2*len(seq), "total stack operations must not exceed 2n")
	}
}

// TestScan_Determinism verifies two scans over the same input agree.
func TestScan_Determinism(t *testing.T) {
	seq := []int64{9, -2, 4, 4, 0, 11, -7, 4}

	first, err := monostack.Scan(seq, monostack.WithVariant(monostack.NextSmaller))
	require.NoError(t, err)
	second, err := monostack.Scan(seq, monostack.WithVariant(monostack.NextSmaller))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestScan_InputNotMutated verifies Scan never writes to the caller's slice.
func TestScan_InputNotMutated(t *testing.T) {
	seq := []int64{3, 1, 4, 1, 5}
	backup := append([]int64(nil), seq...)

	_, err := monostack.Scan(seq, monostack.WithVariant(monostack.PrevGreater))
	require.NoError(t, err)
	assert.Equal(t, backup, seq)
}

// TestScan_OptionViolation ensures an out-of-range variant errors out.
func TestScan_OptionViolation(t *testing.T) {
	_, err := monostack.Scan([]int64{1, 2}, monostack.WithVariant(monostack.Variant(42)))
	assert.ErrorIs(t, err, monostack.ErrOptionViolation)
}

// TestScan_ContextCancelled ensures a cancelled context aborts the scan.
func TestScan_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := monostack.Scan([]int64{1, 2, 3}, monostack.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestParseVariant covers selector round-trips and the unknown-selector error.
func TestParseVariant(t *testing.T) {
	for _, v := range []monostack.Variant{
		monostack.NextGreater,
		monostack.NextSmaller,
		monostack.PrevGreater,
		monostack.PrevSmaller,
	} {
		parsed, err := monostack.ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	_, err := monostack.ParseVariant("sideways-equal")
	assert.ErrorIs(t, err, monostack.ErrUnknownVariant)
}
