package canopy_test

import (
	"context"
	"testing"

	"github.com/canopyhash/canopy"
	"github.com/canopyhash/canopy/canopytest"
	"github.com/canopyhash/canopy/internal/ctest"
	"github.com/stretchr/testify/require"
)

func TestBuildAll_matchesIndividualBuilds(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := ctest.NewLogger(t)

	all := canopytest.Blocks(t, 15, 32)
	inputs := [][][]byte{
		nil, // Empty input is a valid batch member.
		all[:1],
		all[1:4],
		all[4:8],
		all[8:],
	}

	trees, err := canopy.BuildAll(ctx, log, inputs, canopy.BatchConfig{
		BuildConfig: canopy.BuildConfig{Hasher: fnv32Hasher{}},
		Concurrency: 2,
	})
	require.NoError(t, err)
	require.Len(t, trees, len(inputs))

	for i, blocks := range inputs {
		want, err := canopy.Root(blocks, fnv32Hasher{})
		require.NoError(t, err)

		require.Equal(t, want, trees[i].RootDigest())
		require.Equal(t, len(blocks), trees[i].LeafCount())
	}
}

func TestBuildAll_hasherFailure(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := ctest.NewLogger(t)

	all := canopytest.Blocks(t, 6, 32)
	inputs := [][][]byte{
		all[:3],
		all[3:],
	}

	trees, err := canopy.BuildAll(ctx, log, inputs, canopy.BatchConfig{
		BuildConfig: canopy.BuildConfig{Hasher: brokenHasher{}},
	})
	require.Nil(t, trees)
	require.ErrorIs(t, err, errHashBroken)

	var hashErr canopy.HashError
	require.ErrorAs(t, err, &hashErr)
}

func TestBuildAll_canceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	log := ctest.NewLogger(t)

	inputs := [][][]byte{
		canopytest.Blocks(t, 4, 32),
	}

	trees, err := canopy.BuildAll(ctx, log, inputs, canopy.BatchConfig{
		BuildConfig: canopy.BuildConfig{Hasher: fnv32Hasher{}},
	})
	require.Nil(t, trees)
	require.ErrorIs(t, err, context.Canceled)
}

// brokenHasher fails on every call.
// Unlike failingHasher it has no internal state,
// so it is safe for the concurrent builds in BuildAll.
type brokenHasher struct{}

func (brokenHasher) AppendSum(dst, in []byte) ([]byte, error) {
	return nil, errHashBroken
}

func (brokenHasher) Size() int {
	return 4
}
