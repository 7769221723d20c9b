package cnhashtest

import (
	"testing"

	"github.com/canopyhash/canopy/cnhash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() cnhash.Hasher

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("sum is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()

		dst01, err := h.AppendSum(nil, []byte("deterministic_data"))
		require.NoError(t, err)

		dst02, err := h.AppendSum(nil, []byte("deterministic_data"))
		require.NoError(t, err)

		require.Equal(t, dst01, dst02)
	})

	t.Run("sum respects input", func(t *testing.T) {
		t.Parallel()

		h := f()

		dst01, err := h.AppendSum(nil, []byte("input_1"))
		require.NoError(t, err)

		dst02, err := h.AppendSum(nil, []byte("input_2"))
		require.NoError(t, err)

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("sum appends to dst", func(t *testing.T) {
		t.Parallel()

		h := f()

		plain, err := h.AppendSum(nil, []byte("appended_data"))
		require.NoError(t, err)

		prefix := []byte("prefix_")
		appended, err := h.AppendSum(prefix, []byte("appended_data"))
		require.NoError(t, err)

		require.Equal(t, append([]byte("prefix_"), plain...), appended)
	})

	t.Run("size matches output length", func(t *testing.T) {
		t.Parallel()

		h := f()

		dst, err := h.AppendSum(nil, []byte("sized_data"))
		require.NoError(t, err)

		require.Len(t, dst, h.Size())
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		h := f()

		want, err := h.AppendSum(nil, []byte("concurrent_data"))
		require.NoError(t, err)

		const n = 8
		results := make(chan []byte, n)
		for range n {
			go func() {
				dst, err := h.AppendSum(nil, []byte("concurrent_data"))
				if err != nil {
					results <- nil
					return
				}
				results <- dst
			}()
		}

		for range n {
			require.Equal(t, want, <-results)
		}
	})
}
