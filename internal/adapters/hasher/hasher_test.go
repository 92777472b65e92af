package hasher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gqlmemo/internal/adapters/hasher"
	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/gqlmemo/internal/core/ports"
)

func TestStrategies(t *testing.T) {
	t.Parallel()

	strategies := []ports.KeyHasher{
		hasher.XXHash{},
		hasher.FNV1a{},
		hasher.NewMapHash(),
	}

	for _, h := range strategies {
		t.Run(h.Name(), func(t *testing.T) {
			t.Parallel()

			const q domain.QueryText = "query { a }"

			assert.Equal(t, h.Sum64(q), h.Sum64(q), "hash must be stable")
			assert.NotEqual(t, h.Sum64(q), h.Sum64(q+"\n"), "trailing newline must change the hash")
			assert.NotEqual(t, h.Sum64("query { a }"), h.Sum64("query { A }"))
		})
	}
}

func TestFNV1a_KnownValue(t *testing.T) {
	t.Parallel()

	// FNV-1a 64 offset basis for the empty input.
	assert.Equal(t, uint64(0xcbf29ce484222325), hasher.FNV1a{}.Sum64(""))
}

func TestXXHash_KnownValue(t *testing.T) {
	t.Parallel()

	// XXH64 with seed 0 for the empty input.
	assert.Equal(t, uint64(0xef46db3751d8e999), hasher.XXHash{}.Sum64(""))
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := hasher.NewRegistry()

	tests := []struct {
		name     string
		lookup   string
		wantName string
	}{
		{name: "default on empty", lookup: "", wantName: hasher.XXHashName},
		{name: "xxhash", lookup: "xxhash", wantName: hasher.XXHashName},
		{name: "fnv1a", lookup: "fnv1a", wantName: hasher.FNV1aName},
		{name: "maphash", lookup: "maphash", wantName: hasher.MapHashName},
		{name: "case insensitive", lookup: "XXHash", wantName: hasher.XXHashName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := r.Lookup(tt.lookup)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, h.Name())
		})
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	t.Parallel()

	_, err := hasher.NewRegistry().Lookup("murmur3")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownHasher.Error())
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{hasher.FNV1aName, hasher.MapHashName, hasher.XXHashName},
		hasher.NewRegistry().Names(),
	)
}
