package iescookie

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetServer_StoreCookie(t *testing.T) {
	server := NewAssetServer()

	stored := server.StoreCookie(CookieAsset{Name: "spot", Type: CookieTypeSpot})
	require.NotEmpty(t, stored.Id)
	_, err := uuid.Parse(string(stored.Id))
	assert.NoError(t, err, "asset ids are uuids")
	assert.Equal(t, uint(0), stored.Version)

	got, ok := server.Cookie(stored.Id)
	require.True(t, ok)
	assert.Equal(t, stored, got)

	byName, ok := server.CookieByName("spot")
	require.True(t, ok)
	assert.Equal(t, stored.Id, byName.Id)
	assert.Equal(t, 1, server.Len())
}

func TestAssetServer_ReimportKeepsId(t *testing.T) {
	server := NewAssetServer()

	first := server.StoreCookie(CookieAsset{Name: "downlight", Size: 64})
	second := server.StoreCookie(CookieAsset{Name: "downlight", Size: 128})

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, uint(1), second.Version)
	assert.Equal(t, 1, server.Len())

	got, _ := server.Cookie(first.Id)
	assert.Equal(t, 128, got.Size)

	other := server.StoreCookie(CookieAsset{Name: "wallwash"})
	assert.NotEqual(t, first.Id, other.Id)
	assert.Equal(t, 2, server.Len())
}

func TestAssetServer_RemoveCookie(t *testing.T) {
	server := NewAssetServer()
	stored := server.StoreCookie(CookieAsset{Name: "spot"})

	server.RemoveCookie(stored.Id)
	server.RemoveCookie("missing")

	_, ok := server.Cookie(stored.Id)
	assert.False(t, ok)
	_, ok = server.CookieByName("spot")
	assert.False(t, ok)
	assert.Zero(t, server.Len())
}

func TestAssetServer_ConcurrentStores(t *testing.T) {
	server := NewAssetServer()
	names := []string{"a", "b", "c", "d"}

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			server.StoreCookie(CookieAsset{Name: names[i%len(names)]})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, len(names), server.Len())
	for _, name := range names {
		asset, ok := server.CookieByName(name)
		require.True(t, ok)
		assert.Equal(t, uint(9), asset.Version)
	}
}
