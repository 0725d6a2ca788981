package iescookie

import (
	"sync"

	"github.com/google/uuid"

	"github.com/gekko3d/iescookie/cookie"
	"github.com/gekko3d/iescookie/ies"
)

type AssetId string

// CookieAsset is one imported IES file. Exactly one of Spot or Cube is set,
// matching Type.
type CookieAsset struct {
	Id           AssetId
	Version      uint
	Name         string
	Type         CookieType
	Size         int
	Range        cookie.AngleRange
	MaxIntensity float64
	Spot         *cookie.Texture
	Cube         *cookie.CubeTexture
	Data         *cookie.SampleBuffer
	Document     *ies.Document
}

// AssetServer keeps imported cookies by id. Re-importing a name keeps its
// id and bumps the version.
type AssetServer struct {
	mu      sync.RWMutex
	cookies map[AssetId]CookieAsset
	names   map[string]AssetId
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		cookies: make(map[AssetId]CookieAsset),
		names:   make(map[string]AssetId),
	}
}

func (server *AssetServer) StoreCookie(asset CookieAsset) CookieAsset {
	server.mu.Lock()
	defer server.mu.Unlock()

	if id, ok := server.names[asset.Name]; ok {
		asset.Id = id
		asset.Version = server.cookies[id].Version + 1
	} else {
		asset.Id = makeAssetId()
		asset.Version = 0
		server.names[asset.Name] = asset.Id
	}

	server.cookies[asset.Id] = asset
	return asset
}

func (server *AssetServer) Cookie(id AssetId) (CookieAsset, bool) {
	server.mu.RLock()
	defer server.mu.RUnlock()
	asset, ok := server.cookies[id]
	return asset, ok
}

func (server *AssetServer) CookieByName(name string) (CookieAsset, bool) {
	server.mu.RLock()
	defer server.mu.RUnlock()
	id, ok := server.names[name]
	if !ok {
		return CookieAsset{}, false
	}
	return server.cookies[id], true
}

func (server *AssetServer) RemoveCookie(id AssetId) {
	server.mu.Lock()
	defer server.mu.Unlock()
	if asset, ok := server.cookies[id]; ok {
		delete(server.names, asset.Name)
		delete(server.cookies, id)
	}
}

func (server *AssetServer) Len() int {
	server.mu.RLock()
	defer server.mu.RUnlock()
	return len(server.cookies)
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
