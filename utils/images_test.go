package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveImageEmptyFallsBack(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		ref := ResolveImage(raw)
		assert.Equal(t, FallbackImage, ref.URI)
		assert.True(t, ref.Asset)
	}
}

func TestResolveImageUnknownFallsBack(t *testing.T) {
	ref := ResolveImage("unknown.jpg")
	assert.Equal(t, FallbackImage, ref.URI)
	assert.True(t, ref.Asset)
}

func TestResolveImageURIPassthrough(t *testing.T) {
	for _, raw := range []string{
		"https://x/y.png",
		"http://example.com/car.jpg",
		"file:///data/user/0/pic.jpg",
		"content://media/external/images/1",
	} {
		ref := ResolveImage(raw)
		assert.Equal(t, raw, ref.URI)
		assert.False(t, ref.Asset)
	}
}

func TestResolveImageKnownAsset(t *testing.T) {
	ref := ResolveImage("./assets/Hình-Siêu-xe-4k-cực-đẹp-scaled.jpg")
	assert.Equal(t, "/assets/Hình-Siêu-xe-4k-cực-đẹp-scaled.jpg", ref.URI)
	assert.True(t, ref.Asset)
}

func TestResolveImageLegacyPathByBasename(t *testing.T) {
	// resolution keys on the final path segment, so even an unmigrated
	// legacy path finds its asset
	ref := ResolveImage("items_Picture/Hình-siêu-xe-Lamborghini-cực-đẹp-scaled.jpg")
	assert.Equal(t, "/assets/Hình-siêu-xe-Lamborghini-cực-đẹp-scaled.jpg", ref.URI)
	assert.True(t, ref.Asset)

	ref = ResolveImage(`items_Picture\placeholder.jpg`)
	assert.Equal(t, "/assets/placeholder.jpg", ref.URI)
}
