package utils

import (
	"log"
	"path"
	"strings"

	"github.com/samber/lo"
)

// ImageRef is a displayable image reference. Asset marks references served
// from the bundled /assets directory; direct URIs pass through untouched.
type ImageRef struct {
	URI   string `json:"uri"`
	Asset bool   `json:"asset"`
}

// FallbackImage is returned whenever a stored reference cannot be resolved.
// A missing image must never break product rendering.
const FallbackImage = "/assets/placeholder.jpg"

var uriPrefixes = []string{"http://", "https://", "file://", "content://"}

// knownAssets maps stored filenames to their served paths. The table is
// fixed at build time, matching the images bundled under ./assets.
var knownAssets = map[string]string{
	"hinh-anh-sieu-xe-lamborghini-doc-dao_062150116.jpg":      "/assets/hinh-anh-sieu-xe-lamborghini-doc-dao_062150116.jpg",
	"Hình-siêu-xe-4k-cực-nét-cho-laptop-máy-tính-scaled.jpg":  "/assets/Hình-siêu-xe-4k-cực-nét-cho-laptop-máy-tính-scaled.jpg",
	"Hình-Siêu-xe-4k-cực-đẹp-scaled.jpg":                      "/assets/Hình-Siêu-xe-4k-cực-đẹp-scaled.jpg",
	"Hình-siêu-xe-Lamborghini-cực-đẹp-scaled.jpg":             "/assets/Hình-siêu-xe-Lamborghini-cực-đẹp-scaled.jpg",
	"placeholder.jpg":                                         "/assets/placeholder.jpg",
}

// ResolveImage maps a stored image string to a displayable reference.
// Unknown or empty values fall back to FallbackImage instead of failing.
func ResolveImage(raw string) ImageRef {
	if strings.TrimSpace(raw) == "" {
		return ImageRef{URI: FallbackImage, Asset: true}
	}

	if lo.SomeBy(uriPrefixes, func(p string) bool { return strings.HasPrefix(raw, p) }) {
		return ImageRef{URI: raw}
	}

	name := path.Base(strings.ReplaceAll(raw, "\\", "/"))
	if served, ok := knownAssets[name]; ok {
		return ImageRef{URI: served, Asset: true}
	}

	log.Printf("image resolver: unknown asset %q, using fallback", raw)
	return ImageRef{URI: FallbackImage, Asset: true}
}
