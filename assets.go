package slidemacro

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.css
var embeddedAssets embed.FS

// AssetsFS exposes the stylesheet for macro output so decks can serve it
// next to remark.
//
//	mux.Handle("/slidemacro/",
//	  http.StripPrefix("/slidemacro/",
//	    http.FileServerFS(slidemacro.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// StyleSheet returns the contents of slidemacro.css.
func StyleSheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/slidemacro.css")
	if err != nil {
		return ""
	}
	return string(data)
}
