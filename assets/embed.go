// Package assets embeds the GLSL sources named by the shader standard.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFiles embed.FS

// Shaders returns the embedded shader directory, rooted so that file names
// match the catalog paths with the assets/shaders prefix removed.
func Shaders() fs.FS {
	sub, err := fs.Sub(shaderFiles, "shaders")
	if err != nil {
		panic(err)
	}
	return sub
}
