package main

import (
	"embed"
	"io/fs"

	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

//go:embed assets
var embedded embed.FS

// openAssets returns a loader over dir, or over the embedded assets when dir is empty
func openAssets(dir string) *config.Loader {
	if dir != "" {
		return config.NewLoader(dir)
	}
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		// the embed directive guarantees the directory
		panic(err)
	}
	return config.NewFSLoader(sub, "assets")
}
