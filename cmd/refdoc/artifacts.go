package main

import (
	"os"

	"github.com/fwojciec/refdoc/crawl"
)

// logArtifacts records the size and checksum of every written artifact.
// It does nothing unless verbose logging is enabled.
func logArtifacts(deps *Dependencies) {
	if deps.Logger == nil {
		return
	}
	for _, path := range deps.Artifacts {
		data, err := os.ReadFile(path)
		if err != nil {
			deps.Logger.Warn("artifact", "path", path, "err", err)
			continue
		}
		deps.Logger.Info("artifact",
			"path", path,
			"size", crawl.FormatBytes(len(data)),
			"xxhash", crawl.ComputeHash(data),
		)
	}
}
