// Package fs writes refdoc artifacts to the local filesystem.
package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// staging writes files next to their final paths and moves them into place
// together on commit. A failed commit restores whatever was at the final
// paths before, so a run either replaces every artifact or none.
type staging struct {
	paths []string
}

func tempPath(path string) string {
	return path + ".tmp"
}

func backupPath(path string) string {
	return path + ".bak"
}

// stage writes data to path's temporary sibling, creating parent
// directories as needed.
func (s *staging) stage(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(tempPath(path), data, 0644); err != nil {
		return err
	}
	s.paths = append(s.paths, path)
	return nil
}

// commit renames every staged file to its final path. Existing files are
// moved aside first and put back if any rename fails.
func (s *staging) commit() error {
	var backedUp, committed []string

	rollback := func() {
		for _, p := range committed {
			_ = os.Remove(p)
		}
		for _, p := range backedUp {
			_ = os.Rename(backupPath(p), p)
		}
	}

	for _, p := range s.paths {
		if _, err := os.Lstat(p); err == nil {
			if err := os.Rename(p, backupPath(p)); err != nil {
				rollback()
				return err
			}
			backedUp = append(backedUp, p)
		} else if !errors.Is(err, os.ErrNotExist) {
			rollback()
			return err
		}

		if err := os.Rename(tempPath(p), p); err != nil {
			rollback()
			return err
		}
		committed = append(committed, p)
	}

	for _, p := range backedUp {
		_ = os.Remove(backupPath(p))
	}
	s.paths = nil
	return nil
}

// abort removes staged files that were not committed.
func (s *staging) abort() {
	for _, p := range s.paths {
		_ = os.Remove(tempPath(p))
	}
	s.paths = nil
}
