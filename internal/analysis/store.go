package analysis

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	analysisSuffix = "_analysis.txt"
	docxSuffix     = "_analysis.docx"
	audioExt       = ".mp3"
)

// Entry pairs an audio file name with its saved analysis.
type Entry struct {
	AudioName string
	Path      string
}

// Store keeps one analysis text file per audio file, keyed by base name.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) Store {
	return Store{Dir: filepath.Clean(dir)}
}

func baseName(audioPath string) string {
	name := filepath.Base(audioPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// PathFor returns <Dir>/<base>_analysis.txt for audioPath.
func (s Store) PathFor(audioPath string) string {
	return filepath.Join(s.Dir, baseName(audioPath)+analysisSuffix)
}

// DocxPathFor returns <Dir>/<base>_analysis.docx for audioPath.
func (s Store) DocxPathFor(audioPath string) string {
	return filepath.Join(s.Dir, baseName(audioPath)+docxSuffix)
}

// Exists reports whether an analysis file is present for audioPath.
func (s Store) Exists(audioPath string) bool {
	fi, err := os.Stat(s.PathFor(audioPath))
	return err == nil && fi.Mode().IsRegular()
}

// Load returns the saved analysis; ok is false when none exists.
func (s Store) Load(audioPath string) (string, bool, error) {
	b, err := os.ReadFile(s.PathFor(audioPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(b), true, nil
}

// Save writes text for audioPath, replacing any previous analysis.
func (s Store) Save(audioPath, text string) (string, error) {
	path := s.PathFor(audioPath)
	if err := writeFileAtomic(s.Dir, filepath.Base(path), []byte(text)); err != nil {
		return "", fmt.Errorf("save analysis: %w", err)
	}
	return path, nil
}

// List returns every saved analysis sorted by audio name. A missing
// directory yields an empty list.
func (s Store) List() ([]Entry, error) {
	matches, err := filepath.Glob(filepath.Join(s.Dir, "*"+analysisSuffix))
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), analysisSuffix) + audioExt
		entries = append(entries, Entry{AudioName: name, Path: m})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].AudioName < entries[j].AudioName })
	return entries, nil
}

// Find looks up an entry by audio name; "talk", "talk.mp3" and a full path
// all resolve to the same entry. Only a trailing .mp3 is dropped, so
// "talk.final" names talk.final.mp3.
func (s Store) Find(audioName string) (Entry, bool, error) {
	name := filepath.Base(audioName)
	if strings.EqualFold(filepath.Ext(name), audioExt) {
		name = name[:len(name)-len(audioExt)]
	}

	path := filepath.Join(s.Dir, name+analysisSuffix)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	return Entry{AudioName: name + audioExt, Path: path}, true, nil
}

// writeFileAtomic writes data to dir/name through a temp file and rename.
func writeFileAtomic(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, filepath.Join(dir, name))
}
