package storage

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// FileNamer generates unique upload filenames from a millisecond timestamp
// and a random suffix. Clock and random source are injectable so name
// generation is deterministic under test.
type FileNamer struct {
	now     func() time.Time
	randInt func() int64
}

func NewFileNamer() *FileNamer {
	return &FileNamer{
		now:     time.Now,
		randInt: func() int64 { return rand.Int63n(1_000_000_000) },
	}
}

func NewFileNamerWith(now func() time.Time, randInt func() int64) *FileNamer {
	return &FileNamer{now: now, randInt: randInt}
}

// Name returns a unique filename carrying the original extension.
// The extension is lowercased and gains a leading dot if missing.
func (n *FileNamer) Name(originalExt string) string {
	ext := strings.ToLower(strings.TrimSpace(originalExt))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%d-%09d%s", n.now().UnixMilli(), n.randInt(), ext)
}
