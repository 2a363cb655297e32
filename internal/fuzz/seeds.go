package fuzztests

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
)

var builtinSeeds = []string{
	"",
	"10px solid red",
	"rgba(0,0,0,.5)",
	"calc(1px + 2px)",
	"url(/a.png)",
	"url( http://website.com/assets\\)_test )",
	"bold italic 12px \t /3 'Open Sans', Arial, \"Helvetica Neue\", sans-serif",
	"U+0025-00FF, U+4??",
	"/* unclosed",
	"\"unclosed \\",
	"() )wo)rd)",
	"( ( ( ) ",
	"\\",
	"/*/",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every line of testdata/**/*.cssv as a seed.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".cssv" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		sc := bufio.NewScanner(bytes.NewReader(src))
		for sc.Scan() {
			if line := bytes.TrimSpace(sc.Bytes()); len(line) > 0 {
				f.Add(clampSeed(line))
			}
		}
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
