package fs

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"

	"github.com/awalczuk/docsite"
)

// Artifact file names within the published directory.
const (
	NavTreeFile     = "nav_tree.js"
	SearchIndexFile = "search_index.js"
	ManifestFile    = "manifest.json"
)

// navTreeGlobal is the global variable the page shell reads the navigation
// tree from. The shell loads nav_tree.js before the navigation panel
// script runs.
const navTreeGlobal = "navTree"

// Ensure ArtifactStore implements docsite.ArtifactStore at compile time.
var _ docsite.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore implements docsite.ArtifactStore on the local filesystem
// with atomic publish semantics. Artifacts are staged in baseDir/name.tmp
// and moved to baseDir/name on Commit, so a failed build never leaves
// partial output in the published directory.
type ArtifactStore struct {
	baseDir string
	name    string
	gzip    bool

	mu     sync.Mutex
	hashes map[string]string
}

// NewArtifactStore creates a store publishing to baseDir/name. When
// gzipArtifacts is set, each artifact also gets a precompressed .gz
// sibling for static hosts that serve precompressed assets.
func NewArtifactStore(baseDir, name string, gzipArtifacts bool) *ArtifactStore {
	return &ArtifactStore{
		baseDir: baseDir,
		name:    name,
		gzip:    gzipArtifacts,
		hashes:  map[string]string{},
	}
}

func (s *ArtifactStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ArtifactStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// SaveNavTree stages the navigation tree as a .js file assigning the nested
// array structure to the navTree global.
func (s *ArtifactStore) SaveNavTree(ctx context.Context, forest []*docsite.TreeNode) error {
	if forest == nil {
		forest = []*docsite.TreeNode{}
	}
	data, err := encodeJSON(forest)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	b.WriteString("var " + navTreeGlobal + " = ")
	b.Write(data)
	b.WriteString(";\n")
	return s.write(NavTreeFile, b.Bytes())
}

// SaveSearchIndex stages the search index as an ES module: the record list
// is the default export, the acceleration terms a named export.
func (s *ArtifactStore) SaveSearchIndex(ctx context.Context, index *docsite.SearchIndex) error {
	records := index.Records
	if records == nil {
		records = []docsite.SearchRecord{}
	}
	terms := index.Terms
	if terms == nil {
		terms = []string{}
	}

	recData, err := encodeJSON(records)
	if err != nil {
		return err
	}
	termData, err := encodeJSON(terms)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	b.WriteString("export default ")
	b.Write(recData)
	b.WriteString(";\n\nexport const searchTerms = ")
	b.Write(termData)
	b.WriteString(";\n")
	return s.write(SearchIndexFile, b.Bytes())
}

// Commit writes the manifest and atomically publishes the staged set,
// replacing any previously published directory.
func (s *ArtifactStore) Commit(ctx context.Context, buildID string) error {
	s.mu.Lock()
	manifest := docsite.Manifest{
		BuildID:     buildID,
		GeneratedAt: time.Now().UTC(),
		Artifacts:   s.hashes,
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), ManifestFile), append(data, '\n'), 0644); err != nil {
		return err
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the staged artifacts.
func (s *ArtifactStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// write stages one artifact and records its fingerprint. SaveNavTree and
// SaveSearchIndex may run concurrently, hence the lock around the
// fingerprint map.
func (s *ArtifactStore) write(name string, data []byte) error {
	fullPath := filepath.Join(s.tempDir(), name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return err
	}

	s.mu.Lock()
	s.hashes[name] = Fingerprint(data)
	s.mu.Unlock()

	if s.gzip {
		return writeGzip(fullPath+".gz", data)
	}
	return nil
}

// Fingerprint returns the xxhash64 digest of data as a hex string.
func Fingerprint(data []byte) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(data))
	return hex.EncodeToString(b[:])
}

// encodeJSON marshals without HTML escaping: the artifacts are loaded as
// script, and the inheritance suffix must keep its literal " < ".
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func writeGzip(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	zw, err := gzip.NewWriterLevel(f, gzip.BestCompression)
	if err != nil {
		f.Close()
		return err
	}
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
