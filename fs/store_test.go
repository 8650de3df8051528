package fs_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awalczuk/docsite"
	"github.com/awalczuk/docsite/fs"
)

func testForest() []*docsite.TreeNode {
	return []*docsite.TreeNode{
		{Kind: docsite.ClassNode, Name: "B", Path: "classes/B.html", Suffix: " < A"},
	}
}

func testIndex() *docsite.SearchIndex {
	return &docsite.SearchIndex{
		Records: []docsite.SearchRecord{
			{Type: docsite.RecordClass, FullName: "B", Path: "classes/B.html"},
		},
		Terms: []string{"b"},
	}
}

func TestArtifactStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("publishes artifacts atomically on commit", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		store := fs.NewArtifactStore(baseDir, "site", false)

		require.NoError(t, store.SaveNavTree(ctx, testForest()))
		require.NoError(t, store.SaveSearchIndex(ctx, testIndex()))
		require.NoError(t, store.Commit(ctx, "build-1"))

		// Staging directory is gone, published directory is complete.
		_, err := os.Stat(filepath.Join(baseDir, "site.tmp"))
		assert.True(t, os.IsNotExist(err))

		treeData, err := os.ReadFile(filepath.Join(baseDir, "site", fs.NavTreeFile))
		require.NoError(t, err)
		content := string(treeData)
		assert.True(t, len(content) > 0)
		assert.Contains(t, content, "var navTree = [")
		// The inheritance suffix keeps its literal angle bracket; the
		// artifact is script, not markup.
		assert.Contains(t, content, `" < A"`)

		indexData, err := os.ReadFile(filepath.Join(baseDir, "site", fs.SearchIndexFile))
		require.NoError(t, err)
		assert.Contains(t, string(indexData), "export default [")
		assert.Contains(t, string(indexData), "export const searchTerms = [")
	})

	t.Run("manifest records build ID and artifact fingerprints", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		store := fs.NewArtifactStore(baseDir, "site", false)

		require.NoError(t, store.SaveNavTree(ctx, testForest()))
		require.NoError(t, store.SaveSearchIndex(ctx, testIndex()))
		require.NoError(t, store.Commit(ctx, "build-2"))

		data, err := os.ReadFile(filepath.Join(baseDir, "site", fs.ManifestFile))
		require.NoError(t, err)

		var manifest docsite.Manifest
		require.NoError(t, json.Unmarshal(data, &manifest))
		assert.Equal(t, "build-2", manifest.BuildID)
		assert.False(t, manifest.GeneratedAt.IsZero())

		treeData, err := os.ReadFile(filepath.Join(baseDir, "site", fs.NavTreeFile))
		require.NoError(t, err)
		assert.Equal(t, fs.Fingerprint(treeData), manifest.Artifacts[fs.NavTreeFile])

		indexData, err := os.ReadFile(filepath.Join(baseDir, "site", fs.SearchIndexFile))
		require.NoError(t, err)
		assert.Equal(t, fs.Fingerprint(indexData), manifest.Artifacts[fs.SearchIndexFile])
	})

	t.Run("abort discards staged artifacts", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		store := fs.NewArtifactStore(baseDir, "site", false)

		require.NoError(t, store.SaveNavTree(ctx, testForest()))
		require.NoError(t, store.Abort())

		_, err := os.Stat(filepath.Join(baseDir, "site.tmp"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(baseDir, "site"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("commit replaces a previously published directory", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()

		first := fs.NewArtifactStore(baseDir, "site", false)
		require.NoError(t, first.SaveNavTree(ctx, testForest()))
		require.NoError(t, first.Commit(ctx, "build-1"))

		second := fs.NewArtifactStore(baseDir, "site", false)
		require.NoError(t, second.SaveNavTree(ctx, nil))
		require.NoError(t, second.SaveSearchIndex(ctx, testIndex()))
		require.NoError(t, second.Commit(ctx, "build-2"))

		data, err := os.ReadFile(filepath.Join(baseDir, "site", fs.NavTreeFile))
		require.NoError(t, err)
		assert.Equal(t, "var navTree = [];\n", string(data))
	})

	t.Run("empty index serializes as empty arrays, never null", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		store := fs.NewArtifactStore(baseDir, "site", false)

		require.NoError(t, store.SaveSearchIndex(ctx, &docsite.SearchIndex{}))
		require.NoError(t, store.Commit(ctx, "build-3"))

		data, err := os.ReadFile(filepath.Join(baseDir, "site", fs.SearchIndexFile))
		require.NoError(t, err)
		assert.NotContains(t, string(data), "null")
	})

	t.Run("writes gzip siblings when enabled", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		store := fs.NewArtifactStore(baseDir, "site", true)

		require.NoError(t, store.SaveNavTree(ctx, testForest()))
		require.NoError(t, store.Commit(ctx, "build-4"))

		plain, err := os.ReadFile(filepath.Join(baseDir, "site", fs.NavTreeFile))
		require.NoError(t, err)

		f, err := os.Open(filepath.Join(baseDir, "site", fs.NavTreeFile+".gz"))
		require.NoError(t, err)
		defer f.Close()
		zr, err := gzip.NewReader(f)
		require.NoError(t, err)
		defer zr.Close()
		unzipped, err := io.ReadAll(zr)
		require.NoError(t, err)

		assert.Equal(t, plain, unzipped)
	})
}
