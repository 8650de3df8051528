package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awalczuk/docsite"
	"github.com/awalczuk/docsite/mock"
	"github.com/awalczuk/docsite/search"
)

func TestBuilder_BuildIndex(t *testing.T) {
	t.Parallel()

	t.Run("emits one record per documented entity and method", func(t *testing.T) {
		t.Parallel()

		b := &docsite.Entity{
			Name:             "B",
			FullName:         "B",
			Kind:             docsite.KindClass,
			HasDocumentation: true,
			Path:             "classes/B.html",
			SuperclassName:   "A",
			Methods: []docsite.Method{
				{Name: "run", Summary: "Runs it", AnchorURL: "classes/B.html#method-i-run"},
			},
		}

		index, err := search.NewBuilder().BuildIndex([]*docsite.Entity{b})
		require.NoError(t, err)

		require.Len(t, index.Records, 2)
		assert.Equal(t, docsite.SearchRecord{
			Type:     docsite.RecordClass,
			FullName: "B",
			Path:     "classes/B.html",
		}, index.Records[0])
		assert.Equal(t, docsite.SearchRecord{
			Type:           docsite.RecordMethod,
			OwningFullName: "B",
			MethodName:     "run",
			Summary:        "Runs it",
			AnchorURL:      "classes/B.html#method-i-run",
		}, index.Records[1])
	})

	t.Run("modules get module-typed records", func(t *testing.T) {
		t.Parallel()

		m := &docsite.Entity{
			Name:             "Helpers",
			FullName:         "Helpers",
			Kind:             docsite.KindModule,
			HasDocumentation: true,
			Path:             "classes/Helpers.html",
		}

		index, err := search.NewBuilder().BuildIndex([]*docsite.Entity{m})
		require.NoError(t, err)

		require.Len(t, index.Records, 1)
		assert.Equal(t, docsite.RecordModule, index.Records[0].Type)
	})

	t.Run("traverses entities sorted by full name, methods in declaration order", func(t *testing.T) {
		t.Parallel()

		zeta := &docsite.Entity{
			Name:             "Zeta",
			FullName:         "Zeta",
			Kind:             docsite.KindClass,
			HasDocumentation: true,
			Path:             "classes/Zeta.html",
			Methods: []docsite.Method{
				{Name: "second", AnchorURL: "classes/Zeta.html#method-i-second"},
				{Name: "first", AnchorURL: "classes/Zeta.html#method-i-first"},
			},
		}
		alpha := &docsite.Entity{
			Name:             "Alpha",
			FullName:         "Alpha",
			Kind:             docsite.KindClass,
			HasDocumentation: true,
			Path:             "classes/Alpha.html",
		}

		index, err := search.NewBuilder().BuildIndex([]*docsite.Entity{zeta, alpha})
		require.NoError(t, err)

		require.Len(t, index.Records, 4)
		assert.Equal(t, "Alpha", index.Records[0].FullName)
		assert.Equal(t, "Zeta", index.Records[1].FullName)
		// Declaration order is preserved, not re-sorted.
		assert.Equal(t, "second", index.Records[2].MethodName)
		assert.Equal(t, "first", index.Records[3].MethodName)
	})

	t.Run("keeps terms lowercased and parallel to records", func(t *testing.T) {
		t.Parallel()

		b := &docsite.Entity{
			Name:             "MyClass",
			FullName:         "MyClass",
			Kind:             docsite.KindClass,
			HasDocumentation: true,
			Path:             "classes/MyClass.html",
			Methods: []docsite.Method{
				{Name: "Run", AnchorURL: "classes/MyClass.html#method-i-Run"},
			},
		}

		index, err := search.NewBuilder().BuildIndex([]*docsite.Entity{b})
		require.NoError(t, err)

		require.Len(t, index.Terms, len(index.Records))
		assert.Equal(t, []string{"myclass", "run"}, index.Terms)
	})

	t.Run("skips undocumented entities silently", func(t *testing.T) {
		t.Parallel()

		e := &docsite.Entity{
			Name:     "Hidden",
			FullName: "Hidden",
			Kind:     docsite.KindClass,
			Methods: []docsite.Method{
				{Name: "run"},
			},
		}

		index, err := search.NewBuilder().BuildIndex([]*docsite.Entity{e})
		require.NoError(t, err)

		assert.Empty(t, index.Records)
	})

	t.Run("ignores file entities", func(t *testing.T) {
		t.Parallel()

		f := &docsite.Entity{
			Name:             "a.rb",
			FullName:         "a.rb",
			Kind:             docsite.KindFile,
			HasDocumentation: true,
			Path:             "files/a_rb.html",
		}

		index, err := search.NewBuilder().BuildIndex([]*docsite.Entity{f})
		require.NoError(t, err)

		assert.Empty(t, index.Records)
	})

	t.Run("applies the summary formatter to method summaries", func(t *testing.T) {
		t.Parallel()

		builder := &search.Builder{
			Formatter: &mock.SummaryFormatter{
				FlattenFn: func(summary string) string { return "flattened" },
			},
		}
		e := &docsite.Entity{
			Name:             "B",
			FullName:         "B",
			Kind:             docsite.KindClass,
			HasDocumentation: true,
			Path:             "classes/B.html",
			Methods: []docsite.Method{
				{Name: "run", Summary: "Runs *it*", AnchorURL: "classes/B.html#method-i-run"},
				{Name: "stop", Summary: "", AnchorURL: "classes/B.html#method-i-stop"},
			},
		}

		index, err := builder.BuildIndex([]*docsite.Entity{e})
		require.NoError(t, err)

		require.Len(t, index.Records, 3)
		assert.Equal(t, "flattened", index.Records[1].Summary)
		// Empty summaries never reach the formatter.
		assert.Equal(t, "", index.Records[2].Summary)
	})

	t.Run("empty input yields an empty index, never nil", func(t *testing.T) {
		t.Parallel()

		index, err := search.NewBuilder().BuildIndex(nil)
		require.NoError(t, err)

		require.NotNil(t, index)
		assert.NotNil(t, index.Records)
		assert.Empty(t, index.Records)
	})

	t.Run("rejects entity without full name", func(t *testing.T) {
		t.Parallel()

		e := &docsite.Entity{Name: "A", Kind: docsite.KindClass}

		_, err := search.NewBuilder().BuildIndex([]*docsite.Entity{e})

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})
}
