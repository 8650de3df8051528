package docsite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awalczuk/docsite"
)

func TestEntity_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete entity", func(t *testing.T) {
		t.Parallel()

		e := &docsite.Entity{Name: "B", FullName: "A::B", Kind: docsite.KindClass}

		assert.NoError(t, e.Validate())
	})

	t.Run("requires a name", func(t *testing.T) {
		t.Parallel()

		e := &docsite.Entity{FullName: "A::B", Kind: docsite.KindClass}

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(e.Validate()))
	})

	t.Run("requires a full name", func(t *testing.T) {
		t.Parallel()

		e := &docsite.Entity{Name: "B", Kind: docsite.KindClass}

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(e.Validate()))
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		t.Parallel()

		e := &docsite.Entity{Name: "B", FullName: "A::B", Kind: "struct"}

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(e.Validate()))
	})
}

func TestPartition(t *testing.T) {
	t.Parallel()

	c := &docsite.Entity{Name: "C", FullName: "C", Kind: docsite.KindClass}
	m := &docsite.Entity{Name: "M", FullName: "M", Kind: docsite.KindModule}
	f := &docsite.Entity{Name: "a.rb", FullName: "a.rb", Kind: docsite.KindFile}

	classes, files := docsite.Partition([]*docsite.Entity{c, f, m})

	assert.Equal(t, []*docsite.Entity{c, m}, classes)
	assert.Equal(t, []*docsite.Entity{f}, files)
}
