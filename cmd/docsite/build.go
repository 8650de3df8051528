package main

import (
	"fmt"
	"path/filepath"

	"github.com/awalczuk/docsite"
	"github.com/awalczuk/docsite/fs"
	"github.com/awalczuk/docsite/generate"
	"github.com/awalczuk/docsite/goldmark"
	"github.com/awalczuk/docsite/search"
	docslog "github.com/awalczuk/docsite/slog"
	"github.com/awalczuk/docsite/tree"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	out := c.Out
	if out == "" {
		out = defaultOut()
	}

	var trees docsite.NavTreeBuilder = tree.NewBuilder()
	var index docsite.SearchIndexBuilder = &search.Builder{
		Formatter: goldmark.NewFormatter(),
	}
	if c.Verbose {
		trees = docslog.NewLoggingTreeBuilder(trees, deps.Logger)
		index = docslog.NewLoggingIndexBuilder(index, deps.Logger)
	}

	gen := &generate.Generator{
		Source: deps.Source,
		Trees:  trees,
		Index:  index,
		Store:  fs.NewArtifactStore(filepath.Dir(out), filepath.Base(out), c.Gzip),
	}

	res, err := gen.Run(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Generated %s (build %s): %d classes/modules, %d files, %d search records\n",
		out, res.BuildID, res.Classes, res.Files, res.Records)
	return nil
}
