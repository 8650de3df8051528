package main

import (
	"fmt"

	"github.com/awalczuk/docsite"
)

// Run executes the validate command. Loading already enforces the extractor
// contract (non-empty unique full names, known kinds, resolvable
// references), so a successful load means the collection is buildable.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	entities, err := deps.Source.LoadEntities(deps.Ctx)
	if err != nil {
		return err
	}

	classes, files := docsite.Partition(entities)
	methods := 0
	for _, e := range classes {
		methods += len(e.Methods)
	}

	fmt.Fprintf(deps.Stdout, "OK: %d classes/modules, %d files, %d documented methods\n",
		len(classes), len(files), methods)
	return nil
}
