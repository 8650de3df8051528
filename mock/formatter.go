package mock

import (
	"github.com/awalczuk/docsite"
)

var _ docsite.SummaryFormatter = (*SummaryFormatter)(nil)

// SummaryFormatter is a mock implementation of docsite.SummaryFormatter.
type SummaryFormatter struct {
	FlattenFn func(summary string) string
}

func (f *SummaryFormatter) Flatten(summary string) string {
	return f.FlattenFn(summary)
}
