package analysis

import (
	"github.com/nguyentantai21042004/searchinvideos/internal/gemini"
	"github.com/nguyentantai21042004/searchinvideos/internal/logger"
)

// Options controls how a Runner treats existing results and exports.
type Options struct {
	SkipExisting bool
	Docx         bool
}

type implRunner struct {
	store    Store
	analyzer gemini.Analyzer
	logger   logger.Logger
	opts     Options
}

// New creates a Runner that stores results in store.
func New(store Store, analyzer gemini.Analyzer, opts Options, log logger.Logger) Runner {
	return &implRunner{
		store:    store,
		analyzer: analyzer,
		logger:   log,
		opts:     opts,
	}
}
