package embedding

import "github.com/viant/wordvec/vector"

// state is the table lifecycle: unloaded until the first successful load,
// loaded forever after.
type state interface {
	isState()
}

type unloaded struct{}

type loaded struct {
	table *vector.Table
}

func (unloaded) isState() {}
func (loaded) isState()   {}
