package executors

import (
	"github.com/ryogrid/cqbase/catalog"
)

// ExecutorContext stores all the context necessary to run an executor
type ExecutorContext struct {
	catalog *catalog.Catalog
}

func NewExecutorContext(catalog *catalog.Catalog) *ExecutorContext {
	return &ExecutorContext{catalog}
}

func (e *ExecutorContext) GetCatalog() *catalog.Catalog {
	return e.catalog
}
