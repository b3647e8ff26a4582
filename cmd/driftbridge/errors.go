package main

import (
	"errors"

	"github.com/Zeeeepa/drift/internal/bridgestore"
	"github.com/Zeeeepa/drift/internal/config"
	"github.com/Zeeeepa/drift/internal/query"
)

// exitCodeFor maps an error into one of the CLI's three exit tiers:
// 0 success (unreached here), 1 store/attach/schema error, 2
// configuration error.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, config.ErrMissingField) || errors.Is(err, config.ErrInvalidField) {
		return 2
	}
	if errors.Is(err, bridgestore.ErrConfiguration) {
		return 2
	}
	if errors.Is(err, bridgestore.ErrAttachFailed) || errors.Is(err, bridgestore.ErrSchemaMigration) ||
		errors.Is(err, query.ErrAttachFailed) {
		return 1
	}
	return 1
}
