package funcbox

import (
	"github.com/on-the-ground/func_ive_go/funcbox/internal/erasure"
	"go.uber.org/zap"
)

// SetLogger sets the logger used by all containers. The default discards everything.
//
// Dispatch table builds are logged at debug level; failures to close a
// released payload are logged at warn level.
func SetLogger(logger *zap.Logger) {
	erasure.SetLogger(logger)
}
