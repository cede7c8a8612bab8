// util/main_test.go
package util

import (
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/logging"
)

func TestMain(m *testing.M) {
	logging.Log = zap.NewNop()
	os.Exit(m.Run())
}
