package algo_test

import (
	"testing"

	"go.uber.org/goleak"
)

// searches spawn no goroutines of their own; make sure the concurrent tests
// don't leave any behind either
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
