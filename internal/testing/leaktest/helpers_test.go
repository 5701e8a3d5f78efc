package leaktest

import (
	"testing"
	"time"
)

func TestGoroutineChecker_CleanShutdown(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		close(done)
	}()
	<-done

	checker.Check(2)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	stub := &testingStub{}
	checker := NewGoroutineChecker(stub)

	stop := make(chan struct{})
	defer close(stop)

	// Deliberately leave goroutines running past the check
	for i := 0; i < 5; i++ {
		go func() {
			<-stop
		}()
	}
	time.Sleep(20 * time.Millisecond)

	checker.Check(2)

	if !stub.failed {
		t.Error("expected leaked goroutines to be reported")
	}
}

// testingStub captures failures without failing the real test
type testingStub struct {
	testing.TB
	failed bool
}

func (s *testingStub) Helper() {}

func (s *testingStub) Errorf(format string, args ...interface{}) {
	s.failed = true
}
