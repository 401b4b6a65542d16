package infrastructure

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_RunsAllTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Start()

	var counter int64
	for i := 0; i < 100; i++ {
		if err := pool.Submit(func() error {
			atomic.AddInt64(&counter, 1)
			return nil
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	pool.Wait()

	if counter != 100 {
		t.Errorf("got %d tâches exécutées, want 100", counter)
	}
}

func TestWorkerPool_CollectsErrors(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()

	wantErr := errors.New("lot invalide")
	pool.Submit(func() error { return wantErr })
	pool.Submit(func() error { return nil })
	pool.Wait()

	select {
	case err := <-pool.Errors():
		if !errors.Is(err, wantErr) {
			t.Errorf("got %v, want %v", err, wantErr)
		}
	default:
		t.Error("l'erreur de la tâche doit être collectée")
	}
}

func TestWorkerPool_SubmitAfterStop(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	pool.Stop()

	if err := pool.Submit(func() error { return nil }); err == nil {
		t.Error("Submit après Stop doit échouer")
	}
}

func BenchmarkWorkerPool_1000Tasks(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		pool := NewWorkerPool(4)
		pool.Start()

		var counter int64
		for j := 0; j < 1000; j++ {
			pool.Submit(func() error {
				atomic.AddInt64(&counter, 1)
				return nil
			})
		}
		pool.Wait()
	}
}
