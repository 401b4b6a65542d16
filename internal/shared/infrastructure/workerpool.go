package infrastructure

import (
	"context"
	"errors"
	"sync"
)

// Task unité de travail soumise au pool
type Task func() error

// WorkerPool exécute des tâches en parallèle sur un nombre borné de
// goroutines. Le pool est à usage unique: Wait ferme le canal de
// soumission, un nouvel export crée un nouveau pool.
type WorkerPool struct {
	workerCount int
	tasks       chan Task
	errs        chan error
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewWorkerPool crée un pool de workerCount workers
func NewWorkerPool(workerCount int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		workerCount: workerCount,
		tasks:       make(chan Task, workerCount*2),
		errs:        make(chan error, workerCount),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start démarre les workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			return
		case task, ok := <-wp.tasks:
			if !ok {
				return
			}
			if err := task(); err != nil {
				select {
				case wp.errs <- err:
				default:
					// canal d'erreurs plein, l'erreur est perdue
				}
			}
		}
	}
}

// Submit soumet une tâche; bloque si tous les workers sont occupés et
// que le tampon de soumission est plein
func (wp *WorkerPool) Submit(task Task) error {
	select {
	case <-wp.ctx.Done():
		return errors.New("worker pool is stopped")
	case wp.tasks <- task:
		return nil
	}
}

// Wait ferme le canal de soumission et attend la fin des tâches en cours
func (wp *WorkerPool) Wait() {
	close(wp.tasks)
	wp.wg.Wait()
}

// Stop arrête le pool sans attendre les tâches non démarrées
func (wp *WorkerPool) Stop() {
	wp.cancel()
	wp.wg.Wait()
}

// Errors retourne le canal des erreurs remontées par les tâches
func (wp *WorkerPool) Errors() <-chan error {
	return wp.errs
}
