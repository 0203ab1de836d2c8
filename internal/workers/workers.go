package workers

// Workers runs and stops a fixed set of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers groups workers. Nil entries are skipped.
func NewWorkers(workers ...Worker) *Workers {
	ws := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Shutdown stops the workers in reverse registration order.
func (w *Workers) Shutdown() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Shutdown()
	}
}
