// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops workers in reverse start order. Workers that do not implement
// [Stopper] are skipped.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(Stopper); ok {
			s.Stop()
		}
	}
}
