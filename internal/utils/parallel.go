package utils

import "sync"

// ParallelTask is one independent unit of work whose result and error are
// collected by RunParallelTasks.
type ParallelTask func() (any, error)

// RunParallelTasks runs every task concurrently and returns the results and
// errors in task order. The stats service uses it to fan its independent
// dashboard queries out against the store.
func RunParallelTasks(tasks []ParallelTask) ([]any, []error) {
	var wg sync.WaitGroup
	results := make([]any, len(tasks))
	errs := make([]error, len(tasks))

	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(i int, task ParallelTask) {
			defer wg.Done()
			results[i], errs[i] = task()
		}(i, task)
	}
	wg.Wait()

	return results, errs
}
