package utils

import "sync"

// ParallelMap 以最多 workers 个协程并发处理 input，结果顺序与输入一致
func ParallelMap[T, R any](input []T, workers int, fn func(T) R) []R {
	out := make([]R, len(input))
	if len(input) == 0 {
		return out
	}
	if workers <= 1 || len(input) == 1 {
		for i, v := range input {
			out[i] = fn(v)
		}
		return out
	}
	workers = min(workers, len(input))

	var wg sync.WaitGroup
	idx := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				out[i] = fn(input[i])
			}
		}()
	}
	for i := range input {
		idx <- i
	}
	close(idx)
	wg.Wait()
	return out
}

// Chunk 按 size 切分，最后一块可能不足 size
func Chunk[T any](input []T, size int) [][]T {
	if size <= 0 || len(input) == 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(input)+size-1)/size)
	for start := 0; start < len(input); start += size {
		chunks = append(chunks, input[start:min(start+size, len(input))])
	}
	return chunks
}
