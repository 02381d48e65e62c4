package main

import (
	"os"
	"strconv"
)

// capacityEnvVar overrides the default initial capacity of the heap.
const capacityEnvVar = "HEAPQ_CAPACITY"

// defaultCapacity matches the default of 'heap.NewHeap'.
const defaultCapacity = 8

// capacityFromEnv returns the capacity set using 'HEAPQ_CAPACITY', values which are missing, malformed or not positive
// are ignored in favor of the default.
func capacityFromEnv() int {
	env, ok := os.LookupEnv(capacityEnvVar)
	if !ok {
		return defaultCapacity
	}

	capacity, err := strconv.Atoi(env)
	if err != nil || capacity <= 0 {
		return defaultCapacity
	}

	return capacity
}
