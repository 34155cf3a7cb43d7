// Package spawn provides the execution environments that timer workers run on.
//
// A Spawner is chosen once at startup. The goroutine spawner gives every
// worker its own goroutine; the pool spawner runs workers on a bounded
// ants pool and refuses new work when the pool is full or released.
//
// Failure to run a unit is reported as *UnsupportedEnvironmentError, which
// matches ErrUnsupportedEnvironment with errors.Is.
package spawn
