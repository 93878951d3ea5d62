// Package cache provides a reference counted get-or-create cache.
//
// The driver uses it to share linked shader programs between material
// renderers built from the same sources:
//
//	programs := cache.New[cache.Key, gl.Program]()
//	p, err := programs.Acquire(cache.KeyOf(vs, fs), link)
//	...
//	programs.Release(cache.KeyOf(vs, fs), deleteProgram)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
