package preview

// cached holds a lazily built asset. valid is tracked separately from the
// value so an empty result is still a cache hit.
type cached[T any] struct {
	value  T
	valid  bool
	builds int
}

func (c *cached[T]) get(build func() T) T {
	if !c.valid {
		c.value = build()
		c.valid = true
		c.builds++
	}
	return c.value
}

func (c *cached[T]) invalidate() {
	var zero T
	c.value = zero
	c.valid = false
}
