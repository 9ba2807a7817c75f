package internal

import "github.com/tuannh982/setlike/set/commons"

// Cursor drives an argument-provided iterator. Close is idempotent and is expected to be
// deferred right after Open, so the iterator is released on every exit path.
type Cursor struct {
	it     commons.Iterator
	closed bool
}

// Each feeds every remaining element to fn until the iterator is exhausted, fn asks to
// stop by returning false, or an error occurs. An element that cannot be a set element
// fails with commons.ErrUnhashable. Each never closes the cursor.
func (c *Cursor) Each(fn func(v any) (bool, error)) error {
	for !c.closed {
		v, ok, err := c.it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := commons.CheckHashable(v); err != nil {
			return err
		}
		cont, err := fn(v)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	return nil
}

func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.it.Close()
}

// Release closes c and reports a close failure through errp unless an earlier error is
// already there.
func Release(c *Cursor, errp *error) {
	if cerr := c.Close(); cerr != nil && *errp == nil {
		*errp = cerr
	}
}
