package sentinel

import (
	"fmt"
	"io"
	"strings"
)

// Validate checks the ring invariant of every node and the element count.
func (l *List[V]) Validate() error {
	l.lazyInit()

	n := &l.root
	for i := 0; i <= l.len; i++ {
		if n.Next().Prev() != n {
			return fmt.Errorf("%w: successor of position %d does not link back", ErrCorruptRing, i)
		}
		if n.Prev().Next() != n {
			return fmt.Errorf("%w: predecessor of position %d does not link back", ErrCorruptRing, i)
		}
		n = n.Next()
	}

	if n != &l.root {
		return fmt.Errorf("%w: ring length does not match %d elements", ErrCorruptRing, l.len)
	}

	return nil
}

// Dump writes the values from head to tail, one per line.
func (l *List[V]) Dump(w io.Writer) error {
	for v := range l.All() {
		if _, err := fmt.Fprintf(w, "%v\n", v); err != nil {
			return err
		}
	}
	return nil
}

// String formats the values from head to tail.
func (l *List[V]) String() string {
	var b strings.Builder

	b.WriteByte('[')
	sep := ""
	for v := range l.All() {
		b.WriteString(sep)
		fmt.Fprint(&b, v)
		sep = " "
	}
	b.WriteByte(']')

	return b.String()
}
