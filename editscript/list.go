package editscript

// list is an immutable cons list. The nil *list is the empty list, so
// prepending never copies and tails are shared between search branches.
type list struct {
	head Command
	tail *list
	n    int
}

func (l *list) cons(c Command) *list {
	return &list{head: c, tail: l, n: l.len() + 1}
}

func (l *list) len() int {
	if l == nil {
		return 0
	}
	return l.n
}

// reversed materializes the list oldest-first.
func (l *list) reversed() []Command {
	out := make([]Command, l.len())
	i := len(out) - 1
	for ; l != nil; l = l.tail {
		out[i] = l.head
		i--
	}
	return out
}
