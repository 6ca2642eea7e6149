package editscript

import "fmt"

type Op uint8

const (
	OpInsert Op = iota
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Command is one step of an edit script. Line is only used by inserts.
type Command struct {
	Op   Op
	Row  int
	Line string
}

func Insert(row int, line string) Command {
	return Command{Op: OpInsert, Row: row, Line: line}
}

func Delete(row int) Command {
	return Command{Op: OpDelete, Row: row}
}

func (c Command) String() string {
	if c.Op == OpInsert {
		return fmt.Sprintf("insert(%d, %q)", c.Row, c.Line)
	}
	return fmt.Sprintf("%s(%d)", c.Op, c.Row)
}
