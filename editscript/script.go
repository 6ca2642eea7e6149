package editscript

// frontier is the furthest point reached on one diagonal.
type frontier struct {
	i      int // consumed elements of from
	script *list
}

// ShortestEditScript returns a minimal script of inserts and deletes that
// turns from into to. The search stops after limit edits; a negative limit
// means no bound. It reports false when no script fits within the limit.
//
// Diagonal k is the number of consumed elements of to minus those of from.
// When both neighbours can reach k, the one further along from wins and
// ties go to the insert.
func ShortestEditScript(from, to []string, limit int) ([]Command, bool) {
	n, m := len(from), len(to)
	maxD := n + m
	if limit >= 0 {
		maxD = min(limit, n+m)
	}

	offset := min(maxD, n)
	mem := make([]frontier, offset+min(maxD, m)+1)

	for d := 0; d <= maxD; d++ {
		minK := -d
		if d > n {
			minK = d - 2*n
		}
		maxK := d
		if d > m {
			maxK = 2*m - d
		}
		for k := minK; k <= maxK; k += 2 {
			var cur frontier
			switch {
			case d == 0:
				cur = frontier{}
			case k == -d:
				cur = deleteFrom(mem[offset+k+1], k)
			case k == d:
				cur = insertFrom(mem[offset+k-1], k, to)
			default:
				del, ins := mem[offset+k+1], mem[offset+k-1]
				if del.i+1 > ins.i {
					cur = deleteFrom(del, k)
				} else {
					cur = insertFrom(ins, k, to)
				}
			}

			for cur.i < n && cur.i+k < m && from[cur.i] == to[cur.i+k] {
				cur.i++
			}
			if k == m-n && cur.i == n {
				return cur.script.reversed(), true
			}
			mem[offset+k] = cur
		}
	}
	return nil, false
}

// deleteFrom extends prev on diagonal k+1 by deleting from[prev.i].
func deleteFrom(prev frontier, k int) frontier {
	i := prev.i + 1
	return frontier{i: i, script: prev.script.cons(Delete(i + k))}
}

// insertFrom extends prev on diagonal k-1 by inserting to[prev.i+k-1].
func insertFrom(prev frontier, k int, to []string) frontier {
	row := prev.i + k - 1
	return frontier{i: prev.i, script: prev.script.cons(Insert(row, to[row]))}
}
