package strucdiff

import "strings"

// TextDiff compares two documents byte-exactly, reporting line pairs
// that differ at the same position and lines past the end of the
// shorter document. There is no alignment search: an inserted line
// shows up as every following pair differing, which is the honest
// answer for position-sensitive text.
func TextDiff(a, b string) *Seq {
	if a == b {
		return &Seq{}
	}
	la := strings.Split(a, "\n")
	lb := strings.Split(b, "\n")
	var tasks []task
	n := min(len(la), len(lb))
	for i := 0; i < n; i++ {
		if la[i] != lb[i] {
			tasks = append(tasks, task{rec: &Record{
				Kind:  LineDiff,
				Left:  la[i],
				Right: lb[i],
				Index: i,
			}})
		}
	}
	for i := n; i < len(la); i++ {
		tasks = append(tasks, task{rec: extraLineRec(i, SideA, la[i])})
	}
	for i := n; i < len(lb); i++ {
		tasks = append(tasks, task{rec: extraLineRec(i, SideB, lb[i])})
	}
	return seqOf(tasks)
}

func extraLineRec(i int, side Side, line string) *Record {
	rec := &Record{Kind: ExtraLine, Side: side, Index: i}
	if side == SideB {
		rec.Right = line
	} else {
		rec.Left = line
	}
	return rec
}
