package strucdiff

import (
	"github.com/edittools/strucdiff/ir"
)

// Seq is a lazy sequence of diff records. Each Next call does only
// the work needed to surface one more record, so callers that stop
// after the first difference pay nothing for the rest of the trees.
// A Seq is single-use and not safe for concurrent use; run Diff again
// for a fresh one.
type Seq struct {
	stack []task
}

// task is one pending unit of work: either a record ready to emit, or
// a node pair still to compare.
type task struct {
	rec  *Record
	a, b *ir.Node
	path string
}

// Next returns the next record, or false when no differences remain.
func (s *Seq) Next() (*Record, bool) {
	for len(s.stack) > 0 {
		t := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if t.rec != nil {
			return t.rec, true
		}
		s.push(compareTasks(t.a, t.b, t.path))
	}
	return nil, false
}

// Records drains the sequence. An empty result means the inputs were
// equal.
func (s *Seq) Records() []*Record {
	var res []*Record
	for {
		r, ok := s.Next()
		if !ok {
			return res
		}
		res = append(res, r)
	}
}

// push schedules tasks so they pop in the given order.
func (s *Seq) push(tasks []task) {
	for i := len(tasks) - 1; i >= 0; i-- {
		s.stack = append(s.stack, tasks[i])
	}
}

func seqOf(tasks []task) *Seq {
	s := &Seq{}
	s.push(tasks)
	return s
}
