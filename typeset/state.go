package typeset

// state is the numbering and indentation state of a single algorithm.
// It is created for every call to Typeset and passed by pointer through
// the traversal of the construct tree.
type state struct {
	lineNumber  int   // number of the next numbered row, starting at 1
	indentation int   // current indentation level, starting at 0
	depth       int   // current recursion depth
	rows        []Row // rows emitted so far
}

func newState() *state {
	return &state{lineNumber: 1}
}

// emit appends a numbered row at the current indentation level and
// advances the line number.
func (st *state) emit(content string) {
	st.rows = append(st.rows, Row{
		Number:      st.lineNumber,
		Indentation: st.indentation,
		Content:     content,
	})
	tracer().Debugf("row %3d, level %d", st.lineNumber, st.indentation)
	st.lineNumber++
}

// emitLabel appends an unnumbered label row at the current indentation level.
func (st *state) emitLabel(content string) {
	st.rows = append(st.rows, Row{
		Indentation: st.indentation,
		Label:       true,
		Content:     content,
	})
}
