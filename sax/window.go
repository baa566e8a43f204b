package sax

import (
	"fmt"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/internal/ring"
	"github.com/arloliu/symts/internal/stats"
)

// Window is a sliding window of the last n samples that keeps its word of
// w symbols up to date on every append.
//
// Statistics are maintained incrementally over the finite resident samples,
// so an append costs O(n) for the frame averages and O(1) for mean and
// variance. Until n samples have arrived the window is treated as left-padded
// with empty positions, which is exactly what the first n appends evict.
//
// A Window is not safe for concurrent use; callers that share one must
// serialize access themselves. The word is only handed out as a copy, so
// nothing a caller holds changes when the window moves on.
type Window struct {
	values  *ring.Buffer
	stats   stats.Online
	current Word
	scratch []float64
	eps     float64
}

// NewWindow creates an empty window of n samples encoding to w symbols of
// cardinality c. n must be a positive multiple of w.
//
// The window keeps running statistics over its finite samples and updates
// them in constant time per appended value. Until n samples have been
// appended the window is not ready and its word is all sentinels.
//
// Parameters:
//   - n: Number of resident samples, a positive multiple of w
//   - w: Word length in symbols
//   - c: Alphabet cardinality in [2, 16]
//   - opts: Engine options, e.g. WithStdEpsilon
//
// Returns:
//   - *Window: Empty window ready to accept samples
//   - error: errs.ErrInvalidWindowSize, errs.ErrInvalidWordLength,
//     errs.ErrInvalidCardinality or errs.ErrInvalidOption
//
// Example:
//
//	win, _ := sax.NewWindow(8, 2, 4)
//	win.AppendSlice([]float64{0, 1, 2, 3, 4, 5, 6, 7})
//	fmt.Println(win.Word()) // AD
func NewWindow(n, w, c int, opts ...Option) (*Window, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: window size %d must be positive", errs.ErrInvalidWindowSize, n)
	}
	if err := validateShape(n, w, c); err != nil {
		return nil, err
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	win := &Window{
		values:  ring.New(n),
		current: Word{n: n, c: c, symbols: make([]Symbol, w)},
		scratch: make([]float64, 0, n),
		eps:     cfg.stdEpsilon,
	}
	win.clearSymbols()

	return win, nil
}

// N returns the window size.
func (win *Window) N() int { return win.current.n }

// W returns the word length.
func (win *Window) W() int { return len(win.current.symbols) }

// C returns the cardinality.
func (win *Window) C() int { return win.current.c }

// Len returns the number of resident samples.
func (win *Window) Len() int { return win.values.Len() }

// Filled reports whether n samples have been appended since creation or the
// last Reset.
func (win *Window) Filled() bool { return win.values.Full() }

// Mean returns the mean of the finite resident samples.
func (win *Window) Mean() float64 { return win.stats.Mean() }

// Std returns the population standard deviation of the finite resident samples.
func (win *Window) Std() float64 { return win.stats.Std() }

// FiniteCount returns the number of finite resident samples.
func (win *Window) FiniteCount() int { return win.stats.Count() }

// Append pushes value into the window, evicting the oldest sample once the
// window is full, and recomputes the word.
//
// NaN and infinite values occupy a slot but are left out of the statistics
// and frame averages. Statistics that overflow are rebuilt from the resident
// samples.
func (win *Window) Append(value float64) {
	win.push(value)
	win.refresh()
}

// AppendSlice behaves like calling Append for every value but recomputes the
// word only once. Values that would be evicted before the end are skipped.
func (win *Window) AppendSlice(values []float64) {
	if len(values) == 0 {
		return
	}
	if n := win.N(); len(values) > n {
		values = values[len(values)-n:]
	}
	for _, v := range values {
		win.push(v)
	}
	win.refresh()
}

// Reset empties the window and sets every symbol back to the sentinel.
func (win *Window) Reset() {
	win.values.Reset()
	win.stats.Reset()
	win.clearSymbols()
}

// IsReady reports whether every frame of the current word is resolved, that
// is no symbol is the sentinel.
func (win *Window) IsReady() bool {
	return win.current.IsResolved()
}

// Word returns a copy of the current word, sentinels included.
func (win *Window) Word() Word {
	return win.current.Clone()
}

// ResolveWord returns a copy of the current word, or errs.ErrWindowNotReady
// when some frame is still unresolved.
func (win *Window) ResolveWord() (Word, error) {
	if !win.IsReady() {
		return Word{}, fmt.Errorf("%w: %s", errs.ErrWindowNotReady, win.current)
	}

	return win.current.Clone(), nil
}

// Values returns the resident samples, oldest first.
func (win *Window) Values() []float64 {
	return win.values.AppendTo(make([]float64, 0, win.values.Len()))
}

// String returns the symbolic string of the current word.
func (win *Window) String() string {
	return win.current.String()
}

func (win *Window) push(value float64) {
	evicted := win.values.Push(value)
	win.stats.Update(value, evicted)
	if !win.stats.Finite() {
		// overflowed by a huge sample; recompute from what is resident
		win.scratch = win.values.AppendTo(win.scratch[:0])
		win.stats.Rebuild(win.scratch)
	}
}

func (win *Window) refresh() {
	win.scratch = win.values.AppendTo(win.scratch[:0])
	n := win.N()
	encodeFrames(win.current.symbols, win.scratch, n-len(win.scratch), n/win.W(),
		win.stats.Mean(), win.stats.Std(), win.eps, win.current.c)
}

func (win *Window) clearSymbols() {
	sentinel := Sentinel(win.current.c)
	for i := range win.current.symbols {
		win.current.symbols[i] = sentinel
	}
}
