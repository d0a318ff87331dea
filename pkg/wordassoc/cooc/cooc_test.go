package cooc

import "testing"

func TestCounterWindowTruncation(t *testing.T) {
	counter := NewCounter(5)
	counter.AddLine([]string{"a", "b", "c"})
	table := counter.Table()

	if got := table.Count("b", "a"); got != 1 {
		t.Errorf("count(b,a) = %d, want 1", got)
	}
	if got := table.Count("b", "c"); got != 1 {
		t.Errorf("count(b,c) = %d, want 1", got)
	}
	// A 3-token line with a wide window yields every ordered pair once.
	if table.Total() != 6 {
		t.Errorf("total = %d, want 6", table.Total())
	}
}

func TestCounterNoCrossLinePairs(t *testing.T) {
	counter := NewCounter(5)
	counter.AddLine([]string{"a", "b"})
	counter.AddLine([]string{"c", "d"})
	table := counter.Table()

	if got := table.Count("b", "c"); got != 0 {
		t.Errorf("count(b,c) across lines = %d, want 0", got)
	}
	if got := table.Count("a", "d"); got != 0 {
		t.Errorf("count(a,d) across lines = %d, want 0", got)
	}
}

func TestCounterDuplicateContexts(t *testing.T) {
	// Line [x,x,y] with window 2: both occurrences of x contribute, and
	// y sees x twice in one window.
	counter := NewCounter(2)
	counter.AddLine([]string{"x", "x", "y"})
	table := counter.Table()

	if got := table.Count("x", "y"); got != 2 {
		t.Errorf("count(x,y) = %d, want 2", got)
	}
	if got := table.Count("y", "x"); got != 2 {
		t.Errorf("count(y,x) = %d, want 2", got)
	}
	if got := table.Count("x", "x"); got != 2 {
		t.Errorf("count(x,x) = %d, want 2", got)
	}
	if table.Total() != 6 {
		t.Errorf("total = %d, want 6", table.Total())
	}
}

func TestCounterNarrowWindow(t *testing.T) {
	counter := NewCounter(1)
	counter.AddLine([]string{"a", "b", "c", "d"})
	table := counter.Table()

	if got := table.Count("a", "c"); got != 0 {
		t.Errorf("count(a,c) outside radius 1 = %d, want 0", got)
	}
	if got := table.Count("b", "c"); got != 1 {
		t.Errorf("count(b,c) = %d, want 1", got)
	}
}

func TestCounterZeroWindow(t *testing.T) {
	counter := NewCounter(0)
	counter.AddLine([]string{"a", "b", "c"})
	table := counter.Table()

	if table.Size() != 0 {
		t.Errorf("zero window produced %d pairs, want 0", table.Size())
	}
	if table.Total() != 0 {
		t.Errorf("zero window total = %d, want 0", table.Total())
	}
}

func TestCounterNegativeWindowDefaults(t *testing.T) {
	counter := NewCounter(-3)
	if counter.Window() != DefaultWindow {
		t.Errorf("window = %d, want default %d", counter.Window(), DefaultWindow)
	}
}

func TestCounterSymmetricMass(t *testing.T) {
	counter := NewCounter(3)
	counter.AddLine([]string{"the", "sea", "is", "calm", "the", "sea"})
	table := counter.Table()

	// Every window co-occurrence is recorded under both orderings.
	table.Each(func(p Pair, count int64) {
		mirror := table.Count(p.Context, p.Target)
		if mirror != count {
			t.Errorf("count(%s,%s) = %d but count(%s,%s) = %d",
				p.Target, p.Context, count, p.Context, p.Target, mirror)
		}
	})
}

func TestTableSnapshotIsolation(t *testing.T) {
	counter := NewCounter(5)
	counter.AddLine([]string{"a", "b"})
	table := counter.Table()

	counter.AddLine([]string{"a", "b"})

	if got := table.Count("a", "b"); got != 1 {
		t.Errorf("snapshot count(a,b) = %d after further accumulation, want 1", got)
	}
}

func TestTableUnseenPairDefaultsZero(t *testing.T) {
	table := NewCounter(5).Table()
	if got := table.Count("zzz", "yyy"); got != 0 {
		t.Errorf("count on empty table = %d, want 0", got)
	}
}

func TestMarginalConsistency(t *testing.T) {
	counter := NewCounter(2)
	counter.AddLine([]string{"the", "sea", "is", "calm", "the", "sea", "is", "blue"})
	counter.AddLine([]string{"the", "sky", "is", "calm"})
	table := counter.Table()
	m := NewMarginals(table)

	var pairSum, targetSum, contextSum int64
	table.Each(func(p Pair, count int64) {
		pairSum += count
	})
	for _, count := range m.target {
		targetSum += count
	}
	for _, count := range m.context {
		contextSum += count
	}

	if pairSum != table.Total() {
		t.Errorf("sum of pairs = %d, table total = %d", pairSum, table.Total())
	}
	if targetSum != m.Total() {
		t.Errorf("sum of target marginals = %d, grand total = %d", targetSum, m.Total())
	}
	if contextSum != m.Total() {
		t.Errorf("sum of context marginals = %d, grand total = %d", contextSum, m.Total())
	}
	if m.Total() != table.Total() {
		t.Errorf("marginals total = %d, table total = %d", m.Total(), table.Total())
	}
}

func TestMarginalsKnownValues(t *testing.T) {
	// Line [a,a,b] with window 1:
	//   (a,a)=2, (a,b)=1, (b,a)=1, total 4.
	counter := NewCounter(1)
	counter.AddLine([]string{"a", "a", "b"})
	m := NewMarginals(counter.Table())

	if got := m.Target("a"); got != 3 {
		t.Errorf("target(a) = %d, want 3", got)
	}
	if got := m.Target("b"); got != 1 {
		t.Errorf("target(b) = %d, want 1", got)
	}
	if got := m.Context("a"); got != 3 {
		t.Errorf("context(a) = %d, want 3", got)
	}
	if got := m.Context("b"); got != 1 {
		t.Errorf("context(b) = %d, want 1", got)
	}
	if m.Total() != 4 {
		t.Errorf("total = %d, want 4", m.Total())
	}
	if m.Vocabulary() != 2 {
		t.Errorf("vocabulary = %d, want 2", m.Vocabulary())
	}
}

func TestMarginalsUnseenWordDefaultsZero(t *testing.T) {
	counter := NewCounter(5)
	counter.AddLine([]string{"a", "b"})
	m := NewMarginals(counter.Table())

	if got := m.Target("zzz"); got != 0 {
		t.Errorf("target(zzz) = %d, want 0", got)
	}
	if got := m.Context("zzz"); got != 0 {
		t.Errorf("context(zzz) = %d, want 0", got)
	}
}
