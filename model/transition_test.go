package model

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func TestAdvancePreservesDimensions(t *testing.T) {
	shapes := []struct{ rows, cols int }{
		{1, 1}, {1, 7}, {7, 1}, {2, 2}, {3, 5}, {16, 9}, {30, 30},
	}

	for _, s := range shapes {
		b, err := Initialize(s.rows, s.cols, NewSeededSource(int64(s.rows*100+s.cols)))
		if err != nil {
			t.Fatalf("initialize %dx%d: %v", s.rows, s.cols, err)
		}
		next := Advance(b)
		if next.Rows() != s.rows || next.Cols() != s.cols {
			t.Errorf("%dx%d: advanced board is %dx%d", s.rows, s.cols, next.Rows(), next.Cols())
		}
	}
}

func TestAdvanceIsDeterministicAndPure(t *testing.T) {
	g := NewWithT(t)
	b, _ := Initialize(24, 24, NewSeededSource(7))
	before := b.Clone()

	first := Advance(b)
	second := Advance(b)

	g.Expect(first.Equal(second)).To(BeTrue())
	g.Expect(b.Equal(before)).To(BeTrue(), "input board must not be modified")
	g.Expect(first).NotTo(BeIdenticalTo(b))
}

func TestAdvanceStillLife(t *testing.T) {
	g := NewWithT(t)
	b, _ := NewBoard(4, 4)
	b.Place(Block, 1, 1)

	g.Expect(Advance(b).Equal(b)).To(BeTrue())
}

func TestAdvanceBirth(t *testing.T) {
	g := NewWithT(t)
	b := MustFromRows([][]bool{
		{true, true, false},
		{true, false, false},
		{false, false, false},
	})
	g.Expect(b.LiveNeighbors(1, 1)).To(Equal(3))

	next := Advance(b)
	g.Expect(next.Alive(1, 1)).To(BeTrue())
}

func TestAdvanceUnderpopulation(t *testing.T) {
	g := NewWithT(t)

	lonely, _ := NewBoard(5, 5)
	lonely.Set(2, 2, true)
	g.Expect(Advance(lonely).Alive(2, 2)).To(BeFalse(), "cell with 0 neighbors should die")

	pair, _ := NewBoard(5, 5)
	pair.Set(2, 2, true)
	pair.Set(2, 3, true)
	next := Advance(pair)
	g.Expect(next.Alive(2, 2)).To(BeFalse(), "cell with 1 neighbor should die")
	g.Expect(next.Alive(2, 3)).To(BeFalse(), "cell with 1 neighbor should die")
}

func TestAdvanceOverpopulation(t *testing.T) {
	g := NewWithT(t)
	b := MustFromRows([][]bool{
		{false, false, false, false, false},
		{false, true, false, true, false},
		{false, false, true, false, false},
		{false, true, false, true, false},
		{false, false, false, false, false},
	})
	g.Expect(b.LiveNeighbors(2, 2)).To(Equal(4))
	g.Expect(Advance(b).Alive(2, 2)).To(BeFalse())
}

func TestAdvanceBlinkerOscillates(t *testing.T) {
	g := NewWithT(t)
	b, _ := NewBoard(5, 5)
	b.Place(Blinker, 2, 1)

	vertical, _ := NewBoard(5, 5)
	vertical.Set(1, 2, true)
	vertical.Set(2, 2, true)
	vertical.Set(3, 2, true)

	once := Advance(b)
	g.Expect(once.Equal(vertical)).To(BeTrue())
	g.Expect(Advance(once).Equal(b)).To(BeTrue())
}

func TestAdvanceGliderWrapsAroundTorus(t *testing.T) {
	g := NewWithT(t)
	start, _ := NewBoard(8, 8)
	start.Place(Glider, 0, 0)

	b := start
	// A glider travels one cell diagonally every 4 generations
	for i := 0; i < 4*8; i++ {
		b = Advance(b)
		g.Expect(b.CountLivingCells()).To(Equal(5))
	}
	g.Expect(b.Equal(start)).To(BeTrue())

	shifted, _ := NewBoard(8, 8)
	shifted.Place(Glider, 7, 7)
	b = shifted
	for i := 0; i < 4; i++ {
		b = Advance(b)
	}
	expected, _ := NewBoard(8, 8)
	expected.Place(Glider, 0, 0)
	g.Expect(b.Equal(expected)).To(BeTrue(), "glider should cross both edges")
}

func TestAdvanceDegenerateBoards(t *testing.T) {
	g := NewWithT(t)

	single := MustFromRows([][]bool{{true}})
	// A lone cell sees itself 8 times and dies of overpopulation
	g.Expect(Advance(single).Alive(0, 0)).To(BeFalse())

	dead := MustFromRows([][]bool{{false}})
	g.Expect(Advance(dead).Alive(0, 0)).To(BeFalse())

	row := MustFromRows([][]bool{{false, true, false, false}})
	next := Advance(row)
	g.Expect(next.Rows()).To(Equal(1))
	g.Expect(next.Cols()).To(Equal(4))
	// Neighbors of (0, 0) and (0, 2) see the live cell three times, so both are born;
	// the live cell sees itself twice and survives
	g.Expect(next.Snapshot()).To(Equal([][]bool{{true, true, true, false}}))
}

func TestAdvanceIntoMatchesAcrossWorkerCounts(t *testing.T) {
	g := NewWithT(t)
	src, _ := Initialize(37, 23, NewSeededSource(42))
	want := Advance(src)

	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		dst, _ := NewBoard(37, 23)
		g.Expect(AdvanceInto(dst, src, workers)).To(Succeed())
		g.Expect(dst.Equal(want)).To(BeTrue(), "workers=%d", workers)
	}
}

func TestAdvanceIntoOverwritesStaleCells(t *testing.T) {
	g := NewWithT(t)
	src, _ := NewBoard(4, 4)
	dst := MustFromRows([][]bool{
		{true, true, true, true},
		{true, true, true, true},
		{true, true, true, true},
		{true, true, true, true},
	})

	g.Expect(AdvanceInto(dst, src, 2)).To(Succeed())
	g.Expect(dst.CountLivingCells()).To(BeZero())
}

func TestAdvanceIntoErrors(t *testing.T) {
	src, _ := NewBoard(3, 3)

	if err := AdvanceInto(src, src, 1); !errors.Is(err, ErrAliasedBoards) {
		t.Errorf("expected ErrAliasedBoards, got %v", err)
	}

	other, _ := NewBoard(3, 4)
	if err := AdvanceInto(other, src, 1); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func BenchmarkAdvance(b *testing.B) {
	board, _ := Initialize(300, 300, NewSeededSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board = Advance(board)
	}
}

func BenchmarkDoubleBufferStep(b *testing.B) {
	board, _ := Initialize(300, 300, NewSeededSource(1))
	buf := NewDoubleBuffer(board, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Step()
	}
}
