package ring

import (
	"math/rand"
	"testing"
)

func checkOrder(t *testing.T, r *Ring[int], want []int) {
	t.Helper()
	if r.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(want))
	}
	for i, w := range want {
		if got := r.At(i); got != w {
			t.Fatalf("At(%d) = %d, want %d (full: %v)", i, got, w, r.Snapshot())
		}
	}
}

func TestPushPopBothEnds(t *testing.T) {
	var r Ring[int]
	r.PushBack(2)
	r.PushBack(3)
	r.PushFront(1)
	r.PushBack(4)
	checkOrder(t, &r, []int{1, 2, 3, 4})

	if v, ok := r.PopFront(); !ok || v != 1 {
		t.Fatalf("PopFront() = (%d, %v), want (1, true)", v, ok)
	}
	if v, ok := r.PopBack(); !ok || v != 4 {
		t.Fatalf("PopBack() = (%d, %v), want (4, true)", v, ok)
	}
	checkOrder(t, &r, []int{2, 3})
}

func TestPopEmpty(t *testing.T) {
	var r Ring[int]
	if _, ok := r.PopFront(); ok {
		t.Fatal("PopFront on empty ring reported ok")
	}
	if _, ok := r.PopBack(); ok {
		t.Fatal("PopBack on empty ring reported ok")
	}
}

func TestWrapAround(t *testing.T) {
	// Force the offset to travel around the buffer a few times.
	var r Ring[int]
	next := 0
	for i := 0; i < 4; i++ {
		r.PushBack(next)
		next++
	}
	for i := 0; i < 100; i++ {
		r.PushBack(next)
		next++
		if v, ok := r.PopFront(); !ok || v != next-4-1 {
			t.Fatalf("iteration %d: PopFront() = (%d, %v)", i, v, ok)
		}
	}
	checkOrder(t, &r, []int{next - 4, next - 3, next - 2, next - 1})
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name  string
		start []int
		idx   int
		want  []int
	}{
		{"front", []int{1, 2, 3}, 0, []int{99, 1, 2, 3}},
		{"back", []int{1, 2, 3}, 3, []int{1, 2, 3, 99}},
		{"lowerHalf", []int{1, 2, 3, 4, 5}, 1, []int{1, 99, 2, 3, 4, 5}},
		{"upperHalf", []int{1, 2, 3, 4, 5}, 4, []int{1, 2, 3, 4, 99, 5}},
		{"middle", []int{1, 2}, 1, []int{1, 99, 2}},
		{"empty", nil, 0, []int{99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Ring[int]
			for _, v := range tt.start {
				r.PushBack(v)
			}
			r.Insert(tt.idx, 99)
			checkOrder(t, &r, tt.want)
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name  string
		start []int
		idx   int
		want  []int
	}{
		{"front", []int{1, 2, 3}, 0, []int{2, 3}},
		{"back", []int{1, 2, 3}, 2, []int{1, 2}},
		{"lowerHalf", []int{1, 2, 3, 4, 5}, 1, []int{1, 3, 4, 5}},
		{"upperHalf", []int{1, 2, 3, 4, 5}, 3, []int{1, 2, 3, 5}},
		{"single", []int{7}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Ring[int]
			for _, v := range tt.start {
				r.PushBack(v)
			}
			got := r.Delete(tt.idx)
			if got != tt.start[tt.idx] {
				t.Fatalf("Delete(%d) = %d, want %d", tt.idx, got, tt.start[tt.idx])
			}
			checkOrder(t, &r, tt.want)
		})
	}
}

func TestReverse(t *testing.T) {
	var r Ring[int]
	for _, n := range []int{0, 1, 2, 5, 8} {
		r.Clear()
		want := make([]int, n)
		for i := 0; i < n; i++ {
			r.PushBack(i)
			want[n-1-i] = i
		}
		r.Reverse()
		checkOrder(t, &r, want)
	}
}

func TestClearKeepsWorking(t *testing.T) {
	var r Ring[int]
	for i := 0; i < 10; i++ {
		r.PushBack(i)
	}
	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("Len() after Clear = %d", r.Len())
	}
	r.PushFront(5)
	r.PushBack(6)
	checkOrder(t, &r, []int{5, 6})
}

func TestCloneIsIndependent(t *testing.T) {
	var r Ring[int]
	for i := 0; i < 5; i++ {
		r.PushBack(i)
	}
	c := r.Clone()
	c.PushBack(99)
	c.Set(0, -1)
	checkOrder(t, &r, []int{0, 1, 2, 3, 4})
	checkOrder(t, &c, []int{-1, 1, 2, 3, 4, 99})
}

// TestRandomAgainstSlice cross-checks the ring against a plain slice over a
// random operation sequence.
func TestRandomAgainstSlice(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var r Ring[int]
	var model []int
	for i := 0; i < 20000; i++ {
		v := rng.Intn(1000)
		switch op := rng.Intn(8); op {
		case 0, 1:
			r.PushBack(v)
			model = append(model, v)
		case 2, 3:
			r.PushFront(v)
			model = append([]int{v}, model...)
		case 4:
			got, ok := r.PopBack()
			if ok != (len(model) > 0) {
				t.Fatalf("op %d: PopBack ok = %v with model len %d", i, ok, len(model))
			}
			if ok {
				want := model[len(model)-1]
				model = model[:len(model)-1]
				if got != want {
					t.Fatalf("op %d: PopBack = %d, want %d", i, got, want)
				}
			}
		case 5:
			got, ok := r.PopFront()
			if ok != (len(model) > 0) {
				t.Fatalf("op %d: PopFront ok = %v with model len %d", i, ok, len(model))
			}
			if ok {
				want := model[0]
				model = model[1:]
				if got != want {
					t.Fatalf("op %d: PopFront = %d, want %d", i, got, want)
				}
			}
		case 6:
			idx := rng.Intn(len(model) + 1)
			r.Insert(idx, v)
			model = append(model[:idx], append([]int{v}, model[idx:]...)...)
		case 7:
			if len(model) == 0 {
				continue
			}
			idx := rng.Intn(len(model))
			got := r.Delete(idx)
			want := model[idx]
			model = append(model[:idx], model[idx+1:]...)
			if got != want {
				t.Fatalf("op %d: Delete(%d) = %d, want %d", i, idx, got, want)
			}
		}
		if r.Len() != len(model) {
			t.Fatalf("op %d: Len() = %d, model %d", i, r.Len(), len(model))
		}
	}
	checkOrder(t, &r, model)
}
