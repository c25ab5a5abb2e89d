package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if !q.Empty() || q.Size() != 0 {
		t.Fatal("new queue isn't empty")
	}
	_, e := q.Pop()
	var eq *EmptyQueueError
	if !errors.As(e, &eq) {
		t.Errorf("pop on empty queue gave %v", e)
	}
	if q.Peek() != 0 {
		t.Error("peek on empty queue isn't the zero value")
	}
}

func TestArrayQueue_PushPop(t *testing.T) {
	q := MakeArrayQueue[int](1)
	var content []int
	next := 0
	for _i := 0; _i < 20000; _i++ {
		if rg.Intn(3) == 0 {
			v, e := q.Pop()
			if len(content) == 0 {
				if e == nil {
					t.Fatal("popped from an empty queue")
				}
				continue
			}
			if e != nil || v != content[0] {
				t.Fatalf("popped %d %v, want %d", v, e, content[0])
			}
			content = content[1:]
		} else {
			q.Push(next)
			content = append(content, next)
			next++
		}
		if q.Size() != uint(len(content)) {
			t.Fatalf("queue size is %d, want %d", q.Size(), len(content))
		}
		if len(content) > 0 && q.Peek() != content[0] {
			t.Fatalf("peek is %d, want %d", q.Peek(), content[0])
		}
	}
	q.Shrink()
	for _, want := range content {
		if v, e := q.Pop(); e != nil || v != want {
			t.Fatalf("popped %d %v after shrink, want %d", v, e, want)
		}
	}
	if !q.Empty() {
		t.Error("queue should be drained")
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	q := MakeArrayQueue[string](4)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		q.Push(s)
	}
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Fatal("clear didn't empty the queue")
	}
	q.Push("f")
	if v, e := q.Pop(); e != nil || v != "f" {
		t.Errorf("popped %q %v after clear", v, e)
	}
}
