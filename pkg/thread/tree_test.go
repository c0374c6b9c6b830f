package thread

import "testing"

func reply(num, parent *int) *Reply {
	return &Reply{MessageNum: num, MessageParent: parent}
}

func TestBuildTree(t *testing.T) {
	root := reply(intp(0), intp(-1))
	child := reply(intp(1), intp(0))
	grandchild := reply(intp(2), intp(1))
	sibling := reply(intp(3), intp(0))

	roots := BuildTree([]*Reply{root, child, grandchild, sibling})
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	n := roots[0]
	if n.Reply != root {
		t.Fatal("wrong root")
	}
	if len(n.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(n.Children))
	}
	if n.Children[0].Reply != child || n.Children[1].Reply != sibling {
		t.Error("sibling order not preserved")
	}
	if len(n.Children[0].Children) != 1 || n.Children[0].Children[0].Reply != grandchild {
		t.Error("grandchild not attached under child")
	}
}

func TestBuildTreeOrphansBecomeRoots(t *testing.T) {
	root := reply(intp(0), intp(-1))
	orphan := reply(intp(5), intp(99)) // Parent never seen
	unnumbered := reply(nil, nil)      // No parent reference at all

	roots := BuildTree([]*Reply{root, orphan, unnumbered})
	if len(roots) != 3 {
		t.Fatalf("got %d roots, want 3", len(roots))
	}
}

// TestBuildTreeForwardReference: a parent sequence number that only appears
// later in page order cannot adopt earlier replies.
func TestBuildTreeForwardReference(t *testing.T) {
	early := reply(intp(1), intp(2))
	late := reply(intp(2), intp(-1))

	roots := BuildTree([]*Reply{early, late})
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if len(roots[1].Children) != 0 {
		t.Error("late reply must not adopt an earlier one")
	}
}

func TestWalkDepths(t *testing.T) {
	root := reply(intp(0), intp(-1))
	child := reply(intp(1), intp(0))
	grandchild := reply(intp(2), intp(1))

	var depths []int
	Walk(BuildTree([]*Reply{root, child, grandchild}), func(_ *Node, depth int) {
		depths = append(depths, depth)
	})
	want := []int{0, 1, 2}
	if len(depths) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(depths), len(want))
	}
	for i := range want {
		if depths[i] != want[i] {
			t.Errorf("depth[%d] = %d, want %d", i, depths[i], want[i])
		}
	}
}
