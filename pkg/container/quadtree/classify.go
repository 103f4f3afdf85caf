package quadtree

// Classification marks a leaf as holding points or not. Internal nodes stay
// Unclassified.
type Classification uint8

const (
	Unclassified Classification = iota
	Occupied
	Empty
)

func (c Classification) String() string {
	switch c {
	case Occupied:
		return "occupied"
	case Empty:
		return "empty"
	default:
		return "unclassified"
	}
}

// Classify tags every leaf as Occupied or Empty.
func (t *Tree) Classify() {
	t.root.classify()
}

func (n *Node) classify() {
	if n.children != nil {
		for _, child := range n.children {
			child.classify()
		}
		return
	}
	if n.size() > 0 {
		n.class = Occupied
	} else {
		n.class = Empty
	}
}
