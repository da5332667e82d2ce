// Package circularlist implements a circular singly linked list of ints
// anchored by a sentinel node.
//
// Nodes live in an arena and link to their successor by slot index. Slot 0
// is the sentinel: its successor is the entry point of the ring, or itself
// when the list is empty. The ring itself only contains value nodes, so the
// last node's successor is the entry point and never the sentinel.
//
// A List is not safe for concurrent use.
package circularlist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrRejected is the root of every ordinary operation failure. A
	// rejected operation never mutates the list.
	ErrRejected = errors.New("operation rejected")

	ErrEmpty      = fmt.Errorf("%w: list is empty", ErrRejected)
	ErrOutOfRange = fmt.Errorf("%w: position out of range", ErrRejected)
	ErrNotFound   = fmt.Errorf("%w: value not found", ErrRejected)
	ErrDestroyed  = fmt.Errorf("%w: list destroyed", ErrRejected)

	// ErrAllocation is returned when a node cannot be allocated. It does not
	// match ErrRejected.
	ErrAllocation = errors.New("node allocation failed")
)

const (
	sentinel = 0
	// unlinked marks a slot that is not part of the ring
	unlinked = -1
)

type node struct {
	value int
	next  int
}

// List is a circular singly linked list with a sentinel head. The zero value
// is an empty list ready to use.
type List struct {
	nodes     []node
	free      []int
	maxNodes  int
	gen       uint64
	destroyed bool
}

type Option func(*List)

// WithMaxNodes caps the number of value nodes the list may hold at once.
// Inserting past the cap fails with ErrAllocation. n <= 0 means no cap.
func WithMaxNodes(n int) Option {
	return func(l *List) {
		l.maxNodes = n
	}
}

func New(opts ...Option) *List {
	l := &List{}
	l.lazyInit()
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *List) lazyInit() {
	if l.nodes == nil {
		l.nodes = []node{{next: sentinel}}
	}
}

// ready returns ErrDestroyed once the list has been destroyed and makes sure
// the sentinel exists otherwise.
func (l *List) ready() error {
	if l.destroyed {
		return ErrDestroyed
	}
	l.lazyInit()
	return nil
}

func (l *List) entry() int {
	return l.nodes[sentinel].next
}

func (l *List) empty() bool {
	return l.nodes == nil || l.nodes[sentinel].next == sentinel
}

// last returns the slot whose successor is the entry point, or the sentinel
// for an empty list.
func (l *List) last() int {
	if l.empty() {
		return sentinel
	}
	i := l.entry()
	for l.nodes[i].next != l.entry() {
		i = l.nodes[i].next
	}
	return i
}

// predecessorAt returns the slot preceding the pos-th node (1-based). The
// predecessor of the first node is the last node.
func (l *List) predecessorAt(pos int) int {
	prev := l.last()
	for i := 1; i < pos; i++ {
		prev = l.nodes[prev].next
	}
	return prev
}

// predecessorOf returns the slot preceding the first node holding v, in ring
// order from the entry point.
func (l *List) predecessorOf(v int) (int, bool) {
	if l.empty() {
		return sentinel, false
	}

	start := l.entry()
	prev := l.last()
	for i := start; ; {
		if l.nodes[i].value == v {
			return prev, true
		}
		prev, i = i, l.nodes[i].next
		if i == start {
			return sentinel, false
		}
	}
}

func (l *List) live() int {
	if l.nodes == nil {
		return 0
	}
	return len(l.nodes) - 1 - len(l.free)
}

func (l *List) alloc(v int) (int, error) {
	if l.maxNodes > 0 && l.live() >= l.maxNodes {
		return 0, fmt.Errorf("%w: limit of %d nodes reached", ErrAllocation, l.maxNodes)
	}

	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[i] = node{value: v, next: unlinked}
		return i, nil
	}

	l.nodes = append(l.nodes, node{value: v, next: unlinked})
	return len(l.nodes) - 1, nil
}

func (l *List) release(i int) {
	l.nodes[i] = node{next: unlinked}
	l.free = append(l.free, i)
}

// link allocates a node holding v and splices it in after prev. With entry
// set the new node also becomes the entry point. On an empty list prev is
// ignored and the new node closes the ring on itself.
func (l *List) link(prev, v int, entry bool) error {
	n, err := l.alloc(v)
	if err != nil {
		return err
	}

	if l.empty() {
		l.nodes[n].next = n
		l.nodes[sentinel].next = n
	} else {
		l.nodes[n].next = l.nodes[prev].next
		l.nodes[prev].next = n
		if entry {
			l.nodes[sentinel].next = n
		}
	}

	l.gen++
	return nil
}

// unlink removes the successor of prev from the ring and frees its slot. If
// that successor was the entry point, the entry point moves to the node
// after it.
func (l *List) unlink(prev int) {
	n := l.nodes[prev].next

	if n == prev {
		// Only node in the ring
		l.nodes[sentinel].next = sentinel
	} else {
		l.nodes[prev].next = l.nodes[n].next
		if l.entry() == n {
			l.nodes[sentinel].next = l.nodes[n].next
		}
	}

	l.release(n)
	l.gen++
}

func (l *List) InsertHead(v int) error {
	if err := l.ready(); err != nil {
		return err
	}
	return l.link(l.last(), v, true)
}

func (l *List) InsertTail(v int) error {
	if err := l.ready(); err != nil {
		return err
	}
	return l.link(l.last(), v, false)
}

// InsertAt inserts v so that it becomes the pos-th node (1-based). Valid
// positions are 1 through Length()+1; the latter appends.
func (l *List) InsertAt(v, pos int) error {
	if err := l.ready(); err != nil {
		return err
	}

	n := l.Length()
	if pos < 1 || pos > n+1 {
		return fmt.Errorf("%w: cannot insert at %d, valid range is [1, %d]", ErrOutOfRange, pos, n+1)
	}

	return l.link(l.predecessorAt(pos), v, pos == 1)
}

// InsertBefore inserts v in front of the first node holding target. Inserting
// in front of the entry point makes v the new entry point.
func (l *List) InsertBefore(v, target int) error {
	if err := l.ready(); err != nil {
		return err
	}
	if l.empty() {
		return ErrEmpty
	}

	prev, ok := l.predecessorOf(target)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, target)
	}

	return l.link(prev, v, l.nodes[prev].next == l.entry())
}

// InsertAfter inserts v behind the first node holding target.
func (l *List) InsertAfter(v, target int) error {
	if err := l.ready(); err != nil {
		return err
	}
	if l.empty() {
		return ErrEmpty
	}

	prev, ok := l.predecessorOf(target)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, target)
	}

	return l.link(l.nodes[prev].next, v, false)
}

func (l *List) DeleteHead() error {
	if err := l.ready(); err != nil {
		return err
	}
	if l.empty() {
		return ErrEmpty
	}

	l.unlink(l.last())
	return nil
}

func (l *List) DeleteTail() error {
	if err := l.ready(); err != nil {
		return err
	}
	if l.empty() {
		return ErrEmpty
	}

	l.unlink(l.predecessorAt(l.Length()))
	return nil
}

// DeleteAt removes the pos-th node (1-based). Valid positions are 1 through
// Length().
func (l *List) DeleteAt(pos int) error {
	if err := l.ready(); err != nil {
		return err
	}
	if l.empty() {
		return ErrEmpty
	}

	n := l.Length()
	if pos < 1 || pos > n {
		return fmt.Errorf("%w: cannot delete at %d, valid range is [1, %d]", ErrOutOfRange, pos, n)
	}

	l.unlink(l.predecessorAt(pos))
	return nil
}

// DeleteValue removes the first node holding v.
func (l *List) DeleteValue(v int) error {
	if err := l.ready(); err != nil {
		return err
	}
	if l.empty() {
		return ErrEmpty
	}

	prev, ok := l.predecessorOf(v)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, v)
	}

	l.unlink(prev)
	return nil
}

// Each calls fn with every value in ring order, starting at the entry point.
// The walk stops when it gets back to the slot it started from.
func (l *List) Each(fn func(int)) {
	if l.destroyed || l.empty() {
		return
	}

	start := l.entry()
	for i := start; ; {
		fn(l.nodes[i].value)

		i = l.nodes[i].next
		if i == start {
			return
		}
	}
}

func (l *List) Length() int {
	var n int
	l.Each(func(int) { n++ })
	return n
}

// Traverse returns the values in ring order, starting at the entry point.
// The result is never nil.
func (l *List) Traverse() []int {
	values := make([]int, 0, l.live())
	l.Each(func(v int) {
		values = append(values, v)
	})
	return values
}

// String renders the list as "10 -> 20 -> (head)".
func (l *List) String() string {
	if l.empty() || l.destroyed {
		return "List is empty."
	}

	var b strings.Builder
	l.Each(func(v int) {
		b.WriteString(strconv.Itoa(v))
		b.WriteString(" -> ")
	})
	b.WriteString("(head)")
	return b.String()
}

// Destroy releases every node, the sentinel included. Each successor is read
// before its node is released. Destroying twice is a no-op; every other
// operation on a destroyed list fails with ErrDestroyed.
func (l *List) Destroy() {
	if l.destroyed {
		return
	}

	if !l.empty() {
		start := l.entry()
		for i := start; ; {
			next := l.nodes[i].next
			l.release(i)
			if next == start {
				break
			}
			i = next
		}
	}

	l.nodes = nil
	l.free = nil
	l.destroyed = true
	l.gen++
}
