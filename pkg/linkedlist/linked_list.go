/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package linkedlist

import (
	"fmt"

	"github.com/google/uuid"
)

// LinkedList is a doubly linked list whose nodes are stamped with the ID of
// the list that created them. Operations that take a node reject nodes created
// by another list.
//
// A LinkedList is not safe for concurrent use. The zero value is not usable,
// create lists with New.
type LinkedList[V any] struct {
	head   *Node[V]
	tail   *Node[V]
	length int
	id     uuid.UUID
}

// New creates a list holding the given values in order.
func New[V any](values ...V) *LinkedList[V] {
	l := &LinkedList[V]{id: uuid.New()}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// ID returns the identifier stamped on every node the list creates.
func (l *LinkedList[V]) ID() uuid.UUID {
	return l.id
}

// Len returns the number of nodes in the list.
func (l *LinkedList[V]) Len() int {
	return l.length
}

// Head returns the first node, or nil if the list is empty.
func (l *LinkedList[V]) Head() *Node[V] {
	return l.head
}

// Tail returns the last node, or nil if the list is empty.
func (l *LinkedList[V]) Tail() *Node[V] {
	return l.tail
}

// Append adds value at the end of the list and returns its node.
func (l *LinkedList[V]) Append(value V) *Node[V] {
	n := newOwnedNode(value, l.id)
	l.length++
	if l.tail == nil {
		l.head, l.tail = n, n
		return n
	}
	n.prev = l.tail
	l.tail.next = n
	l.tail = n
	return n
}

// Prepend adds value at the front of the list and returns its node.
func (l *LinkedList[V]) Prepend(value V) *Node[V] {
	n := newOwnedNode(value, l.id)
	l.length++
	if l.head == nil {
		l.head, l.tail = n, n
		return n
	}
	n.next = l.head
	l.head.prev = n
	l.head = n
	return n
}

// Get returns the node at the 0-based index, walking forward from the head.
func (l *LinkedList[V]) Get(index int) (*Node[V], error) {
	if index < 0 || index >= l.length {
		return nil, indexOutOfRange(index, l.length, false)
	}
	n := l.head
	for ; index > 0; index-- {
		n = n.next
	}
	return n, nil
}

// InsertAt inserts value so that it ends up at the given index and returns its
// node. Index Len() is accepted and appends.
func (l *LinkedList[V]) InsertAt(value V, index int) (*Node[V], error) {
	switch {
	case index < 0 || index > l.length:
		return nil, indexOutOfRange(index, l.length, true)
	case index == 0:
		return l.Prepend(value), nil
	case index == l.length:
		return l.Append(value), nil
	}

	next, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	prev := next.prev

	n := newOwnedNode(value, l.id)
	n.prev = prev
	n.next = next
	prev.next = n
	next.prev = n
	l.length++
	return n, nil
}

// Remove unlinks n from the list.
//
// The removed node keeps its next and prev links as they were at the time of
// removal. They must not be followed as if the node were still in the list.
func (l *LinkedList[V]) Remove(n *Node[V]) error {
	if err := l.checkOwned(n); err != nil {
		return err
	}
	l.unlink(n)
	n.detached = true
	l.length--
	return nil
}

// RemoveAt removes the node at the given index and returns it.
func (l *LinkedList[V]) RemoveAt(index int) (*Node[V], error) {
	n, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	if err := l.Remove(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Pop removes and returns the tail, or returns nil if the list is empty.
func (l *LinkedList[V]) Pop() *Node[V] {
	n := l.tail
	if n == nil {
		return nil
	}
	// n is the tail of l, the ownership check cannot fail.
	_ = l.Remove(n)
	return n
}

// Unshift removes and returns the head, or returns nil if the list is empty.
func (l *LinkedList[V]) Unshift() *Node[V] {
	n := l.head
	if n == nil {
		return nil
	}
	_ = l.Remove(n)
	return n
}

// MoveToTail moves an existing node to the end of the list without
// allocating. The node keeps its identity, so handles held by callers stay
// valid.
func (l *LinkedList[V]) MoveToTail(n *Node[V]) error {
	if err := l.checkOwned(n); err != nil {
		return err
	}
	if n == l.tail {
		return nil
	}
	l.unlink(n)
	n.prev = l.tail
	n.next = nil
	l.tail.next = n
	l.tail = n
	return nil
}

// unlink detaches n from its neighbours and fixes head and tail. It leaves
// n.prev and n.next untouched and does not change the length.
func (l *LinkedList[V]) unlink(n *Node[V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
}

func (l *LinkedList[V]) checkOwned(n *Node[V]) error {
	switch {
	case n == nil:
		return foreignNode("nil node")
	case n.owner == uuid.Nil:
		return foreignNode("node was not created by a list")
	case n.owner != l.id:
		return foreignNode(fmt.Sprintf("node is owned by list %s", n.owner))
	case n.detached:
		return foreignNode("node has already been removed")
	}
	return nil
}
