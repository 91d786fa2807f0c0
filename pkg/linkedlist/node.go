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

// Node holds a single value of a LinkedList together with the links to its
// neighbours. Nodes are handed out by the list's mutating operations and can
// be passed back to Remove or MoveToTail of the list that created them.
type Node[V any] struct {
	Value V

	prev  *Node[V]
	next  *Node[V]
	owner uuid.UUID // ID of the list that created the node, never changes.
	// detached is set once the node has been unlinked from its list.
	detached bool
}

// NewNode returns a node that belongs to no list. Its owner is uuid.Nil, which
// is never used as a list ID, so every list rejects it as foreign.
func NewNode[V any](value V) *Node[V] {
	return &Node[V]{Value: value, detached: true}
}

func newOwnedNode[V any](value V, owner uuid.UUID) *Node[V] {
	return &Node[V]{Value: value, owner: owner}
}

// Next returns the following node, or nil at the tail.
// For a removed node it returns the neighbour it had when it was removed.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Prev returns the preceding node, or nil at the head.
// For a removed node it returns the neighbour it had when it was removed.
func (n *Node[V]) Prev() *Node[V] {
	return n.prev
}

// Owner returns the ID of the list that created the node.
func (n *Node[V]) Owner() uuid.UUID {
	return n.owner
}

// String returns a representation of the node for debugging. The format is
// not stable.
func (n *Node[V]) String() string {
	return fmt.Sprintf("Node(value:%v)", n.Value)
}
