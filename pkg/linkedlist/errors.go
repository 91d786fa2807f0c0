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
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by Get, InsertAt and RemoveAt when the
	// index falls outside the permitted bound. The list is left unchanged.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrForeignNode is returned by Remove and MoveToTail when the node is not
	// linked into the list the method was called on. The list is left unchanged.
	ErrForeignNode = errors.New("node does not belong to this list")
)

func indexOutOfRange(index, length int, inclusive bool) error {
	if inclusive {
		return fmt.Errorf("%w: index %d, valid range [0, %d]", ErrIndexOutOfRange, index, length)
	}
	return fmt.Errorf("%w: index %d, valid range [0, %d)", ErrIndexOutOfRange, index, length)
}

func foreignNode(reason string) error {
	return fmt.Errorf("%w: %s", ErrForeignNode, reason)
}
