// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

// State is the lifecycle of an output format within an editing session.
type State int

const (
	StateUnchanged State = iota
	StateAdded
	StateAddedSaved
	StateModified
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateUnchanged:
		return "UNCHANGED"
	case StateAdded:
		return "ADDED"
	case StateAddedSaved:
		return "ADDED_SAVED"
	case StateModified:
		return "MODIFIED"
	case StateRemoved:
		return "REMOVED"
	}
	return "UNKNOWN"
}

// New returns true if the output format was introduced during this session and so has no counterpart on disk to tombstone.
func (s State) New() bool {
	return s == StateAdded || s == StateAddedSaved
}
