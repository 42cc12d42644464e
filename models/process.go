package models

import "strings"

// Unknown is the placeholder for any unreadable text attribute
const Unknown = "Unknown"

// ProcessRecord is one normalized process observed during a snapshot
type ProcessRecord struct {
	Name    string `json:"name"`
	PID     int32  `json:"pid"`
	User    string `json:"user"`
	Started string `json:"started"`
	Threads int32  `json:"threads"`
	Status  string `json:"status"`
}

// RawProcess holds the attributes read from the OS for one process.
// A nil field means the attribute could not be read.
type RawProcess struct {
	PID        int32
	Name       *string
	Username   *string
	CreateTime *int64 // epoch milliseconds
	Status     *string
	NumThreads *int32
}

// SortKey selects the field a snapshot is ordered by
type SortKey int

const (
	// SortByName is the default and the fallback for invalid selections
	SortByName SortKey = iota
	SortByPID
	SortByUser
	SortByStatus
)

func (k SortKey) String() string {
	switch k {
	case SortByPID:
		return "PID"
	case SortByUser:
		return "User"
	case SortByStatus:
		return "Status"
	default:
		return "Name"
	}
}

// ParseSortKey maps a token to a SortKey. Unrecognized tokens, including
// the empty string, resolve to SortByName and report ok=false.
func ParseSortKey(token string) (key SortKey, ok bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "name":
		return SortByName, true
	case "pid":
		return SortByPID, true
	case "user":
		return SortByUser, true
	case "status":
		return SortByStatus, true
	default:
		return SortByName, false
	}
}
