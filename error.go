package imageset

import (
	"fmt"
	"slices"
)

var (
	_ error        = (*Error)(nil)
	_ fmt.Stringer = (*Error)(nil)
)

// Error reports a problem found while assembling an image set,
// such as a duplicate or missing image for one of its channels.
//
// Error is immutable. It is safe to share between goroutines.
// Two errors compare equal with == only if they are the same pointer.
type Error struct {
	// channelName is the channel with the missing or duplicate entries.
	channelName string

	// message is the human-readable description.
	message string

	// key holds the metadata values that define the image set,
	// e.g. {"Plate1", "A01"} for metadata tags "Plate" and "Well".
	key []string
}

// NewError creates a new Error. No validation is done,
// empty values are kept as they are.
//
// The key is copied, so later changes to it are not seen by the Error.
func NewError(channelName, message string, key []string) *Error {
	return &Error{
		channelName: channelName,
		message:     message,
		key:         slices.Clone(key),
	}
}

// ChannelName gets the name of the channel the error is about.
func (e *Error) ChannelName() string {
	return e.channelName
}

// Message gets the error message.
func (e *Error) Message() string {
	return e.message
}

// Key gets the metadata key of the image set, in its original order.
//
// A copy is returned each time.
func (e *Error) Key() []string {
	return slices.Clone(e.key)
}

func (e *Error) String() string {
	return e.message
}

func (e *Error) Error() string {
	return e.message
}
