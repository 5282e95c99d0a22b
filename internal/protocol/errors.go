package protocol

import "errors"

var (
	ErrStatusMismatch = errors.New("protocol: status byte does not match message type")
)
