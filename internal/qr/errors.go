package qr

import "errors"

var (
	ErrDecoderUnavailable = errors.New("qr decoder binary not found, install zbar (e.g. apt install zbar-tools)")
	ErrNoPayload          = errors.New("no decodable qr payload found in image")
)
