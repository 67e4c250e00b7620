package cacheapi

import "errors"

var (
	ErrDecodeBlockNumber = errors.New("cacheapi: block number is not a non-negative integer")
	ErrEpochOutOfRange   = errors.New("cacheapi: block number is beyond the served epochs")
	ErrBadRecordWidth    = errors.New("cacheapi: cache record must have 16 words")
)
