package vo

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrInvalidBatchSize = errors.New("invalid batch size")
var ErrInvalidID = errors.New("invalid id")

var ErrEmptyFile = errors.New("empty file")
var ErrFileTooLarge = errors.New("file too large")
var ErrBucketRequired = errors.New("bucket is required")
var ErrBucketNotFound = errors.New("bucket not found")
var ErrNoObjectNames = errors.New("no object names")
