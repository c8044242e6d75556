package vo

import "io"

type FileUpload struct {
	Bucket       string
	OriginalName string
	ContentType  string
	Size         int64
	Body         io.Reader
}

type StoredFile struct {
	Bucket       string `json:"bucket"`
	ObjectName   string `json:"object_name"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}
