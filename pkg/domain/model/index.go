package model

// IndexEntry is one project listed by the package index
type IndexEntry struct {
	Project string   `json:"project"`
	Files   []string `json:"files"`
}

// UploadReceipt acknowledges a stored distribution file
type UploadReceipt struct {
	ID      string `json:"id"`
	Project string `json:"project"`
	File    string `json:"file"`
	Size    int64  `json:"size"`
}
