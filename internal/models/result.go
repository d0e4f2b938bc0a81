// ABOUTME: Result types for batch ingestion and query responses
// ABOUTME: Shapes the outcomes returned to the transport layer and CLI
package models

// UploadFile is one file as delivered by the upload transport
type UploadFile struct {
	OriginalName string
	MimeType     string
	Buffer       []byte
}

// IngestFailure describes one file that could not be ingested
type IngestFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
	Attempts int    `json:"attempts"`
}

// BatchResult aggregates per-file outcomes of a batch upload.
// Order within each slice reflects completion order, not input order.
type BatchResult struct {
	Successful []Document      `json:"successful"`
	Failed     []IngestFailure `json:"failed"`
}

// QueryResult is the response unit for one natural-language query
type QueryResult struct {
	Query  string           `json:"query"`
	Answer string           `json:"answer"`
	Data   []RetrievedChunk `json:"data"`
}
