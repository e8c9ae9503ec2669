package models

import "strings"

// BatchFinishedStatus is the terminal batch-job status reported by the
// marketing API. Compared case-insensitively.
const BatchFinishedStatus = "finished"

// BatchRequest submits a typed collection for asynchronous ingestion against
// a target endpoint name ("contacts", "products", "categories", "orders").
type BatchRequest struct {
	Method   string `json:"method"`
	Endpoint string `json:"endpoint"`
	Items    []any  `json:"items"`
}

// BatchResponse is the remote state of one batch job. The item counters are
// surfaced for display only; blocking decisions look at Endpoint and Status.
type BatchResponse struct {
	BatchID       string `json:"batchID"`
	Endpoint      string `json:"endpoint"`
	Status        string `json:"status"`
	TotalCount    int    `json:"totalCount"`
	FinishedCount int    `json:"finishedCount"`
	ErrorsCount   int    `json:"errorsCount"`
}

// Finished reports whether the job reached its terminal status.
func (b BatchResponse) Finished() bool {
	return strings.EqualFold(b.Status, BatchFinishedStatus)
}

// BlockFlags marks endpoints that must not accept a new sync action because a
// batch job targeting them is still in flight. Products and categories both
// populate catalog data and share one flag.
type BlockFlags struct {
	Contacts bool `json:"contacts"`
	Orders   bool `json:"orders"`
	Products bool `json:"products"`
}
