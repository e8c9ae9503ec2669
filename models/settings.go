package models

// Settings is the persisted runtime configuration of the sync engine. Unlike
// the process config it can be changed from the admin API at any time and
// must survive restarts; the store layer keeps it in the local database.
//
// BatchIDs is the set of outstanding remote batch-job identifiers. An id is
// appended when a batch submission succeeds and removed only when the remote
// service reports the job finished (or the job has vanished remotely). Every
// mutation must be saved immediately — see service.BatchTracker.
type Settings struct {
	APIKey  string `json:"api_key"`
	BrandID string `json:"brand_id"`

	UseTracking           bool   `json:"use_tracking"`
	TrackingScript        string `json:"tracking_script"`
	ProductScript         string `json:"product_script"`
	IdentifyContactScript string `json:"identify_contact_script"`

	PageSize       int `json:"page_size"`
	BatchThreshold int `json:"batch_threshold"`

	LogRequests      bool `json:"log_requests"`
	LogRequestErrors bool `json:"log_request_errors"`

	BatchIDs []string `json:"batch_ids"`
}

const (
	DefaultPageSize       = 100
	DefaultBatchThreshold = 1000
)

// Normalize fills zero-valued paging knobs with defaults so that a freshly
// created settings row is usable without an explicit admin save.
func (s *Settings) Normalize() {
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	if s.BatchThreshold <= 0 {
		s.BatchThreshold = DefaultBatchThreshold
	}
}

// HasBatch reports whether id is already tracked.
func (s *Settings) HasBatch(id string) bool {
	for _, b := range s.BatchIDs {
		if b == id {
			return true
		}
	}
	return false
}

// AddBatch appends id to the tracked set, keeping insertion order.
func (s *Settings) AddBatch(id string) {
	if id == "" || s.HasBatch(id) {
		return
	}
	s.BatchIDs = append(s.BatchIDs, id)
}

// RemoveBatch deletes id from the tracked set. Removing an unknown id is a
// no-op.
func (s *Settings) RemoveBatch(id string) {
	out := s.BatchIDs[:0]
	for _, b := range s.BatchIDs {
		if b != id {
			out = append(out, b)
		}
	}
	s.BatchIDs = out
}
