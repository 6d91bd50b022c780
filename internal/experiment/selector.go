package experiment

import "github.com/your-org/lift-form-analyzer/internal/classifier"

// Selection tracks the best evaluation record seen so far, as a monotone
// fold over records in enumeration order. The incumbent is replaced only on
// a strictly higher out-of-sample accuracy, so ties keep the earlier-found
// model and the outcome is reproducible regardless of tie patterns.
type Selection struct {
	best  *Record
	model classifier.Model
}

// NewSelection returns an empty Selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Consider offers a record to the selection and reports whether it replaced
// the incumbent.
func (s *Selection) Consider(rec Record, model classifier.Model) bool {
	if s.best != nil && rec.OutOfSample.Value <= s.best.OutOfSample.Value {
		return false
	}
	r := rec
	s.best = &r
	s.model = model
	return true
}

// Best returns the selected record, and false if nothing has been considered.
func (s *Selection) Best() (Record, bool) {
	if s.best == nil {
		return Record{}, false
	}
	return *s.best, true
}

// Model returns the trained model associated with the selected record.
func (s *Selection) Model() classifier.Model {
	return s.model
}
