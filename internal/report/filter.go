package report

import "fleetledger/internal/domain"

// FilterByDate narrows records to an inclusive calendar-date window.
// Output preserves input order (a stable subsequence); an inverted
// window yields an empty result rather than an error — callers that
// want strictness validate the range first.
func FilterByDate[R domain.Dated](records []R, r domain.DateRange) []R {
	if r.IsZero() {
		out := make([]R, len(records))
		copy(out, records)
		return out
	}
	out := make([]R, 0, len(records))
	for _, rec := range records {
		if r.Contains(rec.RecordDate()) {
			out = append(out, rec)
		}
	}
	return out
}
