// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pipeline

// Predicate decides whether a row takes part in a job. Rows it rejects are
// skipped before extraction and never reach the deduplicator.
type Predicate func(Row) bool

// DefaultFlows are the flows whose responses carry a connector transaction id.
var DefaultFlows = []string{"Authorize", "SetupMandate"}

// FlowFilter accepts rows whose flow is exactly one of flows and whose
// response is non-empty after trimming. With no flows it uses [DefaultFlows].
// Flow names are matched case-sensitively.
func FlowFilter(flows ...string) Predicate {
	if len(flows) == 0 {
		flows = DefaultFlows
	}
	allowed := make(map[string]struct{}, len(flows))
	for _, f := range flows {
		allowed[f] = struct{}{}
	}

	return func(r Row) bool {
		if _, ok := allowed[r.Get(ColFlow)]; !ok {
			return false
		}
		return !r.Blank(ColResponse)
	}
}

// AcceptAll is the predicate that lets every row through.
func AcceptAll(Row) bool { return true }
