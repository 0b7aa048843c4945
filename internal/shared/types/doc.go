// Package types provides shared data structures for fsutil.
//
// Core Types:
//   - Result: explicit per-operation outcome (succeeded, failed, not applicable, skipped)
//   - Status: outcome discriminator carried by Result
//   - Service, Tool, Parameter: catalog of operations exposed through tool dispatch
//
// Example Usage:
//
//	res := types.FromError("/srv/old", err)
//	if res.Status == types.StatusFailed {
//	    log.Println(*res.Error)
//	}
package types
