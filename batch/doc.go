// Package batch converts many series at once and compares multi-channel
// signals.
//
// Encoder runs sax.FromArray over a set of series with bounded concurrency,
// the way an offline evaluation tool turns recorded trials into words. A
// Signal groups one word per channel; SignalDistance and Nearest rank signals
// by the combined lower-bounding distance of their channels.
//
// Typical use:
//
//	enc, err := batch.NewEncoder(batch.WithConcurrency(4), batch.WithTruncate(true))
//	if err != nil {
//		return err
//	}
//	words, err := enc.EncodeAll(ctx, trials, 8, 6)
package batch
