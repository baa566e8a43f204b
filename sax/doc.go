// Package sax implements Symbolic Aggregate approXimation (SAX) of real-valued
// time series and the MINDIST lower-bounding distance between the resulting
// words.
//
// # Encoding
//
// A series of n values is z-normalized, cut into w equal frames and each frame
// average is mapped to one of c symbols using equiprobable breakpoints of the
// standard normal distribution. Cardinalities 2 through 16 are supported.
//
//	word, err := sax.FromArray(series, 4, 8)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(word) // e.g. "HAED"
//
// Non-finite samples (NaN, ±Inf) are ignored by both the statistics and the
// frame averages. A frame without a single finite sample encodes to the
// sentinel symbol, printed as '#'.
//
// # Streaming
//
// A Window keeps the last n samples in a ring buffer together with running
// mean and variance, and re-encodes its word after every append:
//
//	win, _ := sax.NewWindow(120, 6, 8)
//	for v := range samples {
//	    win.Append(v)
//	    if win.IsReady() {
//	        word := win.Word()
//	        // ...
//	    }
//	}
//
// # Distance
//
// Mindist compares two words of equal shape and never exceeds the Euclidean
// distance between the normalized series they were built from, which makes it
// safe for pruning in similarity search.
//
//	d, err := sax.Mindist(a, b)
package sax
