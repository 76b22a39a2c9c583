// Package stalta computes the classic STA/LTA characteristic function of a
// sample record: the ratio of the short-term average power to the long-term
// average power ending at each sample.
//
// For window lengths nsta and nlta (in samples) the value at index i is
//
//	cft[i] = (sum(x[j]^2, i-nsta < j <= i) / nsta) / (sum(x[j]^2, i-nlta < j <= i) / nlta)
//
// where samples before the start of the record count as zero. The first
// max(nsta, nlta)-1 values are reported as 0 because the long window is not
// full yet, and any index whose long-term power is exactly zero also yields 0.
// The result therefore has the same length as the input and is never negative.
//
// Both windows are maintained as running sums that add the newest squared
// sample and subtract the one leaving the window, so the cost is O(N)
// regardless of window length.
//
// # Usage
//
// For a record already held in memory:
//
//	cft, err := stalta.Classic(samples, nsta, nlta)
//	if err != nil && !stalta.IsWarning(err) {
//	    return err
//	}
//
// For unbounded streams, a Stream keeps O(max(nsta, nlta)) state and yields
// the same values one sample at a time:
//
//	s, _ := stalta.NewStream(nsta, nlta)
//	for _, x := range samples {
//	    v, err := s.ProcessSample(x)
//	    ...
//	}
package stalta
