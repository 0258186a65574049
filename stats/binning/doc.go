// Package binning groups (x, y) samples into bins along x and summarizes
// the y values of each bin.
//
// [BinN] splits the samples into a fixed number of bins holding the same
// number of samples each (equal-occupancy binning). After a stable sort by
// x, the samples are cut into n contiguous runs whose sizes differ by at
// most one; the first N mod n bins receive the extra sample. [BinBySize]
// cuts runs of a fixed length instead, and [BinX] assigns samples to bins
// around caller-supplied centers.
//
// Every bin reports:
//
//	X   mean (or median, see WithCenter) of the member x values
//	Y   mean of the member y values
//	S   population standard deviation of the member y values
//	Sm  standard error of the mean, S / sqrt(Count); 0 for a single member
//
// The functions are pure: inputs are never modified.
package binning
