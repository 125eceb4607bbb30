// Package edgefit provides the arithmetic behind absorption edge detection in
// spectrometric thermometry, and the data needed to illustrate it.
//
// A semiconductor's absorption edge shifts with temperature. In a transmission
// spectrum, the edge shows up as the point where a flat, dark region turns into
// a steep flank. The edge wavelength is found by fitting one line to each of
// the two regions and intersecting them.
//
// # Functions
//
// [Line] is the linear function y = Slope·x + Constant. Lines can be evaluated,
// inverted, and intersected (see [Intersection]). [Gaussian] is a bell curve on
// top of a baseline and serves as a model spectrum. Both implement [Func], and
// both have vectorized EvalSlice methods.
//
// Division by zero is the caller's responsibility: [Line.Inverse] of a
// horizontal line returns ±Inf or NaN, and [Intersection] reports parallel
// lines by returning false.
//
// # Fitting
//
// [FitLine] fits a line by least squares. [FitEdge] fits two lines to marked
// parts of a spectrum and returns [FitGraphics], the lines, their intersection,
// and the segments worth plotting. [SmoothPointPeaks] and [SmoothBoxcar]
// prepare noisy spectra.
//
// A [Calibration] turns the edge wavelength into a temperature, either by a
// [Polynomial] or by interpolating measured points ([SplineCalibration]).
//
// # Plot data
//
// This package doesn't draw. [Sample] and [Linspace] turn functions into
// points, and [Guide] describes the dotted lines connecting a point of interest
// to the axes. The fitgraphics command prints the data of the explanatory
// figure.
package edgefit
