// Package tinyrender is a CPU software-rasterization pipeline for lines and
// triangles with perspective-correct attribute interpolation.
//
// # Overview
//
// A caller supplies vertices that the vertex stage has moved to clip space
// and whose screen positions have been mapped with ViewportTransform. The
// rasterizers walk screen-space pixels and append interpolated VertexData
// samples; the fragment stage turns each sample into a color.
//
//	v0.PrePerspectiveCorrection()
//	v1.PrePerspectiveCorrection()
//	v2.PrePerspectiveCorrection()
//
//	var samples []tinyrender.VertexData
//	tinyrender.RasterizeFill(v0, v1, v2, width, height, &samples)
//
//	for i := range samples {
//	    samples[i].PostPerspectiveCorrection()
//	    color := shader.FragmentShader(samples[i])
//	    // ...
//	}
//
// Pipeline wraps those steps for whole vertex batches, driven by a
// gputypes.PrimitiveState, and Framebuffer is a reference sink that
// resolves the sub-samples.
//
// # Rasterization rules
//
//   - Lines use integer Bresenham stepping. Both endpoints are always
//     emitted; stepped samples outside [0,width] x [0,height] are dropped.
//   - Triangles are tested at four sub-pixel offsets per pixel with a strict
//     edge-function sign test. Points on an edge are outside, so an edge
//     shared by two triangles is covered by neither.
//   - Up to four raw samples per pixel are emitted. They are never averaged
//     here.
//   - Near-zero-area triangles fall back to SentinelWeights; the
//     DegenerateTrianglePolicy decides what happens to those samples.
//
// # Coordinate System
//
// Screen space has its origin at the top-left, X increasing right and Y
// increasing down. Clip space follows the OpenGL convention with NDC depth
// in [-1, 1].
package tinyrender
