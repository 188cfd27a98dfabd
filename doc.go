// Package allrgb generates "allrgb" images: square images in which every
// 24-bit RGB colour appears exactly once.
//
// # Overview
//
// Colour placement is driven by three smooth noise fields (hue, saturation
// and value), each built from 4-octave simplex noise sampled through two
// rounds of domain warping. The fields are normalized to [0,1], converted
// from HSV to RGB, and every cell is ranked by its colour. Rank i then
// receives a fixed 24-bit colour whose bits interleave i's bits across the
// red, green and blue bytes, so cells that were similar in colour before
// ranking stay similar after it.
//
// # Quick Start
//
//	g, err := allrgb.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := g.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := res.Save("out", allrgb.FormatPNG); err != nil {
//	    log.Fatal(err)
//	}
//
// # Guarantees
//
// With the default size (4096) the result is a bijection between grid cells
// and the colour space; Result.Census reports it. Output depends only on the
// options: not on the worker count, and not on timing. Two runs with the same
// options produce byte-identical images (compare Result.Digest).
//
// # Architecture
//
// The pipeline lives in internal packages, in data-flow order:
//   - noise: 4-octave simplex oracle
//   - field: domain-warped field generation and normalization
//   - color: HSV to RGB colour field
//   - pixel: 32-bit-per-channel keyed pixels and their total order
//   - rank: rank-to-colour bit interleave and write-back
//   - image: 8-bit buffers and PPM/PNG/TIFF/BMP encoding
//   - parallel: worker pool shared by the data-parallel stages
package allrgb

// Version is the current version of the module.
const Version = "0.1.0"
