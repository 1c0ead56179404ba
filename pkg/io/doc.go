// Package io reads chart and ephemeris files and writes chart reports.
//
// # Chart Files
//
// A chart file is TOML describing one moment and the body positions at it:
//
//	name = "Example"
//	julian_day = 2451545.0        # or: birth = 2000-01-01T12:00:00Z
//	frame = "tropical"            # "sidereal" (default) or "tropical"
//	ayanamsa = 23.85              # tropical only; Lahiri when omitted
//	ascendant = 39.0
//	cusps = [39.0, 66.2, ...]     # optional, 12 values
//
//	[bodies.Sun]
//	longitude = 274.1
//	speed = 1.02
//
//	[bodies.Rahu]
//	longitude = 124.0
//	speed = -0.05
//
//	[shadbala]
//	Sun = 120.0
//
// Body names are matched case-insensitively and Sanskrit names are
// accepted. Ketu may be omitted; it is derived from Rahu. Unknown keys are
// rejected so that typos do not silently drop data. Files ending in .json
// are decoded as the JSON form of [chart.Input] instead.
//
// # Ephemeris Files
//
// An ephemeris file is a TOML array of samples that [ReadTable] turns into
// an interpolating [ephemeris.Table]:
//
//	name = "January 2024"
//
//	[[samples]]
//	body = "Moon"
//	time = 2024-01-01T00:00:00Z
//	longitude = 160.4
//
// Speeds may be omitted; they are then derived from neighbouring samples.
//
// # Reports
//
// [WriteJSON] and [ExportJSON] write a [chart.Report] as indented JSON.
// Values that could not be computed are written as null.
package io
