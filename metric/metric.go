package metric

import "math"

// EarthRadius is the fixed sphere radius (in kilometers) mandated by the
// TSPLIB geographical distance, historically named RRR.
const EarthRadius = 6378.388

// degToRad converts a TSPLIB DDD.MM coordinate to radians: the integer part
// is degrees, the fractional part is minutes/100.
func degToRad(x float64) float64 {
	deg := math.Trunc(x)
	min := x - deg
	return math.Pi * (deg + 5.0*min/3.0) / 180.0
}

// Nint rounds to the nearest integer, ties away from zero — the nint() of
// the TSPLIB reference description.
func Nint(x float64) float64 { return math.Round(x) }

// Euc2D returns the rounded two-dimensional Euclidean distance.
func Euc2D(x1, y1, x2, y2 float64) float64 {
	return Nint(math.Hypot(x1-x2, y1-y2))
}

// Euc3D returns the rounded three-dimensional Euclidean distance.
func Euc3D(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx, dy, dz := x1-x2, y1-y2, z1-z2
	return Nint(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// Ceil2D returns the two-dimensional Euclidean distance rounded up.
// Never reduces to Euc2D: the ceiling changes optimal-tour computation.
func Ceil2D(x1, y1, x2, y2 float64) float64 {
	return math.Ceil(math.Hypot(x1-x2, y1-y2))
}

// Man2D returns the rounded two-dimensional Manhattan distance.
func Man2D(x1, y1, x2, y2 float64) float64 {
	return Nint(math.Abs(x1-x2) + math.Abs(y1-y2))
}

// Man3D returns the rounded three-dimensional Manhattan distance.
func Man3D(x1, y1, z1, x2, y2, z2 float64) float64 {
	return Nint(math.Abs(x1-x2) + math.Abs(y1-y2) + math.Abs(z1-z2))
}

// Max2D returns the two-dimensional maximum (Chebyshev) distance, taking
// the maximum of the per-axis rounded differences as TSPLIB prescribes.
func Max2D(x1, y1, x2, y2 float64) float64 {
	return math.Max(Nint(math.Abs(x1-x2)), Nint(math.Abs(y1-y2)))
}

// Max3D returns the three-dimensional maximum (Chebyshev) distance.
func Max3D(x1, y1, z1, x2, y2, z2 float64) float64 {
	return math.Max(Nint(math.Abs(x1-x2)),
		math.Max(Nint(math.Abs(y1-y2)), Nint(math.Abs(z1-z2))))
}

// Geo returns the TSPLIB geographical distance between two points given as
// DDD.MM latitude/longitude pairs: great-circle distance on a sphere of
// radius EarthRadius via the spherical law of cosines, truncated per the
// reference formula dij = (int)(RRR*q4 + 1.0).
func Geo(x1, y1, x2, y2 float64) float64 {
	latA, lonA := degToRad(x1), degToRad(y1)
	latB, lonB := degToRad(x2), degToRad(y2)

	q1 := math.Cos(lonA - lonB)
	q2 := math.Cos(latA - latB)
	q3 := math.Cos(latA + latB)
	q4 := math.Acos(0.5 * ((1.0+q1)*q2 - (1.0-q1)*q3))
	return math.Trunc(EarthRadius*q4 + 1.0)
}

// Att returns the pseudo-Euclidean distance used by the att48 and att532
// instances: rij = sqrt((xd²+yd²)/10), rounded to nearest but bumped up by
// one whenever truncation to nint undershoots rij.
func Att(x1, y1, x2, y2 float64) float64 {
	xd, yd := x1-x2, y1-y2
	rij := math.Sqrt((xd*xd + yd*yd) / 10.0)
	tij := Nint(rij)
	if tij < rij {
		return tij + 1
	}
	return tij
}

// XRay1 returns the version-1 crystallography distance: the x axis wraps
// around 360 degrees, the scaled maximum of the axis differences wins.
func XRay1(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx := math.Abs(x1 - x2)
	p := math.Min(dx, math.Abs(dx-360.0))
	c := math.Abs(y1 - y2)
	t := math.Abs(z1 - z2)
	return Nint(100.0 * math.Max(p, math.Max(c, t)))
}

// XRay2 returns the version-2 crystallography distance, with per-axis
// motor-speed divisors applied before taking the maximum.
func XRay2(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx := math.Abs(x1 - x2)
	p := math.Min(dx, math.Abs(dx-360.0))
	c := math.Abs(y1 - y2)
	t := math.Abs(z1 - z2)
	return Nint(100.0 * math.Max(p/1.25, math.Max(c/1.5, t/1.15)))
}
