package core

import "math"

// EarthRadius is the mean Earth radius in metres.
const EarthRadius = 6371000.0

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

// Haversine returns the great-circle distance in metres between two
// latitude/longitude points given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

// DistanceTo returns the great-circle distance in metres from n to o.
func (n *Node) DistanceTo(o *Node) float64 {
	return Haversine(n.Lat, n.Lon, o.Lat, o.Lon)
}
