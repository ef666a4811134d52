package entity

// NearbyListeners partitions the currently-listening users around a caller
// into three concentric distance bands. Band membership uses Euclidean
// distance on raw coordinate degrees, lower bound exclusive and upper bound
// inclusive, so a band never contains the caller and a zero radius yields an
// empty band.
type NearbyListeners struct {
	Close  []*Profile
	Medium []*Profile
	Far    []*Profile
}
