package connectivity

import "errors"

// Sentinel errors for the connectivity package.
var (
	// ErrPairNotFound is returned by GetPairs when neither (a,b) nor its
	// transpose (b,a) was discovered during Build.
	ErrPairNotFound = errors.New("connectivity: no pair entry for this face combination")
)
