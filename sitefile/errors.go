package sitefile

import "errors"

// ErrNoSites is returned by Read when the input contains no site
// lines after comments and blank lines are stripped.
var ErrNoSites = errors.New("sitefile: no sites in input")
