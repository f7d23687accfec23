// Package validate holds the input checks shared by the front ends. The
// engine itself only compares email strings; syntax validation is a
// front-end concern.
package validate

import "regexp"

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)

// Email reports whether s looks like a deliverable email address.
func Email(s string) bool {
	return s != "" && emailRE.MatchString(s)
}
