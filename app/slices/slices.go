/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package slices

import "strings"

// Index returns the element index of the string in the array
func Index(vs []string, t string) int {
	for i, v := range vs {
		if v == t {
			return i
		}
	}
	return -1
}

// Contains returns true if the target string t is in the slice, and false otherwise.
func Contains(vs []string, t string) bool {
	return Index(vs, t) >= 0
}

// ContainsAnySubstring returns true if the string s contains at least one of
// the given substrings. Matching is case-sensitive; callers normalize case.
func ContainsAnySubstring(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
