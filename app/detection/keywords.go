/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package detection

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/slices"
)

// Keyword vocabularies shared by the normalizer, the occupancy estimator and
// the drawer inferencer. Matching is case-insensitive substring containment,
// so "lat" also matches "lata" and "latas".
var (
	SnackKeywords = []string{"cookie", "snack", "galleta"}
	juiceKeywords = []string{"juice", "carton", "box"}
	canKeywords   = []string{"can", "lat", "cup"}
	colaKeywords  = []string{"coke", "cola"}

	// BeverageKeywords is the estimator's beverage vocabulary.
	BeverageKeywords = []string{"bottle", "water", "can", "juice"}

	// DrawerBeverageKeywords is the wider beverage vocabulary used when
	// testing drawer regions for the absence of beverages.
	DrawerBeverageKeywords = []string{"bottle", "can", "coke", "soda", "water", "juice", "drink", "lata", "carton", "cup"}
)

// LabelContainsAny reports whether the label contains at least one of the
// given keywords, ignoring case.
func LabelContainsAny(label string, keywords []string) bool {
	return slices.ContainsAnySubstring(strings.ToLower(label), keywords)
}
