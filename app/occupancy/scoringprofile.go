/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package occupancy

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	retailCartDefault = ScoringProfile{
		Id:                "retail_cart_default",
		FillBoost:         1.8,
		SnackBoost:        2.5,
		SnackBonusCap:     1.8,
		SnackBonusDivisor: 15.0,
		WeightVertical:    0.35,
		WeightFill:        0.30,
		WeightSnack:       0.20,
		WeightFillLine:    0.10,
		WeightDetection:   0.05,
	}

	coolerShelfDefault = ScoringProfile{
		Id:                "cooler_shelf_default",
		FillBoost:         1.6,
		SnackBoost:        2.0,
		SnackBonusCap:     1.8,
		SnackBonusDivisor: 15.0,
		WeightVertical:    0.30,
		WeightFill:        0.35,
		WeightSnack:       0.15,
		WeightFillLine:    0.15,
		WeightDetection:   0.05,
	}

	defaultProfile = ScoringProfile{
		Id:                "default",
		FillBoost:         retailCartDefault.FillBoost,
		SnackBoost:        retailCartDefault.SnackBoost,
		SnackBonusCap:     retailCartDefault.SnackBonusCap,
		SnackBonusDivisor: retailCartDefault.SnackBonusDivisor,
		WeightVertical:    retailCartDefault.WeightVertical,
		WeightFill:        retailCartDefault.WeightFill,
		WeightSnack:       retailCartDefault.WeightSnack,
		WeightFillLine:    retailCartDefault.WeightFillLine,
		WeightDetection:   retailCartDefault.WeightDetection,
	}

	scoringProfiles = map[string]ScoringProfile{
		retailCartDefault.Id:  retailCartDefault,
		coolerShelfDefault.Id: coolerShelfDefault,
		defaultProfile.Id:     defaultProfile,
	}
)

// ScoringProfile collects the calibration knobs of the occupancy formula.
// The values are hand-tuned per deployment; the control flow of the estimator
// never changes with them.
type ScoringProfile struct {
	Id string `json:"id"`
	// FillBoost multiplies raw area coverage before clamping to 100
	FillBoost float64 `json:"fill_boost"`
	// SnackBoost multiplies raw snack-area coverage before clamping to 100
	SnackBoost float64 `json:"snack_boost"`
	// SnackBonusCap limits the snack contribution before weighting
	SnackBonusCap float64 `json:"snack_bonus_cap"`
	// SnackBonusDivisor rescales snack percent into the bonus term
	SnackBonusDivisor float64 `json:"snack_bonus_divisor"`
	// The five composite weights, expected to sum to 1.0
	WeightVertical  float64 `json:"weight_vertical"`
	WeightFill      float64 `json:"weight_fill"`
	WeightSnack     float64 `json:"weight_snack"`
	WeightFillLine  float64 `json:"weight_fill_line"`
	WeightDetection float64 `json:"weight_detection"`
}

// GetDefaultScoringProfile returns the default profile.
func GetDefaultScoringProfile() ScoringProfile {
	profile, err := GetScoringProfile(defaultProfile.Id)

	// default should always exist
	if err != nil {
		err = errors.Wrapf(err, "default scoring profile with id %s does not exist!", defaultProfile.Id)
		log.Error(err)
		panic(err)
	}

	return profile
}

// GetScoringProfile looks up a registered profile by id.
func GetScoringProfile(id string) (ScoringProfile, error) {
	profile, ok := scoringProfiles[id]
	if !ok {
		return ScoringProfile{}, fmt.Errorf("unable to find scoring profile with id: %s", id)
	}

	return profile, nil
}

// ScoringProfileIds returns the ids of all registered profiles.
func ScoringProfileIds() []string {
	ids := make([]string, 0, len(scoringProfiles))
	for id := range scoringProfiles {
		ids = append(ids, id)
	}
	return ids
}
