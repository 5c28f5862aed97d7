/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package handlers

import (
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/config"
	"github.com/intel/rsp-sw-toolkit-im-suite-occupancy-service/app/drawer"
)

func TestScoringProfileForRequestDefault(t *testing.T) {
	// no configured id falls back to the default profile
	config.AppConfig.ScoringProfileId = ""

	profile, err := scoringProfileForRequest("")
	if err != nil {
		t.Fatalf("Unexpected error resolving default profile: %s", err.Error())
	}
	if profile.Id != "default" {
		t.Errorf("Expected default profile, got %s", profile.Id)
	}
}

func TestScoringProfileForRequestExplicitId(t *testing.T) {
	profile, err := scoringProfileForRequest("cooler_shelf_default")
	if err != nil {
		t.Fatalf("Unexpected error resolving profile: %s", err.Error())
	}
	if profile.Id != "cooler_shelf_default" {
		t.Errorf("Expected cooler_shelf_default, got %s", profile.Id)
	}
}

func TestScoringProfileForRequestUnknownId(t *testing.T) {
	if _, err := scoringProfileForRequest("no_such_profile"); err == nil {
		t.Fatal("Expected an error for an unknown profile id")
	}
}

func TestScoringProfileConfigOverrides(t *testing.T) {
	fillBoostConfig := config.AppConfig.FillBoost
	snackBoostConfig := config.AppConfig.SnackBoost
	defer func() {
		config.AppConfig.FillBoost = fillBoostConfig
		config.AppConfig.SnackBoost = snackBoostConfig
	}()

	config.AppConfig.FillBoost = 2.2
	config.AppConfig.SnackBoost = 0

	profile, err := scoringProfileForRequest("retail_cart_default")
	if err != nil {
		t.Fatalf("Unexpected error resolving profile: %s", err.Error())
	}
	if profile.FillBoost != 2.2 {
		t.Errorf("Expected FillBoost override of 2.2, got %f", profile.FillBoost)
	}
	// zero means no override
	if profile.SnackBoost != 2.5 {
		t.Errorf("Expected profile SnackBoost of 2.5, got %f", profile.SnackBoost)
	}
}

func TestScoringProfileWeightOverrides(t *testing.T) {
	weightVerticalConfig := config.AppConfig.WeightVertical
	weightDetectionConfig := config.AppConfig.WeightDetection
	defer func() {
		config.AppConfig.WeightVertical = weightVerticalConfig
		config.AppConfig.WeightDetection = weightDetectionConfig
	}()

	config.AppConfig.WeightVertical = 0.5
	config.AppConfig.WeightDetection = 0

	profile, err := scoringProfileForRequest("retail_cart_default")
	if err != nil {
		t.Fatalf("Unexpected error resolving profile: %s", err.Error())
	}
	if profile.WeightVertical != 0.5 {
		t.Errorf("Expected WeightVertical override of 0.5, got %f", profile.WeightVertical)
	}
	// zero means no override
	if profile.WeightDetection != 0.05 {
		t.Errorf("Expected profile WeightDetection of 0.05, got %f", profile.WeightDetection)
	}
}

func TestFrameDimensionsDefaults(t *testing.T) {
	frameWidthConfig := config.AppConfig.DefaultFrameWidth
	frameHeightConfig := config.AppConfig.DefaultFrameHeight
	defer func() {
		config.AppConfig.DefaultFrameWidth = frameWidthConfig
		config.AppConfig.DefaultFrameHeight = frameHeightConfig
	}()

	config.AppConfig.DefaultFrameWidth = 640
	config.AppConfig.DefaultFrameHeight = 480

	frame := frameDimensions(FrameDimensions{})
	if frame.Width != 640 || frame.Height != 480 {
		t.Errorf("Expected configured defaults 640x480, got %fx%f", frame.Width, frame.Height)
	}

	// explicit request dimensions always win
	frame = frameDimensions(FrameDimensions{Width: 1280, Height: 720})
	if frame.Width != 1280 || frame.Height != 720 {
		t.Errorf("Expected request dimensions 1280x720, got %fx%f", frame.Width, frame.Height)
	}

	// unset defaults leave an unset frame alone
	config.AppConfig.DefaultFrameWidth = 0
	config.AppConfig.DefaultFrameHeight = 0
	frame = frameDimensions(FrameDimensions{})
	if frame.Width != 0 || frame.Height != 0 {
		t.Errorf("Expected an unchanged frame, got %fx%f", frame.Width, frame.Height)
	}
}

func TestDrawerLayoutConfigOverrides(t *testing.T) {
	rowOffsetConfig := config.AppConfig.DrawerRowOffsetRatio
	rowBandConfig := config.AppConfig.DrawerRowBandRatio
	defer func() {
		config.AppConfig.DrawerRowOffsetRatio = rowOffsetConfig
		config.AppConfig.DrawerRowBandRatio = rowBandConfig
	}()

	config.AppConfig.DrawerRowOffsetRatio = 0.1
	config.AppConfig.DrawerRowBandRatio = 0

	layout := drawerLayout()
	if layout.RowOffsetRatio != 0.1 {
		t.Errorf("Expected RowOffsetRatio override of 0.1, got %f", layout.RowOffsetRatio)
	}
	if layout.RowBandRatio != drawer.DefaultLayout().RowBandRatio {
		t.Errorf("Expected the default RowBandRatio, got %f", layout.RowBandRatio)
	}
}
