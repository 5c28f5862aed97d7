/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"strconv"

	"github.com/intel/rsp-sw-toolkit-im-suite-utilities/configuration"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	maxServerReadTimeoutSeconds  = 1800
	maxServerWriteTimeoutSeconds = 1800
)

type (
	variables struct {
		ServiceName, LoggingLevel, Port           string
		TelemetryEndpoint, TelemetryDataStoreName string
		ServerReadTimeOutSeconds                  int
		ServerWriteTimeOutSeconds                 int
		ResponseLimit                             int
		ScoringProfileId                          string
		// calibration overrides; zero means "use the profile value"
		FillBoost, SnackBoost                    float64
		WeightVertical, WeightFill, WeightSnack  float64
		WeightFillLine, WeightDetection          float64
		DrawerRowOffsetRatio, DrawerRowBandRatio float64
		// frame fallbacks for requests with unset dimensions; zero disables
		DefaultFrameWidth, DefaultFrameHeight float64
		EnableCORS                            bool
		CORSOrigin                            string
	}
)

// AppConfig exports all config variables
var AppConfig variables

// InitConfig loads application variables
// nolint :gocyclo
func InitConfig() error {
	AppConfig = variables{}

	config, err := configuration.NewConfiguration()
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	AppConfig.ServiceName, err = config.GetString("serviceName")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	AppConfig.Port, err = config.GetString("port")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	// Set "debug" for development purposes. Nil or "" for Production.
	AppConfig.LoggingLevel, err = config.GetString("loggingLevel")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	AppConfig.ServerReadTimeOutSeconds, err = config.GetInt("serverReadTimeOutSeconds")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}
	if AppConfig.ServerReadTimeOutSeconds < 1 {
		return errors.New("ServerReadTimeOutSeconds cannot be lesser than 1")
	}
	if AppConfig.ServerReadTimeOutSeconds > maxServerReadTimeoutSeconds {
		// limit to max value
		log.Debugf("serverReadTimeOutSeconds value %d exceeds the max value allowed, set to max value %d",
			AppConfig.ServerReadTimeOutSeconds, maxServerReadTimeoutSeconds)
		AppConfig.ServerReadTimeOutSeconds = maxServerReadTimeoutSeconds
	}

	AppConfig.ServerWriteTimeOutSeconds, err = config.GetInt("serverWriteTimeOutSeconds")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}
	if AppConfig.ServerWriteTimeOutSeconds < 1 {
		return errors.New("ServerWriteTimeOutSeconds cannot be lesser than 1")
	}
	if AppConfig.ServerWriteTimeOutSeconds > maxServerWriteTimeoutSeconds {
		// limit to max value
		log.Debugf("serverWriteTimeOutSeconds value %d exceeds the max value allowed, set to max value %d",
			AppConfig.ServerWriteTimeOutSeconds, maxServerWriteTimeoutSeconds)
		AppConfig.ServerWriteTimeOutSeconds = maxServerWriteTimeoutSeconds
	}

	// size limit of RESTFul endpoints
	AppConfig.ResponseLimit, err = config.GetInt("responseLimit")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	AppConfig.TelemetryEndpoint, err = config.GetString("telemetryEndpoint")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	AppConfig.TelemetryDataStoreName, err = config.GetString("telemetryDataStoreName")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	AppConfig.ScoringProfileId, err = config.GetString("scoringProfileId")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	// Parse calibration overrides
	if err := parseCalibration(&AppConfig, config); err != nil {
		return errors.Wrap(err, "unable to parse calibration values")
	}

	AppConfig.EnableCORS = getOrDefaultBool(config, "enableCORS", true)
	AppConfig.CORSOrigin = getOrDefaultString(config, "corsOrigin", "*")

	return nil
}

func getOrDefaultBool(config *configuration.Configuration, path string, defaultValue bool) bool {
	value, err := config.GetBool(path)
	if err != nil {
		log.Debugf("%s was missing from configuration, setting to default value of %v", path, defaultValue)
		return defaultValue
	}
	return value
}

func getOrDefaultString(config *configuration.Configuration, path string, defaultValue string) string {
	value, err := config.GetString(path)
	if err != nil {
		log.Debugf("%s was missing from configuration, setting to default value of %s", path, defaultValue)
		return defaultValue
	}
	return value
}

func parseCalibration(AppConfig *variables, config *configuration.Configuration) error {

	var err error

	// Parsing calibration variables
	fillBoostString, err := config.GetString("fillBoost")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}
	snackBoostString, err := config.GetString("snackBoost")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}
	rowOffsetString, err := config.GetString("drawerRowOffsetRatio")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}
	rowBandString, err := config.GetString("drawerRowBandRatio")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	// Parsing string to float64
	AppConfig.FillBoost, err = parseBoost("FillBoost", fillBoostString)
	if err != nil {
		return err
	}

	AppConfig.SnackBoost, err = parseBoost("SnackBoost", snackBoostString)
	if err != nil {
		return err
	}

	AppConfig.DrawerRowOffsetRatio, err = parseRatio("DrawerRowOffsetRatio", rowOffsetString)
	if err != nil {
		return err
	}

	AppConfig.DrawerRowBandRatio, err = parseRatio("DrawerRowBandRatio", rowBandString)
	if err != nil {
		return err
	}

	// Scoring weight overrides, each a fraction of the composite
	weightOverrides := []struct {
		key  string
		name string
		dest *float64
	}{
		{"weightVertical", "WeightVertical", &AppConfig.WeightVertical},
		{"weightFill", "WeightFill", &AppConfig.WeightFill},
		{"weightSnack", "WeightSnack", &AppConfig.WeightSnack},
		{"weightFillLine", "WeightFillLine", &AppConfig.WeightFillLine},
		{"weightDetection", "WeightDetection", &AppConfig.WeightDetection},
	}
	for _, override := range weightOverrides {
		raw, err := config.GetString(override.key)
		if err != nil {
			return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
		}
		*override.dest, err = parseRatio(override.name, raw)
		if err != nil {
			return err
		}
	}

	frameWidthString, err := config.GetString("defaultFrameWidth")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}
	frameHeightString, err := config.GetString("defaultFrameHeight")
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	AppConfig.DefaultFrameWidth, err = parseDimension("DefaultFrameWidth", frameWidthString)
	if err != nil {
		return err
	}

	AppConfig.DefaultFrameHeight, err = parseDimension("DefaultFrameHeight", frameHeightString)
	if err != nil {
		return err
	}

	return nil
}

// parseBoost parses a non-negative multiplier. Zero disables the override.
func parseBoost(name string, raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "Unable to parse %s: %s", name, err.Error())
	}
	if value < 0 {
		return 0, errors.Errorf("%s should not be negative! Value: %f", name, value)
	}
	return value, nil
}

// parseDimension parses a non-negative pixel size. Zero disables the fallback.
func parseDimension(name string, raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "Unable to parse %s: %s", name, err.Error())
	}
	if value < 0 {
		return 0, errors.Errorf("%s should not be negative! Value: %f", name, value)
	}
	return value, nil
}

// parseRatio parses a fraction between 0 and 1. Zero disables the override.
func parseRatio(name string, raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "Unable to parse %s: %s", name, err.Error())
	}
	if value < 0 || value > 1 {
		return 0, errors.Errorf("%s must be between 0 and 1! Value: %f", name, value)
	}
	return value, nil
}
