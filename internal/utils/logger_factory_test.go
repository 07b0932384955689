package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repoinit/internal/utils"
)

func TestCreateLogger(testInstance *testing.T) {
	testCases := []struct {
		name        string
		logLevel    utils.LogLevel
		logFormat   utils.LogFormat
		expectError bool
	}{
		{name: "debug_structured", logLevel: utils.LogLevelDebug, logFormat: utils.LogFormatStructured},
		{name: "info_console", logLevel: utils.LogLevelInfo, logFormat: utils.LogFormatConsole},
		{name: "warn_console", logLevel: utils.LogLevelWarn, logFormat: utils.LogFormatConsole},
		{name: "error_structured", logLevel: utils.LogLevelError, logFormat: utils.LogFormatStructured},
		{name: "unknown_level", logLevel: utils.LogLevel("verbose"), logFormat: utils.LogFormatConsole, expectError: true},
		{name: "unknown_format", logLevel: utils.LogLevelInfo, logFormat: utils.LogFormat("plain"), expectError: true},
	}

	loggerFactory := utils.NewLoggerFactory()
	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			logger, creationError := loggerFactory.CreateLogger(testCase.logLevel, testCase.logFormat)
			if testCase.expectError {
				require.Error(testInstance, creationError)
				return
			}
			require.NoError(testInstance, creationError)
			require.NotNil(testInstance, logger)
		})
	}
}

func TestParseLogLevel(testInstance *testing.T) {
	parsedLevel, parseError := utils.ParseLogLevel("")
	require.NoError(testInstance, parseError)
	require.Equal(testInstance, utils.LogLevelInfo, parsedLevel)

	parsedLevel, parseError = utils.ParseLogLevel("  DEBUG ")
	require.NoError(testInstance, parseError)
	require.Equal(testInstance, utils.LogLevelDebug, parsedLevel)

	_, parseError = utils.ParseLogLevel("verbose")
	require.Error(testInstance, parseError)
}

func TestParseLogFormat(testInstance *testing.T) {
	parsedFormat, parseError := utils.ParseLogFormat("")
	require.NoError(testInstance, parseError)
	require.Equal(testInstance, utils.LogFormatConsole, parsedFormat)

	parsedFormat, parseError = utils.ParseLogFormat("Structured")
	require.NoError(testInstance, parseError)
	require.Equal(testInstance, utils.LogFormatStructured, parsedFormat)

	_, parseError = utils.ParseLogFormat("plain")
	require.Error(testInstance, parseError)
}
