package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "pegsolve"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName        = "output"
	plainFlagName         = "plain"
	verboseFlagName       = "verbose"
	logFileFlagName       = "log-file"
	solveParallelFlagName = "parallel"
	solveSaveFlagName     = "save"

	plainConfigKey         = "plain"
	solveHolesConfigKey    = "solve.holes"
	solveParallelConfigKey = "solve.parallel"
	solveSaveConfigKey     = "solve.save"

	defaultReportsDir    = ".pegsolve-reports"
	defaultPlain         = false
	defaultSolveParallel = 1
	defaultSolveSave     = false

	envPrefix = "PEGSOLVE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".pegsolve.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultSolveHoles matches the holes the puzzle is traditionally demonstrated with.
var defaultSolveHoles = []int{0, 1, 2, 3, 4}

var globalLogger *slog.Logger

// configReadErr holds a config file that exists but could not be read. It
// is reported once logging is configured.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	configReadErr = loadConfig()
}

// loadConfig reads pegsolve.yaml. A missing file is not an error: every
// key has a default.
func loadConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", configFileName, err)
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(plainConfigKey, defaultPlain)
	viper.SetDefault(solveHolesConfigKey, defaultSolveHoles)
	viper.SetDefault(solveParallelConfigKey, defaultSolveParallel)
	viper.SetDefault(solveSaveConfigKey, defaultSolveSave)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// solveHoles returns the holes named on the command line, or the
// configured holes when none were given.
func solveHoles(args []string) ([]int, error) {
	holes, err := parseHoles(args)
	if err != nil {
		return nil, err
	}

	if len(holes) > 0 {
		return holes, nil
	}

	return viper.GetIntSlice(solveHolesConfigKey), nil
}

// solveThreads returns how many holes are searched at once. Values below
// one fall back to a single worker.
func solveThreads() int {
	threads := viper.GetInt(solveParallelConfigKey)
	if threads < 1 {
		slog.Warn("solve.parallel must be at least 1, solving one hole at a time", "value", threads)
		return defaultSolveParallel
	}

	return threads
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (-4 is debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// logSettings is the resolved log.* configuration.
type logSettings struct {
	Filename   string
	Level      slog.Level
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// readLogSettings resolves the log.* keys. An explicit logPath wins over
// log.filename, and verbose forces debug level.
func readLogSettings(logPath string, verbose bool) logSettings {
	settings := logSettings{
		Filename:   strings.TrimSpace(logPath),
		Level:      parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo),
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	if settings.Filename == "" {
		settings.Filename = strings.TrimSpace(viper.GetString(logFilenameKey))
	}

	if settings.Filename == "" {
		settings.Filename = defaultLogFilename
	}

	if verbose {
		settings.Level = slog.LevelDebug
	}

	return settings
}

// configureLogger installs a slog text handler writing to a rotating log file.
func configureLogger(settings logSettings) {
	logWriter := &lumberjack.Logger{
		Filename:   settings.Filename,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     settings.Level,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)

	if configReadErr != nil {
		slog.Warn("ignoring config file", "file", configFileName, "error", configReadErr)
	}
}
