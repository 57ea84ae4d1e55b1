package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory where statistics are dumped
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// EnableStatsKey enables dumping evaluation metrics to the datadir
	EnableStatsKey = "ENABLE_STATS"
	// BatchConcurrencyKey is the max number of requests of a batch evaluated
	// at the same time
	BatchConcurrencyKey = "BATCH_CONCURRENCY"

	StatsLocation = "stats"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("curvectl", false)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("CURVE")
	vip.AutomaticEnv()

	vip.SetDefault(LogLevelKey, int(log.InfoLevel))
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(EnableStatsKey, false)
	vip.SetDefault(BatchConcurrencyKey, 4)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

// Set overrides the value of the given key.
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func GetLogLevel() log.Level {
	return log.Level(GetInt(LogLevelKey))
}

func GetStatsPath() string {
	return filepath.Join(GetDatadir(), StatsLocation, "metrics")
}

// AllSettings returns the current configuration.
func AllSettings() map[string]interface{} {
	return map[string]interface{}{
		DatadirKey:          GetDatadir(),
		LogLevelKey:         GetInt(LogLevelKey),
		EnableStatsKey:      GetBool(EnableStatsKey),
		BatchConcurrencyKey: GetInt(BatchConcurrencyKey),
	}
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	level := GetInt(LogLevelKey)
	if level < int(log.PanicLevel) || level > int(log.TraceLevel) {
		return fmt.Errorf(
			"%s must be in range [%d, %d]",
			LogLevelKey, log.PanicLevel, log.TraceLevel,
		)
	}

	if GetInt(BatchConcurrencyKey) < 1 {
		return fmt.Errorf("%s must be greater than zero", BatchConcurrencyKey)
	}

	return nil
}

func initDatadir() error {
	if !GetBool(EnableStatsKey) {
		return nil
	}
	return makeDirectoryIfNotExists(filepath.Join(GetDatadir(), StatsLocation))
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
