package configuration

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/markusressel/servo2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	Controller ControllerConfig `json:"controller"`
	Loop       LoopConfig       `json:"loop"`
	Process    ProcessConfig    `json:"process"`
	Trace      TraceConfig      `json:"trace"`
}

type LoopConfig struct {
	// time between two consecutive measurements
	Interval time.Duration `json:"interval"`
	// number of measurements to process, 0 means until interrupted
	Iterations int `json:"iterations"`
	// number of process values used for the moving average
	RollingWindowSize int `json:"rollingWindowSize"`
}

type TraceConfig struct {
	// file to write the process values to, empty disables the trace
	Path string `json:"path"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("servo2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/servo2go/")
	}

	viper.SetEnvPrefix("SERVO2GO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("controller.type", PidControllerType)
	viper.SetDefault("controller.setPoint", 200.0)
	viper.SetDefault("controller.bangBang.low", -1.0)
	viper.SetDefault("controller.bangBang.high", 1.0)
	viper.SetDefault("controller.bangBang.hysteresis", 0.0)

	viper.SetDefault("loop.interval", 250*time.Millisecond)
	viper.SetDefault("loop.iterations", 10)
	viper.SetDefault("loop.rollingWindowSize", 10)

	viper.SetDefault("process.initialValue", 50.0)
	viper.SetDefault("process.noise.mean", 10.0)
	viper.SetDefault("process.noise.stdDev", 5.0)
	viper.SetDefault("process.noise.seed", 0)

	viper.SetDefault("trace.path", "")
}

// ReadConfigFile reads the configuration file, if one can be found,
// and returns its path. A missing configuration file is not an error,
// unless it was explicitly requested.
func ReadConfigFile() (string, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &notFoundErr) {
			return "", nil
		}
		return "", err
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed(), nil
}

// DetectAndReadConfigFile reads the configuration file and exits on failure
func DetectAndReadConfigFile() string {
	configPath, err := ReadConfigFile()
	if err != nil {
		// an unreadable config file is fatal
		ui.Fatal("Error reading config file, %s", err)
	}
	return configPath
}

// LoadConfig decodes the current viper state into CurrentConfig
func LoadConfig() error {
	return viper.Unmarshal(&CurrentConfig, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			controllerTypeHookFunc(),
		),
	))
}
