package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"logscan/config"
)

// listFlag флаг со списком значений через запятую. Set заменяет список целиком.
type listFlag struct {
	dst *[]string
}

func (l listFlag) String() string {
	if l.dst == nil {
		return ""
	}
	return strings.Join(*l.dst, ",")
}

func (l listFlag) Set(s string) error {
	*l.dst = splitList(s)
	return nil
}

func splitList(s string) []string {
	var res []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

// newFlagSet описание параметров командной строки.
func newFlagSet(conf *config.Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("logscan", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&conf.Root, "root", conf.Root, "root directory to scan.")
	fs.Var(listFlag{&conf.Extensions}, "ext", "comma separated file extensions to check. Default .cpp,.h.")
	fs.Var(listFlag{&conf.Exclude}, "exclude", "comma separated directory names to skip. Default .git,vendor.")
	fs.StringVar(&conf.Trigger, "trigger", conf.Trigger, "substring identifying a logging call to check. Default LogPrint.")
	fs.StringVar(&conf.Format, "format", conf.Format, "output format: text or json.")
	fs.IntVar(&conf.Jobs, "j", conf.Jobs, "number of files checked in parallel, 0 -- GOMAXPROCS.")
	fs.StringVar(&conf.Logfile, "l", conf.Logfile, "log file. Default empty -- stderr.")
	fs.BoolVar(&conf.Verbose, "v", conf.Verbose, "debug logging.")
	fs.BoolVar(&conf.Color, "color", conf.Color, "colorize diagnostic headers.")
	fs.StringVar(&conf.ConfigFile, "c", conf.ConfigFile, "JSON config file with // comments.")
	fs.BoolVar(&conf.UseYAMLConfig, "use-config", conf.UseYAMLConfig, "read logscan.yaml from . or ./conf.")
	fs.BoolVar(&conf.ShowVersion, "version", conf.ShowVersion, "print build info and exit.")
	return fs
}

// readYAMLConfig чтение logscan.yaml через viper.
func readYAMLConfig(conf *config.Config) error {
	v := viper.New()
	v.SetConfigName("logscan")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./conf")
	v.SetEnvPrefix("LOGSCAN")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		log.Println("Error reading logscan.yaml :", err)
		return err
	}
	if err := v.Unmarshal(conf); err != nil {
		log.Println("Error unmarshalling logscan.yaml :", err)
		return err
	}
	return nil
}

// InitConfig функция инициализации конфигурации.
// Приоритет (по возрастанию): значения по умолчанию, logscan.yaml, JSON файл конфигурации,
// параметры командной строки, переменные окружения.
func InitConfig(conf *config.Config, args []string, output io.Writer) error {
	fs := newFlagSet(conf, output)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	reparse := false
	if conf.UseYAMLConfig {
		if err := readYAMLConfig(conf); err != nil {
			return err
		}
		reparse = true
	}
	if envConfig := os.Getenv("CONFIG"); envConfig != "" {
		log.Println("env var CONFIG was specified, use CONFIG =", envConfig)
		conf.ConfigFile = envConfig
	}
	if conf.ConfigFile != "" {
		if err := config.ReadConfig(conf.ConfigFile, conf); err != nil {
			return err
		}
		reparse = true
	}
	// Повторный разбор: параметры командной строки приоритетнее файлов конфигурации.
	if reparse {
		if err := newFlagSet(conf, output).Parse(args); err != nil {
			return err
		}
	}

	if err := applyEnv(conf); err != nil {
		return err
	}
	return conf.Validate()
}

// applyEnv переопределение параметров переменными окружения LOGSCAN_*.
func applyEnv(conf *config.Config) error {
	if envRoot := os.Getenv("LOGSCAN_ROOT"); envRoot != "" {
		log.Println("Using env var LOGSCAN_ROOT =", envRoot)
		conf.Root = envRoot
	}
	if envExt := os.Getenv("LOGSCAN_EXT"); envExt != "" {
		log.Println("Using env var LOGSCAN_EXT =", envExt)
		conf.Extensions = splitList(envExt)
	}
	if envExclude := os.Getenv("LOGSCAN_EXCLUDE"); envExclude != "" {
		log.Println("Using env var LOGSCAN_EXCLUDE =", envExclude)
		conf.Exclude = splitList(envExclude)
	}
	if envTrigger := os.Getenv("LOGSCAN_TRIGGER"); envTrigger != "" {
		log.Println("Using env var LOGSCAN_TRIGGER =", envTrigger)
		conf.Trigger = envTrigger
	}
	if envFormat := os.Getenv("LOGSCAN_FORMAT"); envFormat != "" {
		log.Println("Using env var LOGSCAN_FORMAT =", envFormat)
		conf.Format = envFormat
	}
	if envJobs := os.Getenv("LOGSCAN_JOBS"); envJobs != "" {
		tmp, err := strconv.Atoi(envJobs)
		if err != nil {
			return fmt.Errorf("invalid LOGSCAN_JOBS variable `%s`", envJobs)
		}
		log.Println("Using env var LOGSCAN_JOBS =", tmp)
		conf.Jobs = tmp
	}
	if envLog := os.Getenv("LOGSCAN_LOG"); envLog != "" {
		log.Println("Using env var LOGSCAN_LOG =", envLog)
		conf.Logfile = envLog
	}
	return nil
}
