package cliutils

import (
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvFile is the file that LoadEnv reads, relative to the working directory
const EnvFile string = ".env"

// LoadEnv sets any variables from EnvFile that are not already set in the environment. A missing
// file is not an error.
func LoadEnv() error {
	err := godotenv.Load(EnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "Can't load %s", EnvFile)
	}
	return nil
}

// Settings are the options of the training tools that come from the environment.
type Settings struct {
	// Seed from ENROLL_SEED; the current time if unset
	Seed int64

	// MaxEpochs from ENROLL_MAX_EPOCHS; 0 (no limit) if unset
	MaxEpochs int

	// Quiet from ENROLL_QUIET
	Quiet bool
}

// ReadSettings reads Settings from the environment, using 'getenv' to look up each variable.
// Passing nil uses os.Getenv.
func ReadSettings(getenv func(string) string) (Settings, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	s := Settings{Seed: time.Now().UnixNano()}

	if v := strings.TrimSpace(getenv("ENROLL_SEED")); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, errors.Errorf("Invalid ENROLL_SEED %q, must be an integer", v)
		}
		s.Seed = seed
	}

	if v := strings.TrimSpace(getenv("ENROLL_MAX_EPOCHS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return s, errors.Errorf("Invalid ENROLL_MAX_EPOCHS %q, must be a non-negative integer", v)
		}
		s.MaxEpochs = n
	}

	if v := strings.TrimSpace(getenv("ENROLL_QUIET")); v != "" {
		q, err := strconv.ParseBool(v)
		if err != nil {
			return s, errors.Errorf("Invalid ENROLL_QUIET %q, must be a boolean", v)
		}
		s.Quiet = q
	}

	return s, nil
}

// Database gives the database that the extraction tool reads from
type Database struct {
	// Driver is "mysql" or "sqlite"
	Driver string
	DSN    string
}

// ReadDatabase reads the Database from the environment. EXTRACT_DRIVER defaults to "mysql". The
// DSN is EXTRACT_DSN if set; otherwise, for mysql, it is built from DB_USER, DB_PASSWORD,
// DB_HOST, DB_PORT and DB_NAME.
func ReadDatabase(getenv func(string) string) (Database, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	db := Database{Driver: getenv("EXTRACT_DRIVER"), DSN: getenv("EXTRACT_DSN")}
	if db.Driver == "" {
		db.Driver = "mysql"
	}

	switch db.Driver {
	case "mysql":
		if db.DSN != "" {
			break
		}

		cfg := mysql.NewConfig()
		cfg.User = getenv("DB_USER")
		cfg.Passwd = getenv("DB_PASSWORD")
		cfg.Net = "tcp"
		cfg.Addr = getenv("DB_HOST")
		if port := getenv("DB_PORT"); port != "" {
			cfg.Addr += ":" + port
		}
		cfg.DBName = getenv("DB_NAME")

		if cfg.Addr == "" || cfg.DBName == "" {
			return db, errors.Errorf("Can't connect to mysql, set EXTRACT_DSN or DB_HOST and DB_NAME")
		}
		db.DSN = cfg.FormatDSN()
	case "sqlite":
		if db.DSN == "" {
			return db, errors.Errorf("Can't open sqlite database, EXTRACT_DSN is not set")
		}
	default:
		return db, errors.Errorf("Unknown EXTRACT_DRIVER %q, must be \"mysql\" or \"sqlite\"", db.Driver)
	}

	return db, nil
}
