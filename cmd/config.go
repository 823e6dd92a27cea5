package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lockerroom/internal/core/domain/services"
	"lockerroom/internal/jobs"
	"lockerroom/internal/pkg/errs"
)

// DefaultLockerSizes is the room layout used when LOCKER_SIZES is not set:
// fifteen lockers sized 1 through 15.
var DefaultLockerSizes = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	LockerSizes          []int
	UnitRate             float64
	OverdueScanSchedule  string
	ExtensionDecisionTTL time.Duration
}

// LoadConfig reads the configuration through getenv. Missing optional values get
// their defaults; malformed ones are all reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:            getenv("HTTP_PORT"),
		DBHost:              getenv("DB_HOST"),
		DBPort:              getenv("DB_PORT"),
		DBUser:              getenv("DB_USER"),
		DBPassword:          getenv("DB_PASSWORD"),
		DBName:              getenv("DB_NAME"),
		DBSslMode:           getenv("DB_SSLMODE"),
		OverdueScanSchedule: getenv("OVERDUE_SCAN_SCHEDULE"),
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}
	if cfg.DBSslMode == "" {
		cfg.DBSslMode = "disable"
	}
	if cfg.OverdueScanSchedule == "" {
		cfg.OverdueScanSchedule = jobs.DefaultOverdueScanSchedule
	}

	var sizesErr, rateErr, ttlErr error
	cfg.LockerSizes, sizesErr = parseLockerSizes(getenv("LOCKER_SIZES"))
	cfg.UnitRate, rateErr = parseUnitRate(getenv("UNIT_RATE"))
	cfg.ExtensionDecisionTTL, ttlErr = parseTTL(getenv("EXTENSION_DECISION_TTL"))

	if err := errors.Join(sizesErr, rateErr, ttlErr); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UsesDatabase reports whether the journal should go to postgres.
func (c Config) UsesDatabase() bool {
	return c.DBHost != ""
}

// DSN builds the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// parseLockerSizes accepts a comma separated list such as "1,2,3".
func parseLockerSizes(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return append([]int(nil), DefaultLockerSizes...), nil
	}

	parts := strings.Split(raw, ",")
	sizes := make([]int, 0, len(parts))
	for i, part := range parts {
		size, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"LOCKER_SIZES is invalid",
				fmt.Errorf("entry %d: %w", i, err),
			)
		}
		if size <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"LOCKER_SIZES is invalid",
				fmt.Errorf("entry %d: %d is not greater than 0", i, size),
			)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

func parseUnitRate(raw string) (float64, error) {
	if raw == "" {
		return services.DefaultUnitRate, nil
	}

	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("UNIT_RATE is invalid", err)
	}
	if rate < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"UNIT_RATE is invalid",
			fmt.Errorf("%v is negative", rate),
		)
	}
	return rate, nil
}

func parseTTL(raw string) (time.Duration, error) {
	if raw == "" {
		return jobs.DefaultExtensionDecisionTTL, nil
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("EXTENSION_DECISION_TTL is invalid", err)
	}
	if ttl <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"EXTENSION_DECISION_TTL is invalid",
			fmt.Errorf("%s is not greater than 0", ttl),
		)
	}
	return ttl, nil
}
