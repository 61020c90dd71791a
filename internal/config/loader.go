package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/bnema/panewall/internal/logging"
)

// LoadOrCreate returns the configuration stored at path.
//
// A missing file is created with Default() and that configuration is returned;
// failing to write it is the only error. A file that cannot be read or parsed
// yields Fallback() and is left untouched. Missing keys take per-key defaults.
// An existing file is never rewritten.
func LoadOrCreate(ctx context.Context, path string) (*Config, error) {
	log := logging.FromContext(ctx)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", path).Msg("config file not found, creating a default one")
		cfg := Default()
		if err := Write(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to create default config at %s: %w", path, err)
		}
		return cfg, nil
	}

	values, err := readExactKeys(path)
	if err != nil {
		log.Error().
			Err(err).
			Str("path", path).
			Msg("config file is not a readable JSON object, using default settings")
		return Fallback(), nil
	}

	v := newViper()
	if err := v.MergeConfigMap(values); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to merge config values, using default settings")
		return Fallback(), nil
	}
	v.Set(keyNumberOfWindows, numberOfWindows(ctx, v.Get(keyNumberOfWindows)))
	v.Set(keyURL, urlValue(ctx, v.Get(keyURL)))

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to decode config, using default settings")
		return Fallback(), nil
	}

	log.Debug().
		Str("path", path).
		Int("number_of_windows", cfg.NumberOfWindows).
		Str("url", cfg.URL).
		Msg("config loaded")

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")

	v.SetDefault(keyNumberOfWindows, DefaultNumberOfWindows)
	v.SetDefault(keyURL, FallbackURL)
	return v
}

// readExactKeys parses path as a single JSON object and keeps only the known
// keys spelled exactly as documented. Viper folds key case, so "URL" would
// otherwise be read as "url". Null values count as missing.
func readExactKeys(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if raw == nil {
		return nil, errors.New("config file does not hold a JSON object")
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the JSON object")
	}

	values := make(map[string]any, 2)
	for _, key := range []string{keyNumberOfWindows, keyURL} {
		if val, ok := raw[key]; ok && val != nil {
			values[key] = val
		}
	}
	return values, nil
}

// numberOfWindows converts the stored value to an int. Numbers beyond the int
// range saturate, so they still clamp to the nearest pane bound. Values that
// are not numbers (strings like "two", objects) fall back to the default.
func numberOfWindows(ctx context.Context, raw any) int {
	n, err := toPaneInt(raw)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Interface("value", raw).
			Int("default", DefaultNumberOfWindows).
			Msg("number_of_windows is not an integer, using default")
		return DefaultNumberOfWindows
	}
	return n
}

func toPaneInt(raw any) (int, error) {
	switch val := raw.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return saturateInt(float64(i), i), nil
		}
		f, err := val.Float64()
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, err
		}
		// ParseFloat returns ±Inf alongside ErrRange
		return saturateInt(f, int64(f)), nil
	case float64:
		return saturateInt(val, int64(val)), nil
	default:
		return cast.ToIntE(raw)
	}
}

// saturateInt returns i, or the int bound f lies beyond. f carries the
// magnitude when i could not represent it.
func saturateInt(f float64, i int64) int {
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	default:
		return int(i)
	}
}

// urlValue converts the stored value to a string. Scalars are stringified; other
// shapes fall back to FallbackURL.
func urlValue(ctx context.Context, raw any) string {
	s, err := cast.ToStringE(raw)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Interface("value", raw).
			Str("default", FallbackURL).
			Msg("url is not a string, using default")
		return FallbackURL
	}
	return s
}

// Write stores cfg at path as indented JSON.
func Write(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
