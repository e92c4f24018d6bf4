package mocks

import (
	"strconv"
	"strings"
	"sync"

	"nutrialarm/internal/settings"
)

// FakeSettingsStore is an in-memory settings.Store for tests. It mirrors the
// Redis store's encoding rules, including the legacy bit-pattern migration.
type FakeSettingsStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewFakeSettingsStore() *FakeSettingsStore {
	return &FakeSettingsStore{data: make(map[string]string)}
}

// Seed writes a raw value, bypassing encoding. Tests use it to plant legacy
// entries.
func (f *FakeSettingsStore) Seed(key, raw string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = raw
}

func (f *FakeSettingsStore) Raw(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *FakeSettingsStore) Bool(key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key] == "true", nil
}

func (f *FakeSettingsStore) BoolDefault(key string, def bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.data[key]
	if !ok {
		return def, nil
	}
	return raw == "true", nil
}

func (f *FakeSettingsStore) SetBool(key string, v bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = strconv.FormatBool(v)
	return nil
}

func (f *FakeSettingsStore) String(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key], nil
}

func (f *FakeSettingsStore) SetString(key, v string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = v
	return nil
}

func (f *FakeSettingsStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func (f *FakeSettingsStore) DailyBonus(userID, date string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.data[settings.DailyBonusKey(userID, date)]
	if !ok {
		return 0, nil
	}
	if v, legacy := settings.DecodeLegacyBonus(raw); legacy {
		return v, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func (f *FakeSettingsStore) SetDailyBonus(userID, date string, v float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[settings.DailyBonusKey(userID, date)] = strconv.FormatFloat(v, 'f', -1, 64)
	return nil
}

func (f *FakeSettingsStore) AddDailyBonus(userID, date string, delta float64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := settings.DailyBonusKey(userID, date)
	current := 0.0
	if raw, ok := f.data[key]; ok {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, err
		}
		current = parsed
	}
	current += delta
	f.data[key] = strconv.FormatFloat(current, 'f', -1, 64)
	return current, nil
}

func (f *FakeSettingsStore) NormalizeDailyBonus() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	migrated := 0
	for key, raw := range f.data {
		if !strings.HasPrefix(key, "daily_bonus_") {
			continue
		}
		v, legacy := settings.DecodeLegacyBonus(raw)
		if !legacy {
			continue
		}
		f.data[key] = strconv.FormatFloat(v, 'f', -1, 64)
		migrated++
	}
	return migrated, nil
}
