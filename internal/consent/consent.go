package consent

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// ExpiryDays is the consent lifetime; a stored decision older than this is
// treated as never given.
const ExpiryDays = 365

const (
	cookieFile   = "consent.cookie"
	fallbackFile = "consent.json"
)

type State string

const (
	Unset       State = "UNSET"
	Refused     State = "REFUSED"
	AcceptedAll State = "ACCEPTED_ALL"
	Custom      State = "CUSTOM"
)

// Record holds the consent flags. Necessary is always true; the other three
// are the user's choice.
type Record struct {
	Necessary   bool      `json:"necessary"`
	Analytics   bool      `json:"analytics"`
	Marketing   bool      `json:"marketing"`
	Preferences bool      `json:"preferences"`
	Timestamp   time.Time `json:"timestamp"`
}

func (r Record) State() State {
	switch {
	case !r.Analytics && !r.Marketing && !r.Preferences:
		return Refused
	case r.Analytics && r.Marketing && r.Preferences:
		return AcceptedAll
	default:
		return Custom
	}
}

func RefuseAll() Record {
	return Record{Necessary: true, Timestamp: time.Now()}
}

func AcceptAll() Record {
	return Record{Necessary: true, Analytics: true, Marketing: true, Preferences: true, Timestamp: time.Now()}
}

type cookieEnvelope struct {
	Value   Record    `json:"value"`
	Expires time.Time `json:"expires"`
}

// Manager reads and writes the consent decision. The record is mirrored into
// two files: a cookie-style envelope carrying an expiry (authoritative) and a
// plain JSON fallback. Reads prefer the cookie and fall back when it is
// missing or unparseable.
type Manager struct {
	dir string
	now func() time.Time
}

func NewManager(dir string) *Manager {
	return &Manager{dir: dir, now: time.Now}
}

func (m *Manager) Save(record Record) error {

	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return errors.Wrap(err, "create consent directory")
	}

	record.Necessary = true
	if record.Timestamp.IsZero() {
		record.Timestamp = m.now()
	}

	envelope := cookieEnvelope{
		Value:   record,
		Expires: m.now().AddDate(0, 0, ExpiryDays),
	}
	cookie, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(m.dir, cookieFile), cookie, 0o600); err != nil {
		return errors.Wrap(err, "persist consent cookie")
	}

	fallback, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(m.dir, fallbackFile), fallback, 0o600); err != nil {
		return errors.Wrap(err, "persist consent fallback")
	}

	return nil
}

// Load returns the stored record, or (nil, nil) when consent is Unset.
func (m *Manager) Load() (*Record, error) {

	if record := m.loadCookie(); record != nil {
		return record, nil
	}

	data, err := os.ReadFile(filepath.Join(m.dir, fallbackFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, nil
	}
	return &record, nil
}

func (m *Manager) loadCookie() *Record {
	data, err := os.ReadFile(filepath.Join(m.dir, cookieFile))
	if err != nil {
		return nil
	}

	var envelope cookieEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil
	}
	if m.now().After(envelope.Expires) {
		return nil
	}
	return &envelope.Value
}

func (m *Manager) Reset() error {
	for _, name := range []string{cookieFile, fallbackFile} {
		if err := os.Remove(filepath.Join(m.dir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (m *Manager) State() State {
	record, err := m.Load()
	if err != nil || record == nil {
		return Unset
	}
	return record.State()
}
