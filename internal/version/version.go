package version

import (
	"fmt"
	"time"
)

// Заполняются через -ldflags "-X .../internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// Номер сборки считается в днях от начала проекта
var buildEpoch = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

type Info struct {
	BuildID int
	Date    string
	Commit  string
	Err     error
}

// BuildID переводит BuildDate в номер сборки
func BuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

func Current() Info {
	id, err := BuildID(BuildDate)
	return Info{BuildID: id, Date: BuildDate, Commit: BuildCommit, Err: err}
}

// String - строка для лога при старте
func (i Info) String() string {
	if i.Err != nil {
		return fmt.Sprintf("saloon-rogue dev build (%v)", i.Err)
	}
	commit := i.Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("saloon-rogue build %d (%s) commit[%s]", i.BuildID, i.Date, commit)
}
