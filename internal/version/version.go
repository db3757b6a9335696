package version

import (
	"fmt"
	"time"
)

// Заполняются через -ldflags "-X bombquest/internal/version.BuildDate=..."
var (
	Version     = "dev"
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// buildEpoch - день ноль нумерации сборок
var buildEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	Version    string `json:"version"`
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate,omitempty"`
	Commit     string `json:"commit,omitempty"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// CalculateBuildID - номер сборки = дней от buildEpoch до BuildDate
func CalculateBuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", date, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", date)
	}

	// Using hours avoids DST issues; epoch and build date are both UTC.
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info returns structured version information.
func Info() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
	}

	id, err := CalculateBuildID(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String returns a human-readable build string.
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("bombquest %s (build unknown)", info.Version)
	}

	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("bombquest %s build %d (%s) commit[%s]", info.Version, info.BuildID, info.BuildDate, commit)
}
