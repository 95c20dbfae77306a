// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/global"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"github.com/half-nothing/adventurous-traveler/internal/utils"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var (
	ConfVersion, _ = newVersion(global.ConfigVersion)
	AppVersion, _  = newVersion(global.AppVersion)
)

func createFileWithContent(filePath string, content []byte) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, global.DefaultDirectoryPermission); err != nil {
		return err
	}

	return os.WriteFile(filePath, content, global.DefaultFilePermissions)
}

// CachedContent reads filePath, downloading it from url first when the file is missing and url is set
func CachedContent(logger log.LoggerInterface, filePath, url string) ([]byte, error) {
	if content, err := os.ReadFile(filePath); err == nil {
		return content, nil
	} else if !os.IsNotExist(err) || url == "" {
		return nil, fmt.Errorf("file read error: %w", err)
	}

	logger.InfoF("%s not found, downloading from %s", filePath, url)

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response error: %w", err)
	}

	logger.InfoF("%s successfully downloaded, %d bytes", filePath, len(content))

	if err := createFileWithContent(filePath, content); err != nil {
		return nil, fmt.Errorf("file write error: %w", err)
	}

	return content, nil
}

func checkPort(port uint) *ValidResult {
	if port <= 0 {
		return ValidFail(errors.New("port must be greater than zero"))
	}
	if port > 65535 {
		return ValidFail(errors.New("port must be less than 65535"))
	}
	if port < 1024 {
		return ValidFail(fmt.Errorf("the %d port may have a special usage, use it with caution", port))
	}
	return ValidPass()
}

type checkVersionResult int

const (
	AllMatch checkVersionResult = iota
	MajorUnmatch
	MinorUnmatch
	PatchUnmatch
)

type Version struct {
	major   int
	minor   int
	patch   int
	version string
}

func newVersion(version string) (*Version, error) {
	versions := strings.Split(version, ".")
	if len(versions) < 3 {
		return nil, errors.New("invalid version string")
	}
	return &Version{
		major:   utils.StrToInt(versions[0], 0),
		minor:   utils.StrToInt(versions[1], 0),
		patch:   utils.StrToInt(versions[2], 0),
		version: version,
	}, nil
}

// checkVersion only compares major and minor, patch releases keep the same config layout
func (v *Version) checkVersion(version *Version) checkVersionResult {
	if v.major != version.major {
		return MajorUnmatch
	}
	if v.minor != version.minor {
		return MinorUnmatch
	}
	return AllMatch
}

func (v *Version) String() string {
	return v.version
}
