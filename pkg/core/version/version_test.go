package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Release != Release || info.API != API {
		t.Errorf("Get() = %+v", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %s", info.GoVersion)
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %s", info.Platform)
	}
}

func TestReleaseIsSemver(t *testing.T) {
	if parts := strings.Split(Release, "."); len(parts) != 3 {
		t.Errorf("Release %q is not major.minor.patch", Release)
	}
}

func TestInfoString(t *testing.T) {
	s := Get().String()
	if !strings.HasPrefix(s, "mathemascii "+Release) {
		t.Errorf("String() = %s", s)
	}
}
