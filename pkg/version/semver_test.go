package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	original := Version
	Version = v
	resetParsedVersion()
	t.Cleanup(func() {
		Version = original
		resetParsedVersion()
	})
}

func TestParsed(t *testing.T) {
	tests := []struct {
		version    string
		wantMajor  uint64
		wantMinor  uint64
		wantPatch  uint64
		wantPrerel string
	}{
		{"v1.0.0", 1, 0, 0, ""},
		{"v0.3.2", 0, 3, 2, ""},
		{"1.2.3", 1, 2, 3, ""},
		{"v1.0.0-rc.1", 1, 0, 0, "rc.1"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			withVersion(t, tt.version)

			v := Parsed()
			if assert.NotNil(t, v) {
				assert.Equal(t, tt.wantMajor, v.Major())
				assert.Equal(t, tt.wantMinor, v.Minor())
				assert.Equal(t, tt.wantPatch, v.Patch())
				assert.Equal(t, tt.wantPrerel, v.Prerelease())
			}
		})
	}
}

func TestIsDevBuild(t *testing.T) {
	for _, v := range []string{"dev", "", "not-a-version"} {
		t.Run(v, func(t *testing.T) {
			withVersion(t, v)
			assert.True(t, IsDevBuild())
			assert.False(t, IsPrerelease())
		})
	}
}

func TestIsPrerelease(t *testing.T) {
	withVersion(t, "v0.2.0-beta.1")
	assert.True(t, IsPrerelease())
	assert.False(t, IsDevBuild())
}

func TestShort(t *testing.T) {
	withVersion(t, "1.4.0")
	assert.Equal(t, "v1.4.0", Short())

	withVersion(t, "dev")
	assert.Equal(t, "dev", Short())
}

func TestInfo(t *testing.T) {
	withVersion(t, "v1.0.0")
	original := Commit
	Commit = "0123456789abcdef"
	t.Cleanup(func() { Commit = original })

	info := Info()
	assert.True(t, strings.HasPrefix(info, "hashcollide v1.0.0 (0123456) built on "), info)
}

func TestInfo_DevBuildOmitsDate(t *testing.T) {
	withVersion(t, "dev")
	original := BuildDate
	BuildDate = "2026-01-01"
	t.Cleanup(func() { BuildDate = original })

	info := Info()
	assert.True(t, strings.HasPrefix(info, "hashcollide dev ("), info)
	assert.NotContains(t, info, "2026-01-01")
	assert.Contains(t, info, "built with ")
}

func TestInfo_Prerelease(t *testing.T) {
	withVersion(t, "v0.2.0-beta.1")

	assert.True(t, strings.HasPrefix(Info(), "hashcollide v0.2.0-beta.1 (pre-release) ("), Info())
}
