package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildInfo(version string, settings ...debug.BuildSetting) *debug.BuildInfo {
	return &debug.BuildInfo{Main: debug.Module{Path: "github.com/example/core2", Version: version}, Settings: settings}
}

func TestResolve(t *testing.T) {
	vcs := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2024-05-01T09:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}
	unset := Info{Commit: "unknown", BuildTime: "unknown"}

	tests := []struct {
		name string
		in   Info
		bi   *debug.BuildInfo
		want Info
	}{
		{
			name: "no build info",
			in:   unset,
			want: Info{Version: "dev", Commit: "unknown", BuildTime: "unknown"},
		},
		{
			name: "local build fills commit from vcs",
			in:   unset,
			bi:   buildInfo("(devel)", vcs...),
			want: Info{Version: "dev", Commit: "0123456789abcdef", BuildTime: "2024-05-01T09:00:00Z", Dirty: true},
		},
		{
			name: "go install carries the module version",
			in:   unset,
			bi:   buildInfo("v0.3.0"),
			want: Info{Version: "v0.3.0", Commit: "unknown", BuildTime: "unknown"},
		},
		{
			name: "ldflags win",
			in:   Info{Version: "v1.0.0", Commit: "feedface", BuildTime: "today"},
			bi:   buildInfo("v0.3.0", vcs...),
			want: Info{Version: "v1.0.0", Commit: "feedface", BuildTime: "today", Dirty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.in, tt.bi))
		})
	}
}

func TestString(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return buildInfo("(devel)", debug.BuildSetting{Key: "vcs.revision", Value: "0123456789abcdef"}), true
	}

	assert.Equal(t, "core2 dev (commit: 0123456, built: unknown)", String())
}
